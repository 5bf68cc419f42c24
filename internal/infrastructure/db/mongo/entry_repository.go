package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mhdRaihan321/api-expense/internal/core/domain"
	"github.com/mhdRaihan321/api-expense/internal/core/ports"
)

const collectionExpenses = "expenses"

type EntryRepository struct {
	col *mongo.Collection
}

func NewEntryRepository(db *mongo.Database) *EntryRepository {
	return &EntryRepository{col: db.Collection(collectionExpenses)}
}

type entryDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Amount      float64            `bson:"amount"`
	Category    string             `bson:"category"`
	Type        string             `bson:"type"`
	Description string             `bson:"description,omitempty"`
	Date        time.Time          `bson:"date"`
	User        string             `bson:"user"`
}

func (d entryDoc) toDomain() domain.Entry {
	return domain.Entry{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Amount:      d.Amount,
		Category:    d.Category,
		Type:        domain.EntryType(d.Type),
		Description: d.Description,
		Date:        d.Date,
		UserID:      d.User,
	}
}

// Insert persists a new entry and returns it with the store-assigned id.
func (r *EntryRepository) Insert(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := entryDoc{
		Name:        entry.Name,
		Amount:      entry.Amount,
		Category:    entry.Category,
		Type:        string(entry.Type),
		Description: entry.Description,
		Date:        entry.Date,
		User:        entry.UserID,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	return &created, nil
}

// FindAll returns every entry in store order.
func (r *EntryRepository) FindAll(ctx context.Context) ([]domain.Entry, error) {
	return r.find(ctx, bson.M{})
}

// FindByOwner returns the entries whose user field equals userID. No matches
// is an empty slice, not an error.
func (r *EntryRepository) FindByOwner(ctx context.Context, userID string) ([]domain.Entry, error) {
	return r.find(ctx, bson.M{"user": userID})
}

func (r *EntryRepository) find(ctx context.Context, filter bson.M) ([]domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find entries: %w", err)
	}
	defer cur.Close(ctx)

	entries := []domain.Entry{}
	for cur.Next(ctx) {
		var doc entryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode entry: %w", err)
		}
		entries = append(entries, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// FindByID retrieves a single entry. A malformed id is treated the same as a
// missing document.
func (r *EntryRepository) FindByID(ctx context.Context, id string) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEntryNotFound
	}

	var doc entryDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("find entry: %w", err)
	}
	entry := doc.toDomain()
	return &entry, nil
}

// UpdateByID overwrites the editable fields of an entry and returns the
// updated document. Type and date are not part of the $set.
func (r *EntryRepository) UpdateByID(ctx context.Context, id string, update ports.EntryUpdate) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEntryNotFound
	}

	set := bson.M{
		"name":        update.Name,
		"amount":      update.Amount,
		"category":    update.Category,
		"description": update.Description,
		"user":        update.UserID,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc entryDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("update entry: %w", err)
	}
	entry := doc.toDomain()
	return &entry, nil
}

// DeleteByID permanently removes an entry.
func (r *EntryRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEntryNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}
