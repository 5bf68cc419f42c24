package ports

import (
	"context"

	"github.com/mhdRaihan321/api-expense/internal/core/domain"
)

// EntryUpdate is the field set applied by edit. Unlike AccountUpdate this is
// a full overwrite: every field here replaces the stored value, including an
// empty description. Type and Date are never touched by an edit.
type EntryUpdate struct {
	Name        string
	Amount      float64
	Category    string
	Description string
	UserID      string
}

// EntryRepository defines persistence operations for ledger entries.
type EntryRepository interface {
	Insert(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	FindAll(ctx context.Context) ([]domain.Entry, error)
	FindByOwner(ctx context.Context, userID string) ([]domain.Entry, error)
	FindByID(ctx context.Context, id string) (*domain.Entry, error)
	UpdateByID(ctx context.Context, id string, update EntryUpdate) (*domain.Entry, error)
	DeleteByID(ctx context.Context, id string) error
}
