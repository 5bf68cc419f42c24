package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mhdRaihan321/api-expense/internal/core/domain"
	"github.com/mhdRaihan321/api-expense/internal/core/ports"
)

// EntryService implements the ledger use cases: add, edit, list, delete.
type EntryService struct {
	repo   ports.EntryRepository
	logger zerolog.Logger
}

func NewEntryService(repo ports.EntryRepository, logger zerolog.Logger) *EntryService {
	return &EntryService{repo: repo, logger: logger}
}

// AddEntry persists a new entry. The date defaults to the creation time when
// the caller does not supply one. The owner reference is stored as given; no
// lookup against the users collection is performed.
func (s *EntryService) AddEntry(ctx context.Context, input ports.AddEntryInput) (*domain.Entry, error) {
	entryType := domain.EntryType(input.Type)
	if !entryType.Valid() {
		return nil, domain.ErrInvalidEntryType
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	entry := &domain.Entry{
		Name:        input.Name,
		Amount:      input.Amount,
		Category:    input.Category,
		Type:        entryType,
		Description: input.Description,
		Date:        date,
		UserID:      input.UserID,
	}

	created, err := s.repo.Insert(ctx, entry)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert entry")
		return nil, err
	}

	s.logger.Info().
		Str("entry_id", created.ID).
		Str("type", string(created.Type)).
		Str("user_id", created.UserID).
		Msg("entry created")
	return created, nil
}

// EditEntry overwrites name, amount, category, description and owner on the
// entry with the given id. Type and date are left as stored.
func (s *EntryService) EditEntry(ctx context.Context, id string, input ports.EditEntryInput) (*domain.Entry, error) {
	updated, err := s.repo.UpdateByID(ctx, id, ports.EntryUpdate{
		Name:        input.Name,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		UserID:      input.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("entry_id", updated.ID).Msg("entry updated")
	return updated, nil
}

// ListEntries returns every entry in store order.
func (s *EntryService) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	return s.repo.FindAll(ctx)
}

// ListEntriesByOwner returns the entries owned by userID. An owner with no
// entries yields an empty slice, not an error.
func (s *EntryService) ListEntriesByOwner(ctx context.Context, userID string) ([]domain.Entry, error) {
	return s.repo.FindByOwner(ctx, userID)
}

// DeleteEntry removes the entry with the given id, but only when its stored
// owner matches userID.
func (s *EntryService) DeleteEntry(ctx context.Context, id, userID string) error {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if entry.UserID != userID {
		return domain.ErrNotEntryOwner
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("entry_id", id).Msg("failed to delete entry")
		return err
	}

	s.logger.Info().Str("entry_id", id).Str("user_id", userID).Msg("entry deleted")
	return nil
}
