package ports

import (
	"context"
	"time"

	"github.com/mhdRaihan321/api-expense/internal/core/domain"
)

// AddEntryInput carries all data needed to create a new ledger entry.
// A zero Date means "now".
type AddEntryInput struct {
	Name        string
	Amount      float64
	Category    string
	Type        string
	Description string
	Date        time.Time
	UserID      string
}

// EditEntryInput is the full replacement field set for an existing entry.
type EditEntryInput struct {
	Name        string
	Amount      float64
	Category    string
	Description string
	UserID      string
}

// EntryService defines use-case operations for ledger entries.
type EntryService interface {
	AddEntry(ctx context.Context, input AddEntryInput) (*domain.Entry, error)
	EditEntry(ctx context.Context, id string, input EditEntryInput) (*domain.Entry, error)
	ListEntries(ctx context.Context) ([]domain.Entry, error)
	ListEntriesByOwner(ctx context.Context, userID string) ([]domain.Entry, error)
	// DeleteEntry removes the entry with the given id after verifying that
	// its stored owner matches userID.
	DeleteEntry(ctx context.Context, id, userID string) error
}
