package ports

import (
	"context"

	"github.com/mhdRaihan321/api-expense/internal/core/domain"
)

// AccountUpdate carries the fields to change on a user. Empty fields are
// left untouched (partial update).
type AccountUpdate struct {
	Name         string
	Email        string
	PasswordHash string
}

// AccountRepository defines persistence operations for user accounts.
type AccountRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, update AccountUpdate) error
}
