package ports

import (
	"context"

	"github.com/mhdRaihan321/api-expense/internal/core/domain"
)

// AddAccountInput carries the fields for creating an account.
type AddAccountInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateAccountInput carries the current credentials plus optional
// replacement fields. Empty replacement fields are not applied.
type UpdateAccountInput struct {
	Email       string
	Password    string
	NewName     string
	NewEmail    string
	NewPassword string
}

// AccountService defines use-case operations for user accounts.
type AccountService interface {
	AddAccount(ctx context.Context, input AddAccountInput) (*domain.User, error)
	UpdateAccount(ctx context.Context, input UpdateAccountInput) error
}
