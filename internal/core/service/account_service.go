package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhdRaihan321/api-expense/internal/core/domain"
	"github.com/mhdRaihan321/api-expense/internal/core/ports"
)

// bcryptCost is the adaptive-hash work factor (10 rounds).
const bcryptCost = bcrypt.DefaultCost

// AccountService implements account creation and credential-gated updates.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// AddAccount creates a new user. The email must be well-formed and not yet
// taken; the password is stored only as a bcrypt hash. The uniqueness
// pre-check is read-then-write — the unique index on the email field is what
// actually arbitrates concurrent signups, and a duplicate-key insert surfaces
// as domain.ErrUserExists just like the pre-check.
func (s *AccountService) AddAccount(ctx context.Context, input ports.AddAccountInput) (*domain.User, error) {
	if !domain.ValidEmail(input.Email) {
		return nil, domain.ErrInvalidEmail
	}

	_, err := s.repo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user created")
	return created, nil
}

// UpdateAccount applies a partial update to the user identified by the
// current email, after verifying the supplied password against the stored
// hash. Only the New* fields that are non-empty are applied; a new password
// is re-hashed before persisting.
func (s *AccountService) UpdateAccount(ctx context.Context, input ports.UpdateAccountInput) error {
	if !domain.ValidEmail(input.Email) {
		return domain.ErrInvalidEmail
	}
	if input.NewEmail != "" && !domain.ValidEmail(input.NewEmail) {
		return domain.ErrInvalidEmail
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return domain.ErrIncorrectPassword
	}

	update := ports.AccountUpdate{
		Name:  input.NewName,
		Email: input.NewEmail,
	}
	if input.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcryptCost)
		if err != nil {
			return err
		}
		update.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user.ID, update); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to update user")
		return err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user updated")
	return nil
}
