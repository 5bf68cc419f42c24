package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mhdRaihan321/api-expense/internal/core/domain"
	"github.com/mhdRaihan321/api-expense/internal/core/ports"
)

type stubAccountRepo struct {
	users   map[string]*domain.User // keyed by email
	creates int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.creates++
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) Update(_ context.Context, id string, update ports.AccountUpdate) error {
	for email, u := range r.users {
		if u.ID != id {
			continue
		}
		if update.Name != "" {
			u.Name = update.Name
		}
		if update.PasswordHash != "" {
			u.PasswordHash = update.PasswordHash
		}
		if update.Email != "" {
			delete(r.users, email)
			u.Email = update.Email
			r.users[u.Email] = u
		}
		return nil
	}
	return domain.ErrUserNotFound
}

func TestAccountService_AddAccount_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	user, err := svc.AddAccount(context.Background(), ports.AddAccountInput{
		Name: "Alice", Email: "alice@example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("AddAccount returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestAccountService_AddAccount_MalformedEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	for _, email := range []string{"no-at-sign", "missing@tld", "two@@example.com", "spaces in@example.com"} {
		if _, err := svc.AddAccount(context.Background(), ports.AddAccountInput{
			Name: "Bob", Email: email, Password: "pw",
		}); err != domain.ErrInvalidEmail {
			t.Fatalf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
	if repo.creates != 0 {
		t.Fatalf("expected no store writes, got %d", repo.creates)
	}
}

func TestAccountService_AddAccount_DuplicateEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	if _, err := svc.AddAccount(context.Background(), ports.AddAccountInput{
		Name: "Bob", Email: "bob@example.com", Password: "pw",
	}); err != nil {
		t.Fatalf("first AddAccount failed: %v", err)
	}

	if _, err := svc.AddAccount(context.Background(), ports.AddAccountInput{
		Name: "Robert", Email: "bob@example.com", Password: "pw2",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected one user, got %d", len(repo.users))
	}
}

func TestAccountService_UpdateAccount_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	_, _ = svc.AddAccount(context.Background(), ports.AddAccountInput{
		Name: "Carol", Email: "carol@example.com", Password: "goodpass",
	})
	before := cloneUser(repo.users["carol@example.com"])

	err := svc.UpdateAccount(context.Background(), ports.UpdateAccountInput{
		Email: "carol@example.com", Password: "badpass", NewName: "Caroline",
	})
	if err != domain.ErrIncorrectPassword {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}

	after := repo.users["carol@example.com"]
	if after.Name != before.Name || after.PasswordHash != before.PasswordHash {
		t.Fatalf("user changed despite failed authentication")
	}
}

func TestAccountService_UpdateAccount_NameOnly(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	_, _ = svc.AddAccount(context.Background(), ports.AddAccountInput{
		Name: "Dave", Email: "dave@example.com", Password: "s3cret",
	})
	before := cloneUser(repo.users["dave@example.com"])

	err := svc.UpdateAccount(context.Background(), ports.UpdateAccountInput{
		Email: "dave@example.com", Password: "s3cret", NewName: "David",
	})
	if err != nil {
		t.Fatalf("UpdateAccount returned error: %v", err)
	}

	after := repo.users["dave@example.com"]
	if after.Name != "David" {
		t.Fatalf("expected name David, got %s", after.Name)
	}
	if after.Email != before.Email {
		t.Fatalf("email changed: %s", after.Email)
	}
	if after.PasswordHash != before.PasswordHash {
		t.Fatalf("password hash changed on name-only update")
	}
}

func TestAccountService_UpdateAccount_NewPasswordRehashed(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	_, _ = svc.AddAccount(context.Background(), ports.AddAccountInput{
		Name: "Erin", Email: "erin@example.com", Password: "oldpass",
	})

	err := svc.UpdateAccount(context.Background(), ports.UpdateAccountInput{
		Email: "erin@example.com", Password: "oldpass", NewPassword: "newpass",
	})
	if err != nil {
		t.Fatalf("UpdateAccount returned error: %v", err)
	}

	hash := repo.users["erin@example.com"].PasswordHash
	if hash == "newpass" {
		t.Fatalf("new password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")); err != nil {
		t.Fatalf("new hash does not verify: %v", err)
	}
}

func TestAccountService_UpdateAccount_MalformedNewEmail(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	_, _ = svc.AddAccount(context.Background(), ports.AddAccountInput{
		Name: "Frank", Email: "frank@example.com", Password: "pw",
	})

	err := svc.UpdateAccount(context.Background(), ports.UpdateAccountInput{
		Email: "frank@example.com", Password: "pw", NewEmail: "not-an-email",
	})
	if err != domain.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestAccountService_UpdateAccount_UserNotFound(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, zerolog.Nop())

	err := svc.UpdateAccount(context.Background(), ports.UpdateAccountInput{
		Email: "ghost@example.com", Password: "pw",
	})
	if err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
