package domain

import (
	"errors"
	"regexp"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user with this email already exists")
var ErrInvalidEmail = errors.New("invalid email format")
var ErrIncorrectPassword = errors.New("incorrect password")

// emailPattern accepts the minimal local@domain.tld shape. Anything stricter
// is the mail system's problem, not ours.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// User models an account holder. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
