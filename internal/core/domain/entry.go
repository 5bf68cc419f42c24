package domain

import (
	"errors"
	"strings"
	"time"
)

// EntryType distinguishes money coming in from money going out.
type EntryType string

const (
	TypeIncome  EntryType = "income"
	TypeExpense EntryType = "expense"
)

// Valid reports whether t is one of the two known entry types.
func (t EntryType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Capitalized returns the type with its first letter upper-cased, for
// user-facing messages ("Income", "Expense").
func (t EntryType) Capitalized() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var ErrEntryNotFound = errors.New("expense not found")
var ErrInvalidEntryType = errors.New("type must be income or expense")
var ErrNotEntryOwner = errors.New("entry belongs to a different user")

// Entry is a single income or expense record owned by a user.
//
// UserID references the owner by id. The store does not enforce the
// reference; callers are responsible for supplying a valid owner.
type Entry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Type        EntryType `json:"type"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	UserID      string    `json:"user"`
}
