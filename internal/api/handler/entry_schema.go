package handler

import (
	"time"

	"github.com/mhdRaihan321/api-expense/internal/core/domain"
)

// --- Request / Response types ---

type addEntryRequest struct {
	Name        string    `json:"name"     validate:"required"`
	Amount      float64   `json:"amount"   validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Type        string    `json:"type"     validate:"required,oneof=income expense"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	User        string    `json:"user"     validate:"required"`
}

// editEntryRequest is a full-overwrite payload: every required field replaces
// the stored value. Type and date are not editable.
type editEntryRequest struct {
	Name        string  `json:"name"     validate:"required"`
	Amount      float64 `json:"amount"   validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	User        string  `json:"user"     validate:"required"`
}

type deleteEntryRequest struct {
	User string `json:"user"`
}

type editEntryResponse struct {
	Message string        `json:"message"`
	Expense *domain.Entry `json:"expense"`
}
