package models

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a purchase paid by one person on behalf of several.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID uuid.UUID

	// Description is what the money was spent on (e.g., "Dinner").
	Description string

	// TotalAmount is the amount the payer spent.
	TotalAmount float64

	// PaidBy is the ID of the person who paid.
	PaidBy uuid.UUID

	// Splits divide TotalAmount among participants, in entry order.
	// Their amounts must sum to TotalAmount within one cent.
	Splits []Split

	// Date is when the expense happened.
	Date time.Time

	// CreatedBy is the user ID who recorded this expense, if known.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Split is one participant's share of an expense.
type Split struct {
	PersonID uuid.UUID
	Amount   float64
}
