package models

import (
	"time"

	"github.com/google/uuid"
)

// Settlement represents a payment between ledger members to clear debts.
type Settlement struct {
	// ID is the unique identifier for the settlement.
	ID uuid.UUID

	// From is the person who paid (debtor settling up).
	From uuid.UUID

	// To is the person who received payment (creditor being paid).
	To uuid.UUID

	// Amount is the payment amount.
	Amount float64

	// Date is the UTC calendar day of the payment.
	Date time.Time

	// Note is an optional description for the settlement.
	Note string

	// CreatedBy is the user ID who recorded this settlement.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
