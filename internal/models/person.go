package models

import "github.com/google/uuid"

// Person is a member of the shared ledger.
type Person struct {
	// ID is the unique identifier for the person.
	ID uuid.UUID

	// Name is the display name. Names are unique within a ledger.
	Name string

	// CreatedAt is the Unix timestamp when the person was added.
	CreatedAt int64
}
