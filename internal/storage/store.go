// Package storage provides abstractions for persistent ledger storage.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName is returned when a person name is already taken.
	ErrDuplicateName = errors.New("a person with this name already exists")
	// ErrPersonInUse is returned when deleting a person still referenced by
	// expenses, splits or settlements.
	ErrPersonInUse = errors.New("person is referenced by expenses or settlements")
	// ErrUnknownPerson is returned when a record references a person that
	// does not exist.
	ErrUnknownPerson = errors.New("unknown person")
	// ErrEmailExists is returned when registering an email twice.
	ErrEmailExists = errors.New("email already registered")
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	// CreatePerson persists a new person. ID and CreatedAt are populated by
	// the store when empty.
	CreatePerson(ctx context.Context, person *models.Person) error

	// GetPerson retrieves a person by ID.
	GetPerson(ctx context.Context, id uuid.UUID) (*models.Person, error)

	// ListPeople returns everyone in the order they were added.
	ListPeople(ctx context.Context) ([]models.Person, error)

	// CountPeople returns the number of people in the ledger.
	CountPeople(ctx context.Context) (int, error)

	// DeletePerson removes a person that nothing references.
	DeletePerson(ctx context.Context, id uuid.UUID) error

	// CreateExpense validates and persists an expense together with its
	// splits in a single transaction.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense with its splits.
	GetExpense(ctx context.Context, id uuid.UUID) (*models.Expense, error)

	// ListExpenses returns all expenses, newest first, with their splits.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// DeleteExpense removes an expense and its splits.
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	// CreateSettlement persists a settlement between two existing people.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// GetSettlement retrieves a settlement by ID.
	GetSettlement(ctx context.Context, id uuid.UUID) (*models.Settlement, error)

	// ListSettlements returns all settlements, newest first.
	ListSettlements(ctx context.Context) ([]models.Settlement, error)

	// DeleteSettlement removes a settlement by ID.
	DeleteSettlement(ctx context.Context, id uuid.UUID) error

	// CreateUser inserts a registered account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns the user with the given email, or nil if none.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns the user with the given ID, or nil if none.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
