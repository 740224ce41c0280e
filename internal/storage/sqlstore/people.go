package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// CreatePerson persists a new person with a unique, trimmed name.
func (s *Store) CreatePerson(ctx context.Context, person *models.Person) error {
	person.Name = strings.TrimSpace(person.Name)
	if person.Name == "" {
		return fmt.Errorf("person name is required")
	}
	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}
	if person.CreatedAt == 0 {
		person.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, s.bind("SELECT 1 FROM people WHERE name = ?"), person.Name).Scan(&exists)
	if err == nil {
		return fmt.Errorf("%w: %s", storage.ErrDuplicateName, person.Name)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check person name: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		s.bind("INSERT INTO people (id, name, created_at) VALUES (?, ?, ?)"),
		person.ID, person.Name, person.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert person: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPerson retrieves a person by ID.
func (s *Store) GetPerson(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	person := &models.Person{}
	err := s.db.QueryRowContext(ctx,
		s.bind("SELECT id, name, created_at FROM people WHERE id = ?"), id,
	).Scan(&person.ID, &person.Name, &person.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: person %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

// ListPeople returns people in insertion order.
func (s *Store) ListPeople(ctx context.Context) ([]models.Person, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, created_at FROM people ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []models.Person
	for rows.Next() {
		var p models.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}
	return people, nil
}

// CountPeople returns the number of people.
func (s *Store) CountPeople(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM people").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count people: %w", err)
	}
	return n, nil
}

// DeletePerson removes a person who is not referenced anywhere.
func (s *Store) DeletePerson(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.personExists(ctx, tx, id); err != nil {
		return err
	}

	var referenced bool
	err = tx.QueryRowContext(ctx, s.bind(`
		SELECT EXISTS (SELECT 1 FROM expenses WHERE paid_by = ?)
		    OR EXISTS (SELECT 1 FROM splits WHERE person_id = ?)
		    OR EXISTS (SELECT 1 FROM settlements WHERE from_person_id = ? OR to_person_id = ?)`),
		id, id, id, id,
	).Scan(&referenced)
	if err != nil {
		return fmt.Errorf("failed to check person references: %w", err)
	}
	if referenced {
		return fmt.Errorf("%w: %s", storage.ErrPersonInUse, id)
	}

	if _, err := tx.ExecContext(ctx, s.bind("DELETE FROM people WHERE id = ?"), id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// personExists returns storage.ErrNotFound when id is not a person.
func (s *Store) personExists(ctx context.Context, q queryer, id uuid.UUID) error {
	var exists int
	err := q.QueryRowContext(ctx, s.bind("SELECT 1 FROM people WHERE id = ?"), id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: person %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to check person existence: %w", err)
	}
	return nil
}
