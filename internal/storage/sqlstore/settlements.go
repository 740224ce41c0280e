package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

// CreateSettlement rounds the amount to whole cents, validates and persists
// a new settlement. Both people must exist.
func (s *Store) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	settlement.Amount = money.Round2(settlement.Amount)
	if err := calculator.ValidateSettlementInput(calculator.SettlementInput{
		From:   settlement.From,
		To:     settlement.To,
		Amount: settlement.Amount,
	}); err != nil {
		return fmt.Errorf("invalid settlement: %w", err)
	}

	if settlement.ID == uuid.Nil {
		settlement.ID = uuid.New()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}
	settlement.Date = DateOnly(settlement.Date)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range []uuid.UUID{settlement.From, settlement.To} {
		if err := s.personExists(ctx, tx, id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: both people must exist before recording a settlement", storage.ErrUnknownPerson)
			}
			return err
		}
	}

	_, err = tx.ExecContext(ctx, s.bind(`
		INSERT INTO settlements (id, from_person_id, to_person_id, amount_cents, settled_on, note, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		settlement.ID, settlement.From, settlement.To, int64(money.FromFloat(settlement.Amount)),
		settlement.Date.Unix(), nullString(settlement.Note), nullString(settlement.CreatedBy), settlement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetSettlement retrieves a settlement by ID.
func (s *Store) GetSettlement(ctx context.Context, id uuid.UUID) (*models.Settlement, error) {
	row := s.db.QueryRowContext(ctx, s.bind(`
		SELECT id, from_person_id, to_person_id, amount_cents, settled_on, note, created_by, created_at
		FROM settlements WHERE id = ?`), id)

	settlement, err := scanSettlement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: settlement %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}
	return settlement, nil
}

// ListSettlements retrieves all settlements, latest date first.
func (s *Store) ListSettlements(ctx context.Context) ([]models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, from_person_id, to_person_id, amount_cents, settled_on, note, created_by, created_at
		FROM settlements ORDER BY settled_on DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []models.Settlement
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, *settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}

// DeleteSettlement removes a settlement by ID.
func (s *Store) DeleteSettlement(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, s.bind("DELETE FROM settlements WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: settlement %s", storage.ErrNotFound, id)
	}
	return nil
}

// DateOnly strips the time of day, keeping the UTC calendar date. A zero
// time becomes today.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func scanSettlement(row rowScanner) (*models.Settlement, error) {
	settlement := &models.Settlement{}
	var cents, settledOn int64
	var note, createdBy sql.NullString

	if err := row.Scan(&settlement.ID, &settlement.From, &settlement.To, &cents, &settledOn,
		&note, &createdBy, &settlement.CreatedAt); err != nil {
		return nil, err
	}

	settlement.Amount = money.Cents(cents).Float64()
	settlement.Date = time.Unix(settledOn, 0).UTC()
	if note.Valid {
		settlement.Note = note.String
	}
	if createdBy.Valid {
		settlement.CreatedBy = createdBy.String
	}
	return settlement, nil
}
