package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

// CreateExpense rounds every amount to whole cents, validates the rounded
// expense and inserts it with its splits in one transaction. The payer and
// every split participant must exist.
func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	expense.TotalAmount = money.Round2(expense.TotalAmount)
	for i := range expense.Splits {
		expense.Splits[i].Amount = money.Round2(expense.Splits[i].Amount)
	}
	if err := calculator.ValidateExpenseInput(calculator.ExpenseInputFrom(*expense)).Err(); err != nil {
		return fmt.Errorf("invalid expense: %w", err)
	}

	expense.Description = strings.TrimSpace(expense.Description)
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	now := time.Now()
	if expense.Date.IsZero() {
		expense.Date = now
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now.Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.personExists(ctx, tx, expense.PaidBy); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: selected payer does not exist", storage.ErrUnknownPerson)
		}
		return err
	}

	checked := make(map[uuid.UUID]bool, len(expense.Splits))
	for _, split := range expense.Splits {
		if checked[split.PersonID] {
			continue
		}
		checked[split.PersonID] = true
		if err := s.personExists(ctx, tx, split.PersonID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: one or more splits reference unknown people", storage.ErrUnknownPerson)
			}
			return err
		}
	}

	_, err = tx.ExecContext(ctx, s.bind(`
		INSERT INTO expenses (id, description, total_cents, paid_by, occurred_at, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`),
		expense.ID, expense.Description, int64(money.FromFloat(expense.TotalAmount)), expense.PaidBy,
		expense.Date.Unix(), nullString(expense.CreatedBy), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, split := range expense.Splits {
		_, err = tx.ExecContext(ctx,
			s.bind("INSERT INTO splits (expense_id, position, person_id, amount_cents) VALUES (?, ?, ?, ?)"),
			expense.ID, i, split.PersonID, int64(money.FromFloat(split.Amount)),
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID, including its splits.
func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx, s.bind(`
		SELECT id, description, total_cents, paid_by, occurred_at, created_by, created_at
		FROM expenses WHERE id = ?`), id)

	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: expense %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		s.bind("SELECT person_id, amount_cents FROM splits WHERE expense_id = ? ORDER BY position"), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var split models.Split
		var cents int64
		if err := rows.Scan(&split.PersonID, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		split.Amount = money.Cents(cents).Float64()
		expense.Splits = append(expense.Splits, split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return expense, nil
}

// ListExpenses returns every expense, most recently recorded first, with
// splits in entry order.
func (s *Store) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, description, total_cents, paid_by, occurred_at, created_by, created_at
		FROM expenses ORDER BY created_at DESC, seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		index[expense.ID] = len(expenses)
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	splitRows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, person_id, amount_cents FROM splits ORDER BY expense_id, position")
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var expenseID uuid.UUID
		var split models.Split
		var cents int64
		if err := splitRows.Scan(&expenseID, &split.PersonID, &cents); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		split.Amount = money.Cents(cents).Float64()
		if i, ok := index[expenseID]; ok {
			expenses[i].Splits = append(expenses[i].Splits, split)
		}
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense; its splits cascade.
func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, s.bind("DELETE FROM expenses WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: expense %s", storage.ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	expense := &models.Expense{}
	var totalCents, occurredAt int64
	var createdBy sql.NullString

	if err := row.Scan(&expense.ID, &expense.Description, &totalCents, &expense.PaidBy,
		&occurredAt, &createdBy, &expense.CreatedAt); err != nil {
		return nil, err
	}

	expense.TotalAmount = money.Cents(totalCents).Float64()
	expense.Date = time.Unix(occurredAt, 0).UTC()
	if createdBy.Valid {
		expense.CreatedBy = createdBy.String
	}
	return expense, nil
}
