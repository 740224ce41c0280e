package calculator

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

// ErrUnknownPerson is returned when an expense or settlement references a
// person that is not part of the ledger.
var ErrUnknownPerson = errors.New("unknown person")

// settledCents is the noise floor: nets within one cent of zero are settled.
const settledCents money.Cents = 1

// Balance is a suggested payment from a debtor to a creditor.
type Balance struct {
	FromID uuid.UUID // Person who owes
	ToID   uuid.UUID // Person who is owed
	Amount float64
}

// MemberBalance is one person's position across the whole ledger.
type MemberBalance struct {
	PersonID uuid.UUID
	Paid     float64 // Expenses paid plus settlements sent
	Owed     float64 // Split shares plus settlements received
	Net      float64 // Positive = is owed money, negative = owes money
}

// ledger accumulates per-person totals in cents, in people order.
type ledger struct {
	order []uuid.UUID
	paid  map[uuid.UUID]money.Cents
	owed  map[uuid.UUID]money.Cents
}

func newLedger(people []models.Person) *ledger {
	l := &ledger{
		order: make([]uuid.UUID, 0, len(people)),
		paid:  make(map[uuid.UUID]money.Cents, len(people)),
		owed:  make(map[uuid.UUID]money.Cents, len(people)),
	}
	for _, p := range people {
		if _, seen := l.paid[p.ID]; seen {
			continue
		}
		l.order = append(l.order, p.ID)
		l.paid[p.ID] = 0
		l.owed[p.ID] = 0
	}
	return l
}

func (l *ledger) credit(id uuid.UUID, amount float64) error {
	if _, ok := l.paid[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPerson, id)
	}
	l.paid[id] += money.FromFloat(amount)
	return nil
}

func (l *ledger) debit(id uuid.UUID, amount float64) error {
	if _, ok := l.owed[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPerson, id)
	}
	l.owed[id] += money.FromFloat(amount)
	return nil
}

func (l *ledger) net(id uuid.UUID) money.Cents {
	return l.paid[id] - l.owed[id]
}

func fold(expenses []models.Expense, people []models.Person, settlements []models.Settlement) (*ledger, error) {
	l := newLedger(people)

	for _, expense := range expenses {
		// Payer is owed the full amount back
		if err := l.credit(expense.PaidBy, expense.TotalAmount); err != nil {
			return nil, fmt.Errorf("expense %s payer: %w", expense.ID, err)
		}
		for _, split := range expense.Splits {
			if err := l.debit(split.PersonID, split.Amount); err != nil {
				return nil, fmt.Errorf("expense %s split: %w", expense.ID, err)
			}
		}
	}

	for _, s := range settlements {
		// Sender's debt shrinks, receiver's claim shrinks
		if err := l.credit(s.From, s.Amount); err != nil {
			return nil, fmt.Errorf("settlement %s sender: %w", s.ID, err)
		}
		if err := l.debit(s.To, s.Amount); err != nil {
			return nil, fmt.Errorf("settlement %s recipient: %w", s.ID, err)
		}
	}

	return l, nil
}

// CalculateMemberBalances returns every person's paid, owed and net totals,
// in the order people were given.
func CalculateMemberBalances(expenses []models.Expense, people []models.Person, settlements []models.Settlement) ([]MemberBalance, error) {
	l, err := fold(expenses, people, settlements)
	if err != nil {
		return nil, err
	}

	members := make([]MemberBalance, 0, len(l.order))
	for _, id := range l.order {
		members = append(members, MemberBalance{
			PersonID: id,
			Paid:     l.paid[id].Float64(),
			Owed:     l.owed[id].Float64(),
			Net:      l.net(id).Float64(),
		})
	}
	return members, nil
}

// CalculateBalances folds expenses and settlements into net positions and
// suggests payments that would bring everyone back to zero.
//
// Algorithm:
//   - Expense: payer +total, each split participant -share
//   - Settlement: sender +amount, recipient -amount
//   - Nets within one cent of zero are settled and dropped
//   - Each debtor, in people order, pays creditors in people order
//     (first fit) until either side is exhausted
//
// The matching is greedy and does not minimise the number of payments.
// A reference to a person missing from people returns ErrUnknownPerson.
func CalculateBalances(expenses []models.Expense, people []models.Person, settlements []models.Settlement) ([]Balance, error) {
	l, err := fold(expenses, people, settlements)
	if err != nil {
		return nil, err
	}

	type position struct {
		id     uuid.UUID
		amount money.Cents
	}

	var creditors, debtors []*position
	for _, id := range l.order {
		net := l.net(id)
		if net > settledCents {
			creditors = append(creditors, &position{id: id, amount: net})
		} else if net < -settledCents {
			debtors = append(debtors, &position{id: id, amount: -net})
		}
	}

	balances := make([]Balance, 0)
	for _, debtor := range debtors {
		remaining := debtor.amount
		for _, creditor := range creditors {
			if remaining <= settledCents {
				break
			}
			if creditor.amount <= settledCents {
				continue
			}
			amount := min(remaining, creditor.amount)
			balances = append(balances, Balance{
				FromID: debtor.id,
				ToID:   creditor.id,
				Amount: amount.Float64(),
			})
			remaining -= amount
			creditor.amount -= amount
		}
	}

	return balances, nil
}
