package calculator

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

// SplitTolerance is how far the splits may drift from the expense total.
const SplitTolerance = 0.01

// Validation messages shown to users.
const (
	MsgDescriptionRequired = "Description is required."
	MsgTotalNotPositive    = "Total amount must be greater than zero."
	MsgPayerRequired       = "Please select who paid for the expense."
	MsgSplitsRequired      = "Please add at least one split."
	MsgSplitPersonRequired = "Each split must reference a person."
	MsgSplitNotPositive    = "Split amounts must be greater than zero."

	MsgSettlementPeopleRequired = "Both people must be selected."
	MsgSettlementSamePerson     = "The payer and recipient must be different people."
	MsgSettlementNotPositive    = "Settlement amount must be positive."
)

// SplitInput is a proposed share of an expense.
type SplitInput struct {
	PersonID uuid.UUID
	Amount   float64
}

// ExpenseInput is a candidate expense as entered by a user.
type ExpenseInput struct {
	Description string
	TotalAmount float64
	PaidBy      uuid.UUID
	Splits      []SplitInput
}

// ValidationResult reports every rule an ExpenseInput breaks.
type ValidationResult struct {
	Valid      bool
	Errors     []string
	SplitTotal float64
}

// Err returns nil for a valid result, otherwise a *ValidationError carrying
// all messages.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Messages: r.Errors}
}

// ValidationError wraps user-facing validation messages.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

// SumSplitAmounts adds up split amounts, counting non-finite amounts as zero.
func SumSplitAmounts(splits []SplitInput) float64 {
	var sum float64
	for _, split := range splits {
		if isFinite(split.Amount) {
			sum += split.Amount
		}
	}
	return sum
}

// ValidateExpenseInput checks an expense for well-formedness and for splits
// that add up to the total. All violations are collected, in a fixed order;
// per-split messages repeat once per offending split.
func ValidateExpenseInput(input ExpenseInput) ValidationResult {
	errs := make([]string, 0)

	if strings.TrimSpace(input.Description) == "" {
		errs = append(errs, MsgDescriptionRequired)
	}

	if !isFinite(input.TotalAmount) || input.TotalAmount <= 0 {
		errs = append(errs, MsgTotalNotPositive)
	}

	if input.PaidBy == uuid.Nil {
		errs = append(errs, MsgPayerRequired)
	}

	if len(input.Splits) == 0 {
		errs = append(errs, MsgSplitsRequired)
	}

	for _, split := range input.Splits {
		if split.PersonID == uuid.Nil {
			errs = append(errs, MsgSplitPersonRequired)
		}
		if !isFinite(split.Amount) || split.Amount <= 0 {
			errs = append(errs, MsgSplitNotPositive)
		}
	}

	splitTotal := SumSplitAmounts(input.Splits)

	if isFinite(input.TotalAmount) && math.Abs(splitTotal-input.TotalAmount) > SplitTolerance {
		errs = append(errs, fmt.Sprintf("Splits total ($%s) must equal expense ($%s).",
			money.Format(splitTotal), money.Format(input.TotalAmount)))
	}

	return ValidationResult{
		Valid:      len(errs) == 0,
		Errors:     errs,
		SplitTotal: splitTotal,
	}
}

// SettlementInput is a proposed payment between two people.
type SettlementInput struct {
	From   uuid.UUID
	To     uuid.UUID
	Amount float64
}

// ValidateSettlementInput returns the first rule the settlement breaks as a
// *ValidationError, or nil.
func ValidateSettlementInput(input SettlementInput) error {
	switch {
	case input.From == uuid.Nil || input.To == uuid.Nil:
		return &ValidationError{Messages: []string{MsgSettlementPeopleRequired}}
	case input.From == input.To:
		return &ValidationError{Messages: []string{MsgSettlementSamePerson}}
	case !isFinite(input.Amount) || input.Amount <= 0:
		return &ValidationError{Messages: []string{MsgSettlementNotPositive}}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ExpenseInputFrom builds validator input from a stored expense record.
func ExpenseInputFrom(e models.Expense) ExpenseInput {
	splits := make([]SplitInput, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = SplitInput{PersonID: s.PersonID, Amount: s.Amount}
	}
	return ExpenseInput{
		Description: e.Description,
		TotalAmount: e.TotalAmount,
		PaidBy:      e.PaidBy,
		Splits:      splits,
	}
}
