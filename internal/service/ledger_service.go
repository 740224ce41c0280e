// Package service implements the Connect handlers for the ledger and
// account services.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

// DefaultMaxGroupSize caps people per ledger and splits per expense.
const DefaultMaxGroupSize = 100

// LedgerService implements apiconnect.LedgerServiceHandler.
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler
	store        storage.Store
	maxGroupSize int
}

// NewLedgerService creates a LedgerService on store. maxGroupSize <= 0
// selects DefaultMaxGroupSize.
func NewLedgerService(store storage.Store, maxGroupSize int) *LedgerService {
	if maxGroupSize <= 0 {
		maxGroupSize = DefaultMaxGroupSize
	}
	return &LedgerService{store: store, maxGroupSize: maxGroupSize}
}

// ListPeople returns everyone in insertion order.
func (s *LedgerService) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	people, err := s.store.ListPeople(ctx)
	if err != nil {
		return nil, toConnectError("ListPeople", err)
	}
	return connect.NewResponse(&api.ListPeopleResponse{People: toAPIPeople(people)}), nil
}

// AddPerson adds a person with a unique, non-empty name.
func (s *LedgerService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, validationError([]string{"Name is required."})
	}

	count, err := s.store.CountPeople(ctx)
	if err != nil {
		return nil, toConnectError("AddPerson", err)
	}
	if count >= s.maxGroupSize {
		return nil, connect.NewError(connect.CodeResourceExhausted,
			fmt.Errorf("a ledger holds at most %d people", s.maxGroupSize))
	}

	person := &models.Person{Name: name}
	if err := s.store.CreatePerson(ctx, person); err != nil {
		return nil, toConnectError("AddPerson", err)
	}

	slog.Info("Person added", "person_id", person.ID, "name", person.Name)
	return connect.NewResponse(&api.AddPersonResponse{Person: toAPIPerson(*person)}), nil
}

// DeletePerson removes a person that no expense, split or settlement uses.
func (s *LedgerService) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	id, err := parseID("person id", req.Msg.ID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeletePerson(ctx, id); err != nil {
		return nil, toConnectError("DeletePerson", err)
	}

	slog.Info("Person deleted", "person_id", id)
	return connect.NewResponse(&api.DeletePersonResponse{}), nil
}

// ListExpenses returns all expenses, most recently recorded first.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, toConnectError("ListExpenses", err)
	}
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: toAPIExpenses(expenses)}), nil
}

// AddExpense validates and stores an expense, stamping the caller as creator.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	input, err := s.expenseInput(req.Msg.Description, req.Msg.TotalAmount, req.Msg.PaidBy, req.Msg.Splits)
	if err != nil {
		return nil, err
	}

	if result := calculator.ValidateExpenseInput(input); !result.Valid {
		slog.Debug("Expense rejected", "errors", result.Errors)
		return nil, validationError(result.Errors)
	}

	expense := &models.Expense{
		Description: input.Description,
		TotalAmount: input.TotalAmount,
		PaidBy:      input.PaidBy,
		Splits:      make([]models.Split, len(input.Splits)),
		Date:        optionalUnix(req.Msg.Date),
		CreatedBy:   middleware.GetUserID(ctx),
	}
	for i, split := range input.Splits {
		expense.Splits[i] = models.Split{PersonID: split.PersonID, Amount: split.Amount}
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, toConnectError("AddExpense", err)
	}

	slog.Info("Expense added",
		"expense_id", expense.ID,
		"total", expense.TotalAmount,
		"paid_by", expense.PaidBy,
		"splits", len(expense.Splits),
	)
	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(*expense)}), nil
}

// DeleteExpense removes an expense and its splits.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	id, err := parseID("expense id", req.Msg.ID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return nil, toConnectError("DeleteExpense", err)
	}

	slog.Info("Expense deleted", "expense_id", id)
	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// ValidateExpense runs the expense validator without saving anything.
func (s *LedgerService) ValidateExpense(ctx context.Context, req *connect.Request[api.ValidateExpenseRequest]) (*connect.Response[api.ValidateExpenseResponse], error) {
	input, err := s.expenseInput(req.Msg.Description, req.Msg.TotalAmount, req.Msg.PaidBy, req.Msg.Splits)
	if err != nil {
		return nil, err
	}

	result := calculator.ValidateExpenseInput(input)
	return connect.NewResponse(&api.ValidateExpenseResponse{
		Valid:      result.Valid,
		Errors:     result.Errors,
		SplitTotal: result.SplitTotal,
	}), nil
}

// SplitEvenly pairs the given people with equal shares of the total.
func (s *LedgerService) SplitEvenly(ctx context.Context, req *connect.Request[api.SplitEvenlyRequest]) (*connect.Response[api.SplitEvenlyResponse], error) {
	if len(req.Msg.PersonIDs) > s.maxGroupSize {
		return nil, connect.NewError(connect.CodeResourceExhausted,
			fmt.Errorf("an expense can be split between at most %d people", s.maxGroupSize))
	}

	ids := make([]uuid.UUID, len(req.Msg.PersonIDs))
	for i, raw := range req.Msg.PersonIDs {
		id, err := parseID("person id", raw)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	shares := calculator.SplitAmountEqually(req.Msg.Total, len(ids))
	splits := make([]api.Split, len(shares))
	for i, share := range shares {
		splits[i] = api.Split{PersonID: ids[i].String(), Amount: share}
	}
	return connect.NewResponse(&api.SplitEvenlyResponse{Splits: splits}), nil
}

// ListSettlements returns all settlements, newest first.
func (s *LedgerService) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	settlements, err := s.store.ListSettlements(ctx)
	if err != nil {
		return nil, toConnectError("ListSettlements", err)
	}
	return connect.NewResponse(&api.ListSettlementsResponse{Settlements: toAPISettlements(settlements)}), nil
}

// AddSettlement records a payment between two existing people.
func (s *LedgerService) AddSettlement(ctx context.Context, req *connect.Request[api.AddSettlementRequest]) (*connect.Response[api.AddSettlementResponse], error) {
	from, err := parseOptionalID("from id", req.Msg.FromID)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalID("to id", req.Msg.ToID)
	if err != nil {
		return nil, err
	}

	settlement := &models.Settlement{
		From:      from,
		To:        to,
		Amount:    money.Round2(req.Msg.Amount),
		Date:      optionalUnix(req.Msg.Date),
		Note:      strings.TrimSpace(req.Msg.Note),
		CreatedBy: middleware.GetUserID(ctx),
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, toConnectError("AddSettlement", err)
	}

	slog.Info("Settlement added",
		"settlement_id", settlement.ID,
		"from", settlement.From,
		"to", settlement.To,
		"amount", settlement.Amount,
	)
	return connect.NewResponse(&api.AddSettlementResponse{Settlement: toAPISettlement(*settlement)}), nil
}

// DeleteSettlement removes a settlement.
func (s *LedgerService) DeleteSettlement(ctx context.Context, req *connect.Request[api.DeleteSettlementRequest]) (*connect.Response[api.DeleteSettlementResponse], error) {
	id, err := parseID("settlement id", req.Msg.ID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteSettlement(ctx, id); err != nil {
		return nil, toConnectError("DeleteSettlement", err)
	}

	slog.Info("Settlement deleted", "settlement_id", id)
	return connect.NewResponse(&api.DeleteSettlementResponse{}), nil
}

// GetBalances recomputes suggested payments and per-person totals from the
// full history.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	var (
		people      []models.Person
		expenses    []models.Expense
		settlements []models.Settlement
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		people, err = s.store.ListPeople(gctx)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.store.ListExpenses(gctx)
		return err
	})
	g.Go(func() (err error) {
		settlements, err = s.store.ListSettlements(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, toConnectError("GetBalances", err)
	}

	balances, err := calculator.CalculateBalances(expenses, people, settlements)
	if err != nil {
		return nil, toConnectError("GetBalances", err)
	}
	members, err := calculator.CalculateMemberBalances(expenses, people, settlements)
	if err != nil {
		return nil, toConnectError("GetBalances", err)
	}

	names := make(map[string]string, len(people))
	for _, p := range people {
		names[p.ID.String()] = p.Name
	}

	slog.Debug("Balances computed",
		"people", len(people),
		"expenses", len(expenses),
		"settlements", len(settlements),
		"payments", len(balances),
	)
	return connect.NewResponse(&api.GetBalancesResponse{
		Balances: toAPIBalances(balances, names),
		Members:  toAPIMembers(members, names),
	}), nil
}

// expenseInput converts wire fields to validator input, rounding amounts to
// whole cents as they will be stored. Malformed IDs fail with
// CodeInvalidArgument; blank IDs become uuid.Nil.
func (s *LedgerService) expenseInput(description string, total float64, paidBy string, splits []api.Split) (calculator.ExpenseInput, error) {
	if len(splits) > s.maxGroupSize {
		return calculator.ExpenseInput{}, connect.NewError(connect.CodeResourceExhausted,
			fmt.Errorf("an expense can have at most %d splits", s.maxGroupSize))
	}

	payer, err := parseOptionalID("payer id", paidBy)
	if err != nil {
		return calculator.ExpenseInput{}, err
	}

	input := calculator.ExpenseInput{
		Description: strings.TrimSpace(description),
		TotalAmount: money.Round2(total),
		PaidBy:      payer,
		Splits:      make([]calculator.SplitInput, len(splits)),
	}
	for i, split := range splits {
		id, err := parseOptionalID("split person id", split.PersonID)
		if err != nil {
			return calculator.ExpenseInput{}, err
		}
		input.Splits[i] = calculator.SplitInput{PersonID: id, Amount: money.Round2(split.Amount)}
	}
	return input, nil
}

var _ apiconnect.LedgerServiceHandler = (*LedgerService)(nil)
