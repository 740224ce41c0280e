// Package apiconnect wires the splitledger.v1 services to Connect handlers
// and clients using the JSON codec from package api.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService.
const LedgerServiceName = "splitledger.v1.LedgerService"

// These constants are the fully-qualified names of the RPCs defined in
// LedgerService. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	// LedgerServiceListPeopleProcedure is the fully-qualified name of the LedgerService's ListPeople RPC.
	LedgerServiceListPeopleProcedure = "/splitledger.v1.LedgerService/ListPeople"
	// LedgerServiceAddPersonProcedure is the fully-qualified name of the LedgerService's AddPerson RPC.
	LedgerServiceAddPersonProcedure = "/splitledger.v1.LedgerService/AddPerson"
	// LedgerServiceDeletePersonProcedure is the fully-qualified name of the LedgerService's DeletePerson RPC.
	LedgerServiceDeletePersonProcedure = "/splitledger.v1.LedgerService/DeletePerson"
	// LedgerServiceListExpensesProcedure is the fully-qualified name of the LedgerService's ListExpenses RPC.
	LedgerServiceListExpensesProcedure = "/splitledger.v1.LedgerService/ListExpenses"
	// LedgerServiceAddExpenseProcedure is the fully-qualified name of the LedgerService's AddExpense RPC.
	LedgerServiceAddExpenseProcedure = "/splitledger.v1.LedgerService/AddExpense"
	// LedgerServiceDeleteExpenseProcedure is the fully-qualified name of the LedgerService's DeleteExpense RPC.
	LedgerServiceDeleteExpenseProcedure = "/splitledger.v1.LedgerService/DeleteExpense"
	// LedgerServiceValidateExpenseProcedure is the fully-qualified name of the LedgerService's ValidateExpense RPC.
	LedgerServiceValidateExpenseProcedure = "/splitledger.v1.LedgerService/ValidateExpense"
	// LedgerServiceSplitEvenlyProcedure is the fully-qualified name of the LedgerService's SplitEvenly RPC.
	LedgerServiceSplitEvenlyProcedure = "/splitledger.v1.LedgerService/SplitEvenly"
	// LedgerServiceListSettlementsProcedure is the fully-qualified name of the LedgerService's ListSettlements RPC.
	LedgerServiceListSettlementsProcedure = "/splitledger.v1.LedgerService/ListSettlements"
	// LedgerServiceAddSettlementProcedure is the fully-qualified name of the LedgerService's AddSettlement RPC.
	LedgerServiceAddSettlementProcedure = "/splitledger.v1.LedgerService/AddSettlement"
	// LedgerServiceDeleteSettlementProcedure is the fully-qualified name of the LedgerService's DeleteSettlement RPC.
	LedgerServiceDeleteSettlementProcedure = "/splitledger.v1.LedgerService/DeleteSettlement"
	// LedgerServiceGetBalancesProcedure is the fully-qualified name of the LedgerService's GetBalances RPC.
	LedgerServiceGetBalancesProcedure = "/splitledger.v1.LedgerService/GetBalances"
)

// LedgerServiceClient is a client for the splitledger.v1.LedgerService service.
type LedgerServiceClient interface {
	// ListPeople returns everyone in the ledger, in the order they were added.
	ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error)
	// AddPerson adds a person with a unique name.
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error)
	// DeletePerson removes a person no expense or settlement references.
	DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error)
	// ListExpenses returns all expenses, most recently recorded first.
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	// AddExpense validates and records an expense.
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	// DeleteExpense removes an expense and its splits.
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	// ValidateExpense reports every problem with an expense without saving it.
	ValidateExpense(context.Context, *connect.Request[api.ValidateExpenseRequest]) (*connect.Response[api.ValidateExpenseResponse], error)
	// SplitEvenly divides a total equally, the last person absorbing the rounding remainder.
	SplitEvenly(context.Context, *connect.Request[api.SplitEvenlyRequest]) (*connect.Response[api.SplitEvenlyResponse], error)
	// ListSettlements returns all settlements, newest first.
	ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error)
	// AddSettlement records a payment between two people.
	AddSettlement(context.Context, *connect.Request[api.AddSettlementRequest]) (*connect.Response[api.AddSettlementResponse], error)
	// DeleteSettlement removes a settlement.
	DeleteSettlement(context.Context, *connect.Request[api.DeleteSettlementRequest]) (*connect.Response[api.DeleteSettlementResponse], error)
	// GetBalances computes who owes whom from the full history.
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
}

// NewLedgerServiceClient constructs a client for the splitledger.v1.LedgerService service. Messages are
// JSON encoded; opts are applied after the codec option.
//
// The URL supplied here should be the base URL for the server (for example,
// http://localhost:8080).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &ledgerServiceClient{
		listPeople: connect.NewClient[api.ListPeopleRequest, api.ListPeopleResponse](
			httpClient,
			baseURL+LedgerServiceListPeopleProcedure,
			opts...,
		),
		addPerson: connect.NewClient[api.AddPersonRequest, api.AddPersonResponse](
			httpClient,
			baseURL+LedgerServiceAddPersonProcedure,
			opts...,
		),
		deletePerson: connect.NewClient[api.DeletePersonRequest, api.DeletePersonResponse](
			httpClient,
			baseURL+LedgerServiceDeletePersonProcedure,
			opts...,
		),
		listExpenses: connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](
			httpClient,
			baseURL+LedgerServiceListExpensesProcedure,
			opts...,
		),
		addExpense: connect.NewClient[api.AddExpenseRequest, api.AddExpenseResponse](
			httpClient,
			baseURL+LedgerServiceAddExpenseProcedure,
			opts...,
		),
		deleteExpense: connect.NewClient[api.DeleteExpenseRequest, api.DeleteExpenseResponse](
			httpClient,
			baseURL+LedgerServiceDeleteExpenseProcedure,
			opts...,
		),
		validateExpense: connect.NewClient[api.ValidateExpenseRequest, api.ValidateExpenseResponse](
			httpClient,
			baseURL+LedgerServiceValidateExpenseProcedure,
			opts...,
		),
		splitEvenly: connect.NewClient[api.SplitEvenlyRequest, api.SplitEvenlyResponse](
			httpClient,
			baseURL+LedgerServiceSplitEvenlyProcedure,
			opts...,
		),
		listSettlements: connect.NewClient[api.ListSettlementsRequest, api.ListSettlementsResponse](
			httpClient,
			baseURL+LedgerServiceListSettlementsProcedure,
			opts...,
		),
		addSettlement: connect.NewClient[api.AddSettlementRequest, api.AddSettlementResponse](
			httpClient,
			baseURL+LedgerServiceAddSettlementProcedure,
			opts...,
		),
		deleteSettlement: connect.NewClient[api.DeleteSettlementRequest, api.DeleteSettlementResponse](
			httpClient,
			baseURL+LedgerServiceDeleteSettlementProcedure,
			opts...,
		),
		getBalances: connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](
			httpClient,
			baseURL+LedgerServiceGetBalancesProcedure,
			opts...,
		),
	}
}

// ledgerServiceClient implements LedgerServiceClient.
type ledgerServiceClient struct {
	listPeople *connect.Client[api.ListPeopleRequest, api.ListPeopleResponse]
	addPerson *connect.Client[api.AddPersonRequest, api.AddPersonResponse]
	deletePerson *connect.Client[api.DeletePersonRequest, api.DeletePersonResponse]
	listExpenses *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	addExpense *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	deleteExpense *connect.Client[api.DeleteExpenseRequest, api.DeleteExpenseResponse]
	validateExpense *connect.Client[api.ValidateExpenseRequest, api.ValidateExpenseResponse]
	splitEvenly *connect.Client[api.SplitEvenlyRequest, api.SplitEvenlyResponse]
	listSettlements *connect.Client[api.ListSettlementsRequest, api.ListSettlementsResponse]
	addSettlement *connect.Client[api.AddSettlementRequest, api.AddSettlementResponse]
	deleteSettlement *connect.Client[api.DeleteSettlementRequest, api.DeleteSettlementResponse]
	getBalances *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
}

// ListPeople calls splitledger.v1.LedgerService.ListPeople.
func (c *ledgerServiceClient) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	return c.listPeople.CallUnary(ctx, req)
}

// AddPerson calls splitledger.v1.LedgerService.AddPerson.
func (c *ledgerServiceClient) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

// DeletePerson calls splitledger.v1.LedgerService.DeletePerson.
func (c *ledgerServiceClient) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	return c.deletePerson.CallUnary(ctx, req)
}

// ListExpenses calls splitledger.v1.LedgerService.ListExpenses.
func (c *ledgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

// AddExpense calls splitledger.v1.LedgerService.AddExpense.
func (c *ledgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

// DeleteExpense calls splitledger.v1.LedgerService.DeleteExpense.
func (c *ledgerServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

// ValidateExpense calls splitledger.v1.LedgerService.ValidateExpense.
func (c *ledgerServiceClient) ValidateExpense(ctx context.Context, req *connect.Request[api.ValidateExpenseRequest]) (*connect.Response[api.ValidateExpenseResponse], error) {
	return c.validateExpense.CallUnary(ctx, req)
}

// SplitEvenly calls splitledger.v1.LedgerService.SplitEvenly.
func (c *ledgerServiceClient) SplitEvenly(ctx context.Context, req *connect.Request[api.SplitEvenlyRequest]) (*connect.Response[api.SplitEvenlyResponse], error) {
	return c.splitEvenly.CallUnary(ctx, req)
}

// ListSettlements calls splitledger.v1.LedgerService.ListSettlements.
func (c *ledgerServiceClient) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

// AddSettlement calls splitledger.v1.LedgerService.AddSettlement.
func (c *ledgerServiceClient) AddSettlement(ctx context.Context, req *connect.Request[api.AddSettlementRequest]) (*connect.Response[api.AddSettlementResponse], error) {
	return c.addSettlement.CallUnary(ctx, req)
}

// DeleteSettlement calls splitledger.v1.LedgerService.DeleteSettlement.
func (c *ledgerServiceClient) DeleteSettlement(ctx context.Context, req *connect.Request[api.DeleteSettlementRequest]) (*connect.Response[api.DeleteSettlementResponse], error) {
	return c.deleteSettlement.CallUnary(ctx, req)
}

// GetBalances calls splitledger.v1.LedgerService.GetBalances.
func (c *ledgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

// LedgerServiceHandler is an implementation of the splitledger.v1.LedgerService service.
type LedgerServiceHandler interface {
	// ListPeople returns everyone in the ledger, in the order they were added.
	ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error)
	// AddPerson adds a person with a unique name.
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error)
	// DeletePerson removes a person no expense or settlement references.
	DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error)
	// ListExpenses returns all expenses, most recently recorded first.
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	// AddExpense validates and records an expense.
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	// DeleteExpense removes an expense and its splits.
	DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error)
	// ValidateExpense reports every problem with an expense without saving it.
	ValidateExpense(context.Context, *connect.Request[api.ValidateExpenseRequest]) (*connect.Response[api.ValidateExpenseResponse], error)
	// SplitEvenly divides a total equally, the last person absorbing the rounding remainder.
	SplitEvenly(context.Context, *connect.Request[api.SplitEvenlyRequest]) (*connect.Response[api.SplitEvenlyResponse], error)
	// ListSettlements returns all settlements, newest first.
	ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error)
	// AddSettlement records a payment between two people.
	AddSettlement(context.Context, *connect.Request[api.AddSettlementRequest]) (*connect.Response[api.AddSettlementResponse], error)
	// DeleteSettlement removes a settlement.
	DeleteSettlement(context.Context, *connect.Request[api.DeleteSettlementRequest]) (*connect.Response[api.DeleteSettlementResponse], error)
	// GetBalances computes who owes whom from the full history.
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	ledgerServiceListPeopleHandler := connect.NewUnaryHandler(
		LedgerServiceListPeopleProcedure,
		svc.ListPeople,
		append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...,
	)
	ledgerServiceAddPersonHandler := connect.NewUnaryHandler(
		LedgerServiceAddPersonProcedure,
		svc.AddPerson,
		opts...,
	)
	ledgerServiceDeletePersonHandler := connect.NewUnaryHandler(
		LedgerServiceDeletePersonProcedure,
		svc.DeletePerson,
		opts...,
	)
	ledgerServiceListExpensesHandler := connect.NewUnaryHandler(
		LedgerServiceListExpensesProcedure,
		svc.ListExpenses,
		append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...,
	)
	ledgerServiceAddExpenseHandler := connect.NewUnaryHandler(
		LedgerServiceAddExpenseProcedure,
		svc.AddExpense,
		opts...,
	)
	ledgerServiceDeleteExpenseHandler := connect.NewUnaryHandler(
		LedgerServiceDeleteExpenseProcedure,
		svc.DeleteExpense,
		opts...,
	)
	ledgerServiceValidateExpenseHandler := connect.NewUnaryHandler(
		LedgerServiceValidateExpenseProcedure,
		svc.ValidateExpense,
		append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...,
	)
	ledgerServiceSplitEvenlyHandler := connect.NewUnaryHandler(
		LedgerServiceSplitEvenlyProcedure,
		svc.SplitEvenly,
		append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...,
	)
	ledgerServiceListSettlementsHandler := connect.NewUnaryHandler(
		LedgerServiceListSettlementsProcedure,
		svc.ListSettlements,
		append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...,
	)
	ledgerServiceAddSettlementHandler := connect.NewUnaryHandler(
		LedgerServiceAddSettlementProcedure,
		svc.AddSettlement,
		opts...,
	)
	ledgerServiceDeleteSettlementHandler := connect.NewUnaryHandler(
		LedgerServiceDeleteSettlementProcedure,
		svc.DeleteSettlement,
		opts...,
	)
	ledgerServiceGetBalancesHandler := connect.NewUnaryHandler(
		LedgerServiceGetBalancesProcedure,
		svc.GetBalances,
		append(opts, connect.WithIdempotency(connect.IdempotencyNoSideEffects))...,
	)
	return "/splitledger.v1.LedgerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceListPeopleProcedure:
			ledgerServiceListPeopleHandler.ServeHTTP(w, r)
		case LedgerServiceAddPersonProcedure:
			ledgerServiceAddPersonHandler.ServeHTTP(w, r)
		case LedgerServiceDeletePersonProcedure:
			ledgerServiceDeletePersonHandler.ServeHTTP(w, r)
		case LedgerServiceListExpensesProcedure:
			ledgerServiceListExpensesHandler.ServeHTTP(w, r)
		case LedgerServiceAddExpenseProcedure:
			ledgerServiceAddExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceDeleteExpenseProcedure:
			ledgerServiceDeleteExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceValidateExpenseProcedure:
			ledgerServiceValidateExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceSplitEvenlyProcedure:
			ledgerServiceSplitEvenlyHandler.ServeHTTP(w, r)
		case LedgerServiceListSettlementsProcedure:
			ledgerServiceListSettlementsHandler.ServeHTTP(w, r)
		case LedgerServiceAddSettlementProcedure:
			ledgerServiceAddSettlementHandler.ServeHTTP(w, r)
		case LedgerServiceDeleteSettlementProcedure:
			ledgerServiceDeleteSettlementHandler.ServeHTTP(w, r)
		case LedgerServiceGetBalancesProcedure:
			ledgerServiceGetBalancesHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.ListPeople is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.AddPerson is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.DeletePerson is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.ListExpenses is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.AddExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeleteExpense(context.Context, *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.DeleteExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ValidateExpense(context.Context, *connect.Request[api.ValidateExpenseRequest]) (*connect.Response[api.ValidateExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.ValidateExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SplitEvenly(context.Context, *connect.Request[api.SplitEvenlyRequest]) (*connect.Response[api.SplitEvenlyResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.SplitEvenly is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.ListSettlements is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddSettlement(context.Context, *connect.Request[api.AddSettlementRequest]) (*connect.Response[api.AddSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.AddSettlement is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeleteSettlement(context.Context, *connect.Request[api.DeleteSettlementRequest]) (*connect.Response[api.DeleteSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.DeleteSettlement is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetBalances is not implemented"))
}
