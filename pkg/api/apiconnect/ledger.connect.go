// Package apiconnect wires the splitcycle.v1.LedgerService messages to
// Connect. Messages are plain structs encoded with JSONCodec, so handlers and
// clients use the Connect protocol with "application/json" bodies.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitcycle/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "splitcycle.v1.LedgerService"

// Procedure paths, as sent on the wire.
const (
	LedgerServiceAddPersonProcedure                = "/splitcycle.v1.LedgerService/AddPerson"
	LedgerServiceRenamePersonProcedure             = "/splitcycle.v1.LedgerService/RenamePerson"
	LedgerServiceRemovePersonProcedure             = "/splitcycle.v1.LedgerService/RemovePerson"
	LedgerServiceListPeopleProcedure               = "/splitcycle.v1.LedgerService/ListPeople"
	LedgerServiceAddExpenseProcedure               = "/splitcycle.v1.LedgerService/AddExpense"
	LedgerServiceRemoveExpenseProcedure            = "/splitcycle.v1.LedgerService/RemoveExpense"
	LedgerServiceListExpensesProcedure             = "/splitcycle.v1.LedgerService/ListExpenses"
	LedgerServiceListArchivedExpensesProcedure     = "/splitcycle.v1.LedgerService/ListArchivedExpenses"
	LedgerServiceListCategoriesProcedure           = "/splitcycle.v1.LedgerService/ListCategories"
	LedgerServiceGetBalancesProcedure              = "/splitcycle.v1.LedgerService/GetBalances"
	LedgerServiceEndCycleProcedure                 = "/splitcycle.v1.LedgerService/EndCycle"
	LedgerServiceListSettlementsProcedure          = "/splitcycle.v1.LedgerService/ListSettlements"
	LedgerServiceRemoveSettlementProcedure         = "/splitcycle.v1.LedgerService/RemoveSettlement"
	LedgerServiceSetSettlementItemSettledProcedure = "/splitcycle.v1.LedgerService/SetSettlementItemSettled"
	LedgerServiceClearAllProcedure                 = "/splitcycle.v1.LedgerService/ClearAll"
)

// LedgerServiceClient is a client for the splitcycle.v1.LedgerService service.
type LedgerServiceClient interface {
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error)
	RenamePerson(context.Context, *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.RenamePersonResponse], error)
	RemovePerson(context.Context, *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error)
	ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	RemoveExpense(context.Context, *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.RemoveExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	ListArchivedExpenses(context.Context, *connect.Request[api.ListArchivedExpensesRequest]) (*connect.Response[api.ListArchivedExpensesResponse], error)
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	EndCycle(context.Context, *connect.Request[api.EndCycleRequest]) (*connect.Response[api.EndCycleResponse], error)
	ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error)
	RemoveSettlement(context.Context, *connect.Request[api.RemoveSettlementRequest]) (*connect.Response[api.RemoveSettlementResponse], error)
	SetSettlementItemSettled(context.Context, *connect.Request[api.SetSettlementItemSettledRequest]) (*connect.Response[api.SetSettlementItemSettledResponse], error)
	ClearAll(context.Context, *connect.Request[api.ClearAllRequest]) (*connect.Response[api.ClearAllResponse], error)
}

// NewLedgerServiceClient constructs a client for the
// splitcycle.v1.LedgerService service. baseURL is the server root, e.g.
// http://localhost:8080.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &ledgerServiceClient{
		addPerson: connect.NewClient[api.AddPersonRequest, api.AddPersonResponse](
			httpClient,
			baseURL+LedgerServiceAddPersonProcedure,
			opts...,
		),
		renamePerson: connect.NewClient[api.RenamePersonRequest, api.RenamePersonResponse](
			httpClient,
			baseURL+LedgerServiceRenamePersonProcedure,
			opts...,
		),
		removePerson: connect.NewClient[api.RemovePersonRequest, api.RemovePersonResponse](
			httpClient,
			baseURL+LedgerServiceRemovePersonProcedure,
			opts...,
		),
		listPeople: connect.NewClient[api.ListPeopleRequest, api.ListPeopleResponse](
			httpClient,
			baseURL+LedgerServiceListPeopleProcedure,
			opts...,
		),
		addExpense: connect.NewClient[api.AddExpenseRequest, api.AddExpenseResponse](
			httpClient,
			baseURL+LedgerServiceAddExpenseProcedure,
			opts...,
		),
		removeExpense: connect.NewClient[api.RemoveExpenseRequest, api.RemoveExpenseResponse](
			httpClient,
			baseURL+LedgerServiceRemoveExpenseProcedure,
			opts...,
		),
		listExpenses: connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](
			httpClient,
			baseURL+LedgerServiceListExpensesProcedure,
			opts...,
		),
		listArchivedExpenses: connect.NewClient[api.ListArchivedExpensesRequest, api.ListArchivedExpensesResponse](
			httpClient,
			baseURL+LedgerServiceListArchivedExpensesProcedure,
			opts...,
		),
		listCategories: connect.NewClient[api.ListCategoriesRequest, api.ListCategoriesResponse](
			httpClient,
			baseURL+LedgerServiceListCategoriesProcedure,
			opts...,
		),
		getBalances: connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](
			httpClient,
			baseURL+LedgerServiceGetBalancesProcedure,
			opts...,
		),
		endCycle: connect.NewClient[api.EndCycleRequest, api.EndCycleResponse](
			httpClient,
			baseURL+LedgerServiceEndCycleProcedure,
			opts...,
		),
		listSettlements: connect.NewClient[api.ListSettlementsRequest, api.ListSettlementsResponse](
			httpClient,
			baseURL+LedgerServiceListSettlementsProcedure,
			opts...,
		),
		removeSettlement: connect.NewClient[api.RemoveSettlementRequest, api.RemoveSettlementResponse](
			httpClient,
			baseURL+LedgerServiceRemoveSettlementProcedure,
			opts...,
		),
		setSettlementItemSettled: connect.NewClient[api.SetSettlementItemSettledRequest, api.SetSettlementItemSettledResponse](
			httpClient,
			baseURL+LedgerServiceSetSettlementItemSettledProcedure,
			opts...,
		),
		clearAll: connect.NewClient[api.ClearAllRequest, api.ClearAllResponse](
			httpClient,
			baseURL+LedgerServiceClearAllProcedure,
			opts...,
		),
	}
}

// ledgerServiceClient implements LedgerServiceClient.
type ledgerServiceClient struct {
	addPerson                *connect.Client[api.AddPersonRequest, api.AddPersonResponse]
	renamePerson             *connect.Client[api.RenamePersonRequest, api.RenamePersonResponse]
	removePerson             *connect.Client[api.RemovePersonRequest, api.RemovePersonResponse]
	listPeople               *connect.Client[api.ListPeopleRequest, api.ListPeopleResponse]
	addExpense               *connect.Client[api.AddExpenseRequest, api.AddExpenseResponse]
	removeExpense            *connect.Client[api.RemoveExpenseRequest, api.RemoveExpenseResponse]
	listExpenses             *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	listArchivedExpenses     *connect.Client[api.ListArchivedExpensesRequest, api.ListArchivedExpensesResponse]
	listCategories           *connect.Client[api.ListCategoriesRequest, api.ListCategoriesResponse]
	getBalances              *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
	endCycle                 *connect.Client[api.EndCycleRequest, api.EndCycleResponse]
	listSettlements          *connect.Client[api.ListSettlementsRequest, api.ListSettlementsResponse]
	removeSettlement         *connect.Client[api.RemoveSettlementRequest, api.RemoveSettlementResponse]
	setSettlementItemSettled *connect.Client[api.SetSettlementItemSettledRequest, api.SetSettlementItemSettledResponse]
	clearAll                 *connect.Client[api.ClearAllRequest, api.ClearAllResponse]
}

// AddPerson calls splitcycle.v1.LedgerService.AddPerson.
func (c *ledgerServiceClient) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

// RenamePerson calls splitcycle.v1.LedgerService.RenamePerson.
func (c *ledgerServiceClient) RenamePerson(ctx context.Context, req *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.RenamePersonResponse], error) {
	return c.renamePerson.CallUnary(ctx, req)
}

// RemovePerson calls splitcycle.v1.LedgerService.RemovePerson.
func (c *ledgerServiceClient) RemovePerson(ctx context.Context, req *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	return c.removePerson.CallUnary(ctx, req)
}

// ListPeople calls splitcycle.v1.LedgerService.ListPeople.
func (c *ledgerServiceClient) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	return c.listPeople.CallUnary(ctx, req)
}

// AddExpense calls splitcycle.v1.LedgerService.AddExpense.
func (c *ledgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

// RemoveExpense calls splitcycle.v1.LedgerService.RemoveExpense.
func (c *ledgerServiceClient) RemoveExpense(ctx context.Context, req *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.RemoveExpenseResponse], error) {
	return c.removeExpense.CallUnary(ctx, req)
}

// ListExpenses calls splitcycle.v1.LedgerService.ListExpenses.
func (c *ledgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

// ListArchivedExpenses calls splitcycle.v1.LedgerService.ListArchivedExpenses.
func (c *ledgerServiceClient) ListArchivedExpenses(ctx context.Context, req *connect.Request[api.ListArchivedExpensesRequest]) (*connect.Response[api.ListArchivedExpensesResponse], error) {
	return c.listArchivedExpenses.CallUnary(ctx, req)
}

// ListCategories calls splitcycle.v1.LedgerService.ListCategories.
func (c *ledgerServiceClient) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

// GetBalances calls splitcycle.v1.LedgerService.GetBalances.
func (c *ledgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

// EndCycle calls splitcycle.v1.LedgerService.EndCycle.
func (c *ledgerServiceClient) EndCycle(ctx context.Context, req *connect.Request[api.EndCycleRequest]) (*connect.Response[api.EndCycleResponse], error) {
	return c.endCycle.CallUnary(ctx, req)
}

// ListSettlements calls splitcycle.v1.LedgerService.ListSettlements.
func (c *ledgerServiceClient) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

// RemoveSettlement calls splitcycle.v1.LedgerService.RemoveSettlement.
func (c *ledgerServiceClient) RemoveSettlement(ctx context.Context, req *connect.Request[api.RemoveSettlementRequest]) (*connect.Response[api.RemoveSettlementResponse], error) {
	return c.removeSettlement.CallUnary(ctx, req)
}

// SetSettlementItemSettled calls splitcycle.v1.LedgerService.SetSettlementItemSettled.
func (c *ledgerServiceClient) SetSettlementItemSettled(ctx context.Context, req *connect.Request[api.SetSettlementItemSettledRequest]) (*connect.Response[api.SetSettlementItemSettledResponse], error) {
	return c.setSettlementItemSettled.CallUnary(ctx, req)
}

// ClearAll calls splitcycle.v1.LedgerService.ClearAll.
func (c *ledgerServiceClient) ClearAll(ctx context.Context, req *connect.Request[api.ClearAllRequest]) (*connect.Response[api.ClearAllResponse], error) {
	return c.clearAll.CallUnary(ctx, req)
}

// LedgerServiceHandler is an implementation of the splitcycle.v1.LedgerService service.
type LedgerServiceHandler interface {
	AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error)
	RenamePerson(context.Context, *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.RenamePersonResponse], error)
	RemovePerson(context.Context, *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error)
	ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error)
	AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error)
	RemoveExpense(context.Context, *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.RemoveExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	ListArchivedExpenses(context.Context, *connect.Request[api.ListArchivedExpensesRequest]) (*connect.Response[api.ListArchivedExpensesResponse], error)
	ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error)
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	EndCycle(context.Context, *connect.Request[api.EndCycleRequest]) (*connect.Response[api.EndCycleResponse], error)
	ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error)
	RemoveSettlement(context.Context, *connect.Request[api.RemoveSettlementRequest]) (*connect.Response[api.RemoveSettlementResponse], error)
	SetSettlementItemSettled(context.Context, *connect.Request[api.SetSettlementItemSettledRequest]) (*connect.Response[api.SetSettlementItemSettledResponse], error)
	ClearAll(context.Context, *connect.Request[api.ClearAllRequest]) (*connect.Response[api.ClearAllResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	addPersonHandler := connect.NewUnaryHandler(
		LedgerServiceAddPersonProcedure,
		svc.AddPerson,
		opts...,
	)
	renamePersonHandler := connect.NewUnaryHandler(
		LedgerServiceRenamePersonProcedure,
		svc.RenamePerson,
		opts...,
	)
	removePersonHandler := connect.NewUnaryHandler(
		LedgerServiceRemovePersonProcedure,
		svc.RemovePerson,
		opts...,
	)
	listPeopleHandler := connect.NewUnaryHandler(
		LedgerServiceListPeopleProcedure,
		svc.ListPeople,
		opts...,
	)
	addExpenseHandler := connect.NewUnaryHandler(
		LedgerServiceAddExpenseProcedure,
		svc.AddExpense,
		opts...,
	)
	removeExpenseHandler := connect.NewUnaryHandler(
		LedgerServiceRemoveExpenseProcedure,
		svc.RemoveExpense,
		opts...,
	)
	listExpensesHandler := connect.NewUnaryHandler(
		LedgerServiceListExpensesProcedure,
		svc.ListExpenses,
		opts...,
	)
	listArchivedExpensesHandler := connect.NewUnaryHandler(
		LedgerServiceListArchivedExpensesProcedure,
		svc.ListArchivedExpenses,
		opts...,
	)
	listCategoriesHandler := connect.NewUnaryHandler(
		LedgerServiceListCategoriesProcedure,
		svc.ListCategories,
		opts...,
	)
	getBalancesHandler := connect.NewUnaryHandler(
		LedgerServiceGetBalancesProcedure,
		svc.GetBalances,
		opts...,
	)
	endCycleHandler := connect.NewUnaryHandler(
		LedgerServiceEndCycleProcedure,
		svc.EndCycle,
		opts...,
	)
	listSettlementsHandler := connect.NewUnaryHandler(
		LedgerServiceListSettlementsProcedure,
		svc.ListSettlements,
		opts...,
	)
	removeSettlementHandler := connect.NewUnaryHandler(
		LedgerServiceRemoveSettlementProcedure,
		svc.RemoveSettlement,
		opts...,
	)
	setSettlementItemSettledHandler := connect.NewUnaryHandler(
		LedgerServiceSetSettlementItemSettledProcedure,
		svc.SetSettlementItemSettled,
		opts...,
	)
	clearAllHandler := connect.NewUnaryHandler(
		LedgerServiceClearAllProcedure,
		svc.ClearAll,
		opts...,
	)
	return "/splitcycle.v1.LedgerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceAddPersonProcedure:
			addPersonHandler.ServeHTTP(w, r)
		case LedgerServiceRenamePersonProcedure:
			renamePersonHandler.ServeHTTP(w, r)
		case LedgerServiceRemovePersonProcedure:
			removePersonHandler.ServeHTTP(w, r)
		case LedgerServiceListPeopleProcedure:
			listPeopleHandler.ServeHTTP(w, r)
		case LedgerServiceAddExpenseProcedure:
			addExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceRemoveExpenseProcedure:
			removeExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceListExpensesProcedure:
			listExpensesHandler.ServeHTTP(w, r)
		case LedgerServiceListArchivedExpensesProcedure:
			listArchivedExpensesHandler.ServeHTTP(w, r)
		case LedgerServiceListCategoriesProcedure:
			listCategoriesHandler.ServeHTTP(w, r)
		case LedgerServiceGetBalancesProcedure:
			getBalancesHandler.ServeHTTP(w, r)
		case LedgerServiceEndCycleProcedure:
			endCycleHandler.ServeHTTP(w, r)
		case LedgerServiceListSettlementsProcedure:
			listSettlementsHandler.ServeHTTP(w, r)
		case LedgerServiceRemoveSettlementProcedure:
			removeSettlementHandler.ServeHTTP(w, r)
		case LedgerServiceSetSettlementItemSettledProcedure:
			setSettlementItemSettledHandler.ServeHTTP(w, r)
		case LedgerServiceClearAllProcedure:
			clearAllHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) AddPerson(context.Context, *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.AddPerson is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RenamePerson(context.Context, *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.RenamePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.RenamePerson is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RemovePerson(context.Context, *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.RemovePerson is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListPeople(context.Context, *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.ListPeople is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddExpense(context.Context, *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.AddExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RemoveExpense(context.Context, *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.RemoveExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.RemoveExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.ListExpenses is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListArchivedExpenses(context.Context, *connect.Request[api.ListArchivedExpensesRequest]) (*connect.Response[api.ListArchivedExpensesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.ListArchivedExpenses is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListCategories(context.Context, *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.ListCategories is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.GetBalances is not implemented"))
}

func (UnimplementedLedgerServiceHandler) EndCycle(context.Context, *connect.Request[api.EndCycleRequest]) (*connect.Response[api.EndCycleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.EndCycle is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListSettlements(context.Context, *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.ListSettlements is not implemented"))
}

func (UnimplementedLedgerServiceHandler) RemoveSettlement(context.Context, *connect.Request[api.RemoveSettlementRequest]) (*connect.Response[api.RemoveSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.RemoveSettlement is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SetSettlementItemSettled(context.Context, *connect.Request[api.SetSettlementItemSettledRequest]) (*connect.Response[api.SetSettlementItemSettledResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.SetSettlementItemSettled is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ClearAll(context.Context, *connect.Request[api.ClearAllRequest]) (*connect.Response[api.ClearAllResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitcycle.v1.LedgerService.ClearAll is not implemented"))
}
