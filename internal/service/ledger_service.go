package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mmynk/splitcycle/internal/calculator"
	"github.com/mmynk/splitcycle/internal/ledger"
	"github.com/mmynk/splitcycle/internal/metrics"
	"github.com/mmynk/splitcycle/internal/models"
	"github.com/mmynk/splitcycle/pkg/api"
	"github.com/mmynk/splitcycle/pkg/api/apiconnect"
)

// MaxExpenseAmount is the largest amount a single expense may record.
const MaxExpenseAmount = 1_000_000

// LedgerService implements the Connect LedgerService
type LedgerService struct {
	apiconnect.UnimplementedLedgerServiceHandler

	ledger   *ledger.Store
	validate *validator.Validate
	metrics  *metrics.Metrics
	now      func() time.Time

	// mu serializes check-then-write sequences (unique names, non-empty cycle).
	mu sync.Mutex
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithMetrics records ledger metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *LedgerService) { s.metrics = m }
}

// WithClock sets the time source used to date expenses.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) { s.now = now }
}

// NewLedgerService creates a new LedgerService over an opened ledger.
func NewLedgerService(store *ledger.Store, opts ...Option) *LedgerService {
	s := &LedgerService{
		ledger:   store,
		validate: newValidator(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refreshMetrics()
	return s
}

// AddPerson adds a person with a unique name.
func (s *LedgerService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	msg := req.Msg
	msg.Name = strings.TrimSpace(msg.Name)
	msg.ColorHex = strings.TrimSpace(msg.ColorHex)

	slog.Info("AddPerson request received", "name", msg.Name)

	if err := s.validate.Struct(msg); err != nil {
		return nil, invalidArgument(err)
	}

	colorHex := ""
	if msg.ColorHex != "" {
		normalized, err := NormalizeColor(msg.ColorHex)
		if err != nil {
			return nil, invalidArgument(err)
		}
		colorHex = normalized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.ledger.PersonByName(msg.Name); ok {
		return nil, connect.NewError(connect.CodeAlreadyExists,
			fmt.Errorf("a person named %q already exists (%s)", existing.Name, existing.ID))
	}

	person := models.NewPerson(msg.Name, colorHex)
	if _, err := s.ledger.AddPerson(ctx, person); err != nil {
		slog.Error("AddPerson failed", "error", err)
		return nil, ledgerError(err)
	}
	s.refreshMetrics()

	slog.Info("Person added", "person_id", person.ID, "color", person.ColorHex)

	return connect.NewResponse(&api.AddPersonResponse{
		Person: toAPIPerson(*person),
	}), nil
}

// RenamePerson changes a person's display name. A different casing of the
// person's own name is allowed; another person's name is not.
func (s *LedgerService) RenamePerson(ctx context.Context, req *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.RenamePersonResponse], error) {
	msg := req.Msg
	msg.Name = strings.TrimSpace(msg.Name)

	slog.Info("RenamePerson request received", "person_id", msg.PersonID, "name", msg.Name)

	if err := s.validate.Struct(msg); err != nil {
		return nil, invalidArgument(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if other, ok := s.ledger.PersonByName(msg.Name); ok && other.ID != msg.PersonID {
		return nil, connect.NewError(connect.CodeAlreadyExists,
			fmt.Errorf("a person named %q already exists (%s)", other.Name, other.ID))
	}

	renamed, err := s.ledger.RenamePerson(ctx, msg.PersonID, msg.Name)
	if err != nil {
		slog.Error("RenamePerson failed", "person_id", msg.PersonID, "error", err)
		return nil, ledgerError(err)
	}
	if !renamed {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: %s", ledger.ErrPersonNotFound, msg.PersonID))
	}

	person, _ := s.ledger.Person(msg.PersonID)
	return connect.NewResponse(&api.RenamePersonResponse{
		Person: toAPIPerson(person),
	}), nil
}

// RemovePerson removes a person and the active expenses they paid.
func (s *LedgerService) RemovePerson(ctx context.Context, req *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	slog.Info("RemovePerson request received", "person_id", req.Msg.PersonID)

	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, invalidArgument(err)
	}

	removed, err := s.ledger.RemovePerson(ctx, req.Msg.PersonID)
	if err != nil {
		slog.Error("RemovePerson failed", "person_id", req.Msg.PersonID, "error", err)
		return nil, ledgerError(err)
	}
	s.refreshMetrics()

	return connect.NewResponse(&api.RemovePersonResponse{Removed: removed}), nil
}

// ListPeople returns everyone in insertion order.
func (s *LedgerService) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	people := s.ledger.People()

	out := make([]*api.Person, len(people))
	for i, p := range people {
		out[i] = toAPIPerson(p)
	}

	slog.Debug("ListPeople successful", "count", len(out))

	return connect.NewResponse(&api.ListPeopleResponse{People: out}), nil
}

// AddExpense records an expense in the active cycle.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	msg := req.Msg
	msg.Amount = strings.TrimSpace(msg.Amount)
	msg.Description = strings.TrimSpace(msg.Description)
	msg.Category = strings.TrimSpace(msg.Category)

	slog.Info("AddExpense request received",
		"payer_id", msg.PayerID,
		"amount", msg.Amount,
		"category", msg.Category,
	)

	if err := s.validate.Struct(msg); err != nil {
		return nil, invalidArgument(err)
	}
	amount, err := ParseAmount(msg.Amount)
	if err != nil {
		return nil, invalidArgument(err)
	}

	category := msg.Category
	if category == "" {
		category = models.DefaultCategory
	}
	date := s.now()
	if msg.Date != nil {
		date = *msg.Date
	}

	expense := &models.Expense{
		PayerID:     msg.PayerID,
		Amount:      amount,
		Description: msg.Description,
		Date:        date,
		Category:    category,
	}

	s.mu.Lock()
	err = s.ledger.AddExpense(ctx, expense)
	s.mu.Unlock()
	if err != nil {
		slog.Error("AddExpense failed", "payer_id", msg.PayerID, "error", err)
		return nil, ledgerError(err)
	}
	s.metrics.ExpenseAdded()
	s.refreshMetrics()

	payer, _ := s.ledger.Person(expense.PayerID)

	slog.Info("Expense added", "expense_id", expense.ID, "payer_id", expense.PayerID, "amount", amount)

	return connect.NewResponse(&api.AddExpenseResponse{
		Expense: toAPIExpense(*expense, payer.Name),
	}), nil
}

// RemoveExpense deletes an active expense.
func (s *LedgerService) RemoveExpense(ctx context.Context, req *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.RemoveExpenseResponse], error) {
	slog.Info("RemoveExpense request received", "expense_id", req.Msg.ExpenseID)

	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, invalidArgument(err)
	}

	removed, err := s.ledger.RemoveExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("RemoveExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, ledgerError(err)
	}
	s.refreshMetrics()

	return connect.NewResponse(&api.RemoveExpenseResponse{Removed: removed}), nil
}

// ListExpenses returns active expenses matching the filters along with the
// category breakdown of the whole cycle.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	expenses := s.ledger.FilterExpenses(req.Msg.PayerID, req.Msg.Category)
	names := nameIndex(s.ledger.People())

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	slog.Debug("ListExpenses successful",
		"payer_id", req.Msg.PayerID,
		"category", req.Msg.Category,
		"count", len(expenses),
	)

	return connect.NewResponse(&api.ListExpensesResponse{
		Expenses:   toAPIExpenses(expenses, names),
		Total:      calculator.Round2(total),
		Categories: toAPICategoryTotals(s.ledger.CategoryTotals()),
	}), nil
}

// ListArchivedExpenses returns the expenses of every closed cycle.
func (s *LedgerService) ListArchivedExpenses(ctx context.Context, req *connect.Request[api.ListArchivedExpensesRequest]) (*connect.Response[api.ListArchivedExpensesResponse], error) {
	archived := s.ledger.ArchivedExpenses()
	names := nameIndex(s.ledger.People())

	return connect.NewResponse(&api.ListArchivedExpensesResponse{
		Expenses: toAPIExpenses(archived, names),
	}), nil
}

// ListCategories returns the categories offered for new expenses.
func (s *LedgerService) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	return connect.NewResponse(&api.ListCategoriesResponse{
		Categories:      append([]string(nil), models.Categories...),
		DefaultCategory: models.DefaultCategory,
	}), nil
}

// GetBalances returns the active cycle's balances and suggested transfers.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	sum := s.ledger.Summary()
	names := nameIndex(sum.People)

	balances := make([]*api.Balance, len(sum.People))
	for i, p := range sum.People {
		balances[i] = &api.Balance{
			PersonID:  p.ID,
			Name:      p.Name,
			TotalPaid: calculator.Round2(p.TotalPaid),
			Balance:   sum.Balances[p.ID],
		}
	}

	transfers := make([]*api.Transfer, len(sum.Transfers))
	for i, t := range sum.Transfers {
		transfers[i] = &api.Transfer{
			FromID:   t.From,
			FromName: names[t.From],
			ToID:     t.To,
			ToName:   names[t.To],
			Amount:   t.Amount,
		}
	}

	slog.Debug("GetBalances successful",
		"total", sum.TotalExpenses,
		"transfers", len(transfers),
		"can_end_cycle", sum.CanEndCycle,
	)

	return connect.NewResponse(&api.GetBalancesResponse{
		TotalExpenses: calculator.Round2(sum.TotalExpenses),
		Share:         sum.Share,
		Balances:      balances,
		Transfers:     transfers,
		CanEndCycle:   sum.CanEndCycle,
	}), nil
}

// EndCycle closes the active cycle into a settlement. A cycle with no
// expenses cannot be ended.
func (s *LedgerService) EndCycle(ctx context.Context, req *connect.Request[api.EndCycleRequest]) (*connect.Response[api.EndCycleResponse], error) {
	msg := req.Msg
	msg.Description = strings.TrimSpace(msg.Description)

	slog.Info("EndCycle request received", "description", msg.Description)

	if err := s.validate.Struct(msg); err != nil {
		return nil, invalidArgument(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ledger.Expenses()) == 0 {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errors.New("the active cycle has no expenses"))
	}

	settlement, err := s.ledger.ResetCycle(ctx, msg.Description)
	if settlement != nil {
		s.metrics.CycleEnded()
		s.refreshMetrics()
	}
	if err != nil {
		slog.Error("EndCycle failed", "error", err)
		return nil, ledgerError(err)
	}

	slog.Info("Cycle ended",
		"settlement_id", settlement.ID,
		"transfers", len(settlement.Items()),
		"total", settlement.Total(),
	)

	return connect.NewResponse(&api.EndCycleResponse{
		Settlement: toAPISettlement(settlement),
	}), nil
}

// ListSettlements returns the settlement history, oldest first.
func (s *LedgerService) ListSettlements(ctx context.Context, req *connect.Request[api.ListSettlementsRequest]) (*connect.Response[api.ListSettlementsResponse], error) {
	settlements := s.ledger.Settlements()

	out := make([]*api.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = toAPISettlement(st)
	}

	return connect.NewResponse(&api.ListSettlementsResponse{Settlements: out}), nil
}

// RemoveSettlement deletes a settlement from history.
func (s *LedgerService) RemoveSettlement(ctx context.Context, req *connect.Request[api.RemoveSettlementRequest]) (*connect.Response[api.RemoveSettlementResponse], error) {
	slog.Info("RemoveSettlement request received", "settlement_id", req.Msg.SettlementID)

	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, invalidArgument(err)
	}

	removed, err := s.ledger.RemoveSettlement(ctx, req.Msg.SettlementID)
	if err != nil {
		slog.Error("RemoveSettlement failed", "settlement_id", req.Msg.SettlementID, "error", err)
		return nil, ledgerError(err)
	}

	return connect.NewResponse(&api.RemoveSettlementResponse{Removed: removed}), nil
}

// SetSettlementItemSettled marks one transfer of a settlement as paid or unpaid.
func (s *LedgerService) SetSettlementItemSettled(ctx context.Context, req *connect.Request[api.SetSettlementItemSettledRequest]) (*connect.Response[api.SetSettlementItemSettledResponse], error) {
	slog.Info("SetSettlementItemSettled request received",
		"settlement_id", req.Msg.SettlementID,
		"index", req.Msg.Index,
		"settled", req.Msg.Settled,
	)

	if err := s.validate.Struct(req.Msg); err != nil {
		return nil, invalidArgument(err)
	}

	settlement, err := s.ledger.SetItemSettled(ctx, req.Msg.SettlementID, req.Msg.Index, req.Msg.Settled)
	if err != nil {
		slog.Error("SetSettlementItemSettled failed", "settlement_id", req.Msg.SettlementID, "error", err)
		return nil, ledgerError(err)
	}

	return connect.NewResponse(&api.SetSettlementItemSettledResponse{
		Settlement: toAPISettlement(settlement),
	}), nil
}

// ClearAll erases every person, expense and settlement.
func (s *LedgerService) ClearAll(ctx context.Context, req *connect.Request[api.ClearAllRequest]) (*connect.Response[api.ClearAllResponse], error) {
	slog.Warn("ClearAll request received")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledger.ClearAll(ctx); err != nil {
		slog.Error("ClearAll failed", "error", err)
		return nil, ledgerError(err)
	}
	s.refreshMetrics()

	return connect.NewResponse(&api.ClearAllResponse{}), nil
}

// ParseAmount parses an amount as typed by a user. It must be a finite number
// greater than zero and at most MaxExpenseAmount.
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errors.New("amount is required")
	}
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("amount %q is not a number", text)
	}
	if amount <= 0 {
		return 0, errors.New("amount must be greater than zero")
	}
	if amount > MaxExpenseAmount {
		return 0, fmt.Errorf("amount must be at most %d", MaxExpenseAmount)
	}
	return amount, nil
}

// NormalizeColor accepts #RGB or #RRGGBB and returns the upper-case #RRGGBB form.
func NormalizeColor(hex string) (string, error) {
	if len(hex) != 4 && len(hex) != 7 {
		return "", fmt.Errorf("colorHex %q must be #RGB or #RRGGBB", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("colorHex %q: %w", hex, err)
	}
	return strings.ToUpper(c.Hex()), nil
}

func (s *LedgerService) refreshMetrics() {
	if s.metrics == nil {
		return
	}
	sum := s.ledger.Summary()

	var outstanding float64
	for _, b := range sum.Balances {
		if b > 0 {
			outstanding += b
		}
	}
	s.metrics.SetLedgerState(len(sum.People), len(s.ledger.Expenses()), calculator.Round2(outstanding))
}
