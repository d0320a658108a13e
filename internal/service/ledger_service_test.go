package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/splitcycle/internal/ledger"
	"github.com/mmynk/splitcycle/internal/metrics"
	"github.com/mmynk/splitcycle/internal/middleware"
	"github.com/mmynk/splitcycle/internal/storage/sqlite"
	"github.com/mmynk/splitcycle/pkg/api"
	"github.com/mmynk/splitcycle/pkg/api/apiconnect"
)

var testNow = time.Date(2025, time.March, 14, 18, 30, 0, 0, time.UTC)

type testServer struct {
	client  apiconnect.LedgerServiceClient
	metrics *metrics.Metrics
	dbPath  string
}

// setupLedgerTestServer serves a LedgerService backed by a fresh SQLite file.
func setupLedgerTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupLedgerTestServerAt(t, filepath.Join(t.TempDir(), "ledger.db"))
}

func setupLedgerTestServerAt(t *testing.T, dbPath string) *testServer {
	t.Helper()

	kv, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	clock := func() time.Time { return testNow }
	store, err := ledger.Open(context.Background(), kv,
		ledger.WithClock(clock),
		ledger.WithColorPicker(ledger.FixedColor("#4ECDC4")),
	)
	if err != nil {
		kv.Close()
		t.Fatalf("failed to open ledger: %v", err)
	}

	m := metrics.New()
	svc := NewLedgerService(store, WithMetrics(m), WithClock(clock))

	path, handler := apiconnect.NewLedgerServiceHandler(svc,
		connect.WithInterceptors(m.Interceptor(), middleware.LoggingInterceptor()),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(middleware.RequestLogger(mux))
	t.Cleanup(func() {
		server.Close()
		kv.Close()
	})

	return &testServer{
		client:  apiconnect.NewLedgerServiceClient(http.DefaultClient, server.URL),
		metrics: m,
		dbPath:  dbPath,
	}
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected %v, got %v (%v)", want, got, err)
	}
}

func addPerson(t *testing.T, client apiconnect.LedgerServiceClient, name string) *api.Person {
	t.Helper()

	resp, err := client.AddPerson(context.Background(), connect.NewRequest(&api.AddPersonRequest{Name: name}))
	if err != nil {
		t.Fatalf("AddPerson(%s) failed: %v", name, err)
	}
	return resp.Msg.Person
}

func addExpense(t *testing.T, client apiconnect.LedgerServiceClient, payerID, amount, category string) *api.Expense {
	t.Helper()

	resp, err := client.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
		PayerID:     payerID,
		Amount:      amount,
		Description: "Shared " + strings.ToLower(category),
		Category:    category,
	}))
	if err != nil {
		t.Fatalf("AddExpense(%s, %s) failed: %v", payerID, amount, err)
	}
	return resp.Msg.Expense
}

func TestAddPerson(t *testing.T) {
	ts := setupLedgerTestServer(t)

	alice := addPerson(t, ts.client, "  Alice ")
	if alice.ID != "P1" {
		t.Errorf("id: expected P1, got %s", alice.ID)
	}
	if alice.Name != "Alice" {
		t.Errorf("name: expected 'Alice', got '%s'", alice.Name)
	}
	if alice.ColorHex != "#4ECDC4" {
		t.Errorf("color: expected palette color, got %s", alice.ColorHex)
	}
	if alice.TotalPaid != 0 {
		t.Errorf("totalPaid: expected 0, got %v", alice.TotalPaid)
	}

	bob, err := ts.client.AddPerson(context.Background(), connect.NewRequest(&api.AddPersonRequest{
		Name:     "Bob",
		ColorHex: "#abc",
	}))
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}
	if bob.Msg.Person.ColorHex != "#AABBCC" {
		t.Errorf("color: expected #AABBCC, got %s", bob.Msg.Person.ColorHex)
	}

	list, err := ts.client.ListPeople(context.Background(), connect.NewRequest(&api.ListPeopleRequest{}))
	if err != nil {
		t.Fatalf("ListPeople failed: %v", err)
	}
	if len(list.Msg.People) != 2 || list.Msg.People[0].Name != "Alice" || list.Msg.People[1].Name != "Bob" {
		t.Errorf("expected [Alice Bob], got %+v", list.Msg.People)
	}
}

func TestAddPerson_Invalid(t *testing.T) {
	ts := setupLedgerTestServer(t)
	addPerson(t, ts.client, "Alice")

	tests := []struct {
		name string
		req  *api.AddPersonRequest
		code connect.Code
	}{
		{"blank name", &api.AddPersonRequest{Name: "   "}, connect.CodeInvalidArgument},
		{"long name", &api.AddPersonRequest{Name: strings.Repeat("n", 51)}, connect.CodeInvalidArgument},
		{"bad color", &api.AddPersonRequest{Name: "Carol", ColorHex: "teal"}, connect.CodeInvalidArgument},
		{"unparseable color", &api.AddPersonRequest{Name: "Carol", ColorHex: "#12345678"}, connect.CodeInvalidArgument},
		{"duplicate name", &api.AddPersonRequest{Name: "alice"}, connect.CodeAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.client.AddPerson(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, tt.code)
		})
	}
}

func TestRenamePerson(t *testing.T) {
	ts := setupLedgerTestServer(t)
	alice := addPerson(t, ts.client, "Alice")
	bob := addPerson(t, ts.client, "Bob")

	resp, err := ts.client.RenamePerson(context.Background(), connect.NewRequest(&api.RenamePersonRequest{
		PersonID: alice.ID,
		Name:     "ALICE",
	}))
	if err != nil {
		t.Fatalf("RenamePerson to own name failed: %v", err)
	}
	if resp.Msg.Person.Name != "ALICE" {
		t.Errorf("name: expected 'ALICE', got '%s'", resp.Msg.Person.Name)
	}

	_, err = ts.client.RenamePerson(context.Background(), connect.NewRequest(&api.RenamePersonRequest{
		PersonID: bob.ID,
		Name:     "alice",
	}))
	assertCode(t, err, connect.CodeAlreadyExists)

	_, err = ts.client.RenamePerson(context.Background(), connect.NewRequest(&api.RenamePersonRequest{
		PersonID: "P99",
		Name:     "Zed",
	}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = ts.client.RenamePerson(context.Background(), connect.NewRequest(&api.RenamePersonRequest{
		PersonID: bob.ID,
		Name:     "",
	}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestAddExpense(t *testing.T) {
	ts := setupLedgerTestServer(t)
	alice := addPerson(t, ts.client, "Alice")

	resp, err := ts.client.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
		PayerID:     alice.ID,
		Amount:      " 42.50 ",
		Description: "Weekly groceries",
	}))
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	e := resp.Msg.Expense
	if e.ID != "E1" {
		t.Errorf("id: expected E1, got %s", e.ID)
	}
	if e.Amount != 42.5 {
		t.Errorf("amount: expected 42.5, got %v", e.Amount)
	}
	if e.Category != "Other" {
		t.Errorf("category: expected default 'Other', got '%s'", e.Category)
	}
	if !e.Date.Equal(testNow) {
		t.Errorf("date: expected %v, got %v", testNow, e.Date)
	}
	if e.PayerName != "Alice" {
		t.Errorf("payerName: expected 'Alice', got '%s'", e.PayerName)
	}

	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	resp, err = ts.client.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
		PayerID:     alice.ID,
		Amount:      "1000000",
		Description: "Rent",
		Category:    "Utilities",
		Date:        &date,
	}))
	if err != nil {
		t.Fatalf("AddExpense at the limit failed: %v", err)
	}
	if !resp.Msg.Expense.Date.Equal(date) {
		t.Errorf("date: expected %v, got %v", date, resp.Msg.Expense.Date)
	}
}

func TestAddExpense_Invalid(t *testing.T) {
	ts := setupLedgerTestServer(t)
	alice := addPerson(t, ts.client, "Alice")

	tests := []struct {
		name        string
		payerID     string
		amount      string
		description string
		code        connect.Code
	}{
		{"missing amount", alice.ID, "", "Lunch", connect.CodeInvalidArgument},
		{"text amount", alice.ID, "twelve", "Lunch", connect.CodeInvalidArgument},
		{"NaN amount", alice.ID, "NaN", "Lunch", connect.CodeInvalidArgument},
		{"zero amount", alice.ID, "0", "Lunch", connect.CodeInvalidArgument},
		{"negative amount", alice.ID, "-5", "Lunch", connect.CodeInvalidArgument},
		{"too large", alice.ID, "1000000.01", "Lunch", connect.CodeInvalidArgument},
		{"missing description", alice.ID, "5", "  ", connect.CodeInvalidArgument},
		{"long description", alice.ID, "5", strings.Repeat("d", 101), connect.CodeInvalidArgument},
		{"missing payer", "", "5", "Lunch", connect.CodeInvalidArgument},
		{"unknown payer", "P42", "5", "Lunch", connect.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.client.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
				PayerID:     tt.payerID,
				Amount:      tt.amount,
				Description: tt.description,
			}))
			assertCode(t, err, tt.code)
		})
	}

	list, err := ts.client.ListExpenses(context.Background(), connect.NewRequest(&api.ListExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(list.Msg.Expenses) != 0 {
		t.Errorf("expected no expenses after rejected requests, got %d", len(list.Msg.Expenses))
	}
}

func TestListExpenses_Filters(t *testing.T) {
	ts := setupLedgerTestServer(t)
	alice := addPerson(t, ts.client, "Alice")
	bob := addPerson(t, ts.client, "Bob")

	addExpense(t, ts.client, alice.ID, "30", "Groceries")
	addExpense(t, ts.client, bob.ID, "12.5", "Transportation")
	addExpense(t, ts.client, alice.ID, "20", "Transportation")

	tests := []struct {
		name      string
		req       *api.ListExpensesRequest
		wantCount int
		wantTotal float64
	}{
		{"all", &api.ListExpensesRequest{}, 3, 62.5},
		{"by payer", &api.ListExpensesRequest{PayerID: alice.ID}, 2, 50},
		{"by category", &api.ListExpensesRequest{Category: "Transportation"}, 2, 32.5},
		{"both", &api.ListExpensesRequest{PayerID: bob.ID, Category: "Transportation"}, 1, 12.5},
		{"no match", &api.ListExpensesRequest{Category: "Healthcare"}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := ts.client.ListExpenses(context.Background(), connect.NewRequest(tt.req))
			if err != nil {
				t.Fatalf("ListExpenses failed: %v", err)
			}
			if len(resp.Msg.Expenses) != tt.wantCount {
				t.Errorf("count: expected %d, got %d", tt.wantCount, len(resp.Msg.Expenses))
			}
			if resp.Msg.Total != tt.wantTotal {
				t.Errorf("total: expected %v, got %v", tt.wantTotal, resp.Msg.Total)
			}
			if len(resp.Msg.Categories) != 2 {
				t.Fatalf("categories: expected 2, got %d", len(resp.Msg.Categories))
			}
			if c := resp.Msg.Categories[0]; c.Category != "Transportation" || c.Amount != 32.5 || c.Count != 2 {
				t.Errorf("largest category: unexpected %+v", c)
			}
		})
	}
}

func TestListCategories(t *testing.T) {
	ts := setupLedgerTestServer(t)

	resp, err := ts.client.ListCategories(context.Background(), connect.NewRequest(&api.ListCategoriesRequest{}))
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(resp.Msg.Categories) != 8 {
		t.Errorf("expected 8 categories, got %d", len(resp.Msg.Categories))
	}
	if resp.Msg.DefaultCategory != "Other" {
		t.Errorf("default: expected 'Other', got '%s'", resp.Msg.DefaultCategory)
	}
}

func TestCycleLifecycle(t *testing.T) {
	ts := setupLedgerTestServer(t)
	ctx := context.Background()

	alice := addPerson(t, ts.client, "Alice")
	bob := addPerson(t, ts.client, "Bob")
	carol := addPerson(t, ts.client, "Carol")
	addExpense(t, ts.client, alice.ID, "60", "Groceries")
	addExpense(t, ts.client, carol.ID, "30", "Utilities")

	balances, err := ts.client.GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}
	b := balances.Msg
	if b.TotalExpenses != 90 || b.Share != 30 {
		t.Errorf("expected total 90 and share 30, got %v and %v", b.TotalExpenses, b.Share)
	}
	wantBalances := []float64{30, -30, 0}
	for i, want := range wantBalances {
		if b.Balances[i].Balance != want {
			t.Errorf("%s balance: expected %v, got %v", b.Balances[i].Name, want, b.Balances[i].Balance)
		}
	}
	if len(b.Transfers) != 1 {
		t.Fatalf("expected 1 transfer, got %d", len(b.Transfers))
	}
	if tr := b.Transfers[0]; tr.FromID != bob.ID || tr.ToID != alice.ID || tr.Amount != 30 || tr.FromName != "Bob" || tr.ToName != "Alice" {
		t.Errorf("unexpected transfer %+v", tr)
	}
	if b.CanEndCycle {
		t.Error("cycle with open debts should not report canEndCycle")
	}

	ended, err := ts.client.EndCycle(ctx, connect.NewRequest(&api.EndCycleRequest{}))
	if err != nil {
		t.Fatalf("EndCycle failed: %v", err)
	}
	st := ended.Msg.Settlement
	if st.ID != "S1" {
		t.Errorf("settlement id: expected S1, got %s", st.ID)
	}
	if st.Description != "Cycle ended on Mar 14, 2025" {
		t.Errorf("description: unexpected '%s'", st.Description)
	}
	if st.TotalAmount != 30 || len(st.Items) != 1 || st.Items[0].Settled {
		t.Errorf("unexpected settlement %+v", st)
	}

	after, err := ts.client.GetBalances(ctx, connect.NewRequest(&api.GetBalancesRequest{}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}
	if after.Msg.TotalExpenses != 0 || !after.Msg.CanEndCycle || len(after.Msg.Transfers) != 0 {
		t.Errorf("expected a fresh cycle, got %+v", after.Msg)
	}
	for _, bal := range after.Msg.Balances {
		if bal.TotalPaid != 0 || bal.Balance != 0 {
			t.Errorf("%s should start the new cycle at zero, got %+v", bal.Name, bal)
		}
	}

	archived, err := ts.client.ListArchivedExpenses(ctx, connect.NewRequest(&api.ListArchivedExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListArchivedExpenses failed: %v", err)
	}
	if len(archived.Msg.Expenses) != 2 {
		t.Errorf("expected 2 archived expenses, got %d", len(archived.Msg.Expenses))
	}

	_, err = ts.client.EndCycle(ctx, connect.NewRequest(&api.EndCycleRequest{Description: "empty"}))
	assertCode(t, err, connect.CodeFailedPrecondition)
}

func TestSettlementHistory(t *testing.T) {
	ts := setupLedgerTestServer(t)
	ctx := context.Background()

	alice := addPerson(t, ts.client, "Alice")
	addPerson(t, ts.client, "Bob")
	addPerson(t, ts.client, "Carol")
	addExpense(t, ts.client, alice.ID, "90", "Food & Dining")

	ended, err := ts.client.EndCycle(ctx, connect.NewRequest(&api.EndCycleRequest{Description: "Trip"}))
	if err != nil {
		t.Fatalf("EndCycle failed: %v", err)
	}
	id := ended.Msg.Settlement.ID

	settled, err := ts.client.SetSettlementItemSettled(ctx, connect.NewRequest(&api.SetSettlementItemSettledRequest{
		SettlementID: id,
		Index:        1,
		Settled:      true,
	}))
	if err != nil {
		t.Fatalf("SetSettlementItemSettled failed: %v", err)
	}
	if settled.Msg.Settlement.SettledCount != 1 || !settled.Msg.Settlement.Items[1].Settled {
		t.Errorf("expected item 1 settled, got %+v", settled.Msg.Settlement.Items)
	}
	if settled.Msg.Settlement.TotalAmount != 60 {
		t.Errorf("total: expected 60, got %v", settled.Msg.Settlement.TotalAmount)
	}

	_, err = ts.client.SetSettlementItemSettled(ctx, connect.NewRequest(&api.SetSettlementItemSettledRequest{
		SettlementID: id,
		Index:        2,
		Settled:      true,
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = ts.client.SetSettlementItemSettled(ctx, connect.NewRequest(&api.SetSettlementItemSettledRequest{
		SettlementID: id,
		Index:        -1,
	}))
	assertCode(t, err, connect.CodeInvalidArgument)

	_, err = ts.client.SetSettlementItemSettled(ctx, connect.NewRequest(&api.SetSettlementItemSettledRequest{
		SettlementID: "S9",
	}))
	assertCode(t, err, connect.CodeNotFound)

	list, err := ts.client.ListSettlements(ctx, connect.NewRequest(&api.ListSettlementsRequest{}))
	if err != nil {
		t.Fatalf("ListSettlements failed: %v", err)
	}
	if len(list.Msg.Settlements) != 1 || list.Msg.Settlements[0].Description != "Trip" {
		t.Errorf("unexpected history %+v", list.Msg.Settlements)
	}

	for _, want := range []bool{true, false} {
		removed, err := ts.client.RemoveSettlement(ctx, connect.NewRequest(&api.RemoveSettlementRequest{SettlementID: id}))
		if err != nil {
			t.Fatalf("RemoveSettlement failed: %v", err)
		}
		if removed.Msg.Removed != want {
			t.Errorf("removed: expected %v, got %v", want, removed.Msg.Removed)
		}
	}
}

func TestRemovePerson(t *testing.T) {
	ts := setupLedgerTestServer(t)
	ctx := context.Background()

	alice := addPerson(t, ts.client, "Alice")
	bob := addPerson(t, ts.client, "Bob")
	addExpense(t, ts.client, alice.ID, "10", "Other")
	addExpense(t, ts.client, bob.ID, "20", "Other")

	for _, want := range []bool{true, false} {
		resp, err := ts.client.RemovePerson(ctx, connect.NewRequest(&api.RemovePersonRequest{PersonID: bob.ID}))
		if err != nil {
			t.Fatalf("RemovePerson failed: %v", err)
		}
		if resp.Msg.Removed != want {
			t.Errorf("removed: expected %v, got %v", want, resp.Msg.Removed)
		}
	}

	list, err := ts.client.ListExpenses(ctx, connect.NewRequest(&api.ListExpensesRequest{}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(list.Msg.Expenses) != 1 || list.Msg.Expenses[0].PayerID != alice.ID {
		t.Errorf("expected only Alice's expense to remain, got %+v", list.Msg.Expenses)
	}
}

func TestRemoveExpense(t *testing.T) {
	ts := setupLedgerTestServer(t)
	ctx := context.Background()

	alice := addPerson(t, ts.client, "Alice")
	e := addExpense(t, ts.client, alice.ID, "15.25", "Shopping")

	for _, want := range []bool{true, false} {
		resp, err := ts.client.RemoveExpense(ctx, connect.NewRequest(&api.RemoveExpenseRequest{ExpenseID: e.ID}))
		if err != nil {
			t.Fatalf("RemoveExpense failed: %v", err)
		}
		if resp.Msg.Removed != want {
			t.Errorf("removed: expected %v, got %v", want, resp.Msg.Removed)
		}
	}

	people, err := ts.client.ListPeople(ctx, connect.NewRequest(&api.ListPeopleRequest{}))
	if err != nil {
		t.Fatalf("ListPeople failed: %v", err)
	}
	if people.Msg.People[0].TotalPaid != 0 {
		t.Errorf("totalPaid: expected 0, got %v", people.Msg.People[0].TotalPaid)
	}
}

func TestClearAll(t *testing.T) {
	ts := setupLedgerTestServer(t)
	ctx := context.Background()

	alice := addPerson(t, ts.client, "Alice")
	addExpense(t, ts.client, alice.ID, "5", "Other")

	if _, err := ts.client.ClearAll(ctx, connect.NewRequest(&api.ClearAllRequest{})); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	people, err := ts.client.ListPeople(ctx, connect.NewRequest(&api.ListPeopleRequest{}))
	if err != nil {
		t.Fatalf("ListPeople failed: %v", err)
	}
	if len(people.Msg.People) != 0 {
		t.Errorf("expected no people, got %d", len(people.Msg.People))
	}

	again := addPerson(t, ts.client, "Alice")
	if again.ID != "P1" {
		t.Errorf("expected ids to restart at P1, got %s", again.ID)
	}
}

func TestStatePersistsAcrossRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ledger.db")
	first := setupLedgerTestServerAt(t, dbPath)

	alice := addPerson(t, first.client, "Alice")
	addPerson(t, first.client, "Bob")
	addExpense(t, first.client, alice.ID, "40", "Groceries")

	second := setupLedgerTestServerAt(t, dbPath)
	balances, err := second.client.GetBalances(context.Background(), connect.NewRequest(&api.GetBalancesRequest{}))
	if err != nil {
		t.Fatalf("GetBalances failed: %v", err)
	}
	if balances.Msg.TotalExpenses != 40 || len(balances.Msg.Transfers) != 1 {
		t.Errorf("expected the reopened ledger to carry the cycle, got %+v", balances.Msg)
	}

	carol := addPerson(t, second.client, "Carol")
	if carol.ID != "P3" {
		t.Errorf("expected P3 after reopen, got %s", carol.ID)
	}
}

func TestMetricsFollowLedger(t *testing.T) {
	ts := setupLedgerTestServer(t)

	alice := addPerson(t, ts.client, "Alice")
	addPerson(t, ts.client, "Bob")
	addExpense(t, ts.client, alice.ID, "50", "Other")

	reg := ts.metrics.Registry()
	tests := []struct {
		name string
		want float64
	}{
		{"splitcycle_people", 2},
		{"splitcycle_active_expenses", 1},
		{"splitcycle_outstanding_amount", 25},
		{"splitcycle_expenses_added_total", 1},
	}
	for _, tt := range tests {
		if got := metricValue(t, reg, tt.name); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

// metricValue returns the value of an unlabeled gauge or counter.
func metricValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		m := mf.GetMetric()[0]
		if m.GetGauge() != nil {
			return m.GetGauge().GetValue()
		}
		return m.GetCounter().GetValue()
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "#4ecdc4", want: "#4ECDC4"},
		{in: "#FF6B6B", want: "#FF6B6B"},
		{in: "#abc", want: "#AABBCC"},
		{in: "#12345678", wantErr: true},
		{in: "4ECDC4", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
	}

	for _, tt := range tests {
		got, err := NormalizeColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NormalizeColor(%q): unexpected error state: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeColor(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "12.50", want: 12.5},
		{in: " 7 ", want: 7},
		{in: "1000000", want: 1000000},
		{in: "0.01", want: 0.01},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "1000000.5", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q): unexpected error state: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
