// Package api defines the request and response messages of the
// splitcycle.v1.LedgerService. Messages travel as JSON; see package apiconnect
// for the handler and client.
package api

import "time"

// Person is a member of the group.
type Person struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TotalPaid float64 `json:"totalPaid"`
	ColorHex  string  `json:"colorHex"`
}

// Expense is a payment shared equally by everyone.
type Expense struct {
	ID          string    `json:"id"`
	PayerID     string    `json:"payerId"`
	PayerName   string    `json:"payerName,omitempty"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
}

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// Balance is one person's position in the active cycle.
// Positive means the group owes them.
type Balance struct {
	PersonID  string  `json:"personId"`
	Name      string  `json:"name"`
	TotalPaid float64 `json:"totalPaid"`
	Balance   float64 `json:"balance"`
}

// Transfer is a suggested payment.
type Transfer struct {
	FromID   string  `json:"fromId"`
	FromName string  `json:"fromName"`
	ToID     string  `json:"toId"`
	ToName   string  `json:"toName"`
	Amount   float64 `json:"amount"`
}

type SettlementItem struct {
	FromID   string  `json:"fromId"`
	FromName string  `json:"fromName"`
	ToID     string  `json:"toId"`
	ToName   string  `json:"toName"`
	Amount   float64 `json:"amount"`
	Settled  bool    `json:"settled"`
}

// Settlement is the record of a closed cycle.
type Settlement struct {
	ID           string           `json:"id"`
	Date         time.Time        `json:"date"`
	Description  string           `json:"description"`
	TotalAmount  float64          `json:"totalAmount"`
	SettledCount int              `json:"settledCount"`
	Items        []SettlementItem `json:"items"`
}

// People

type AddPersonRequest struct {
	Name string `json:"name" validate:"required,max=50"`
	// ColorHex is optional; a palette color is assigned when empty.
	ColorHex string `json:"colorHex" validate:"omitempty,hexcolor"`
}

type AddPersonResponse struct {
	Person *Person `json:"person"`
}

type RenamePersonRequest struct {
	PersonID string `json:"personId" validate:"required"`
	Name     string `json:"name" validate:"required,max=50"`
}

type RenamePersonResponse struct {
	Person *Person `json:"person"`
}

type RemovePersonRequest struct {
	PersonID string `json:"personId" validate:"required"`
}

type RemovePersonResponse struct {
	Removed bool `json:"removed"`
}

type ListPeopleRequest struct{}

type ListPeopleResponse struct {
	People []*Person `json:"people"`
}

// Expenses

type AddExpenseRequest struct {
	PayerID string `json:"payerId" validate:"required"`
	// Amount is the amount as typed, e.g. "12.50".
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description" validate:"required,max=100"`
	// Category defaults to "Other".
	Category string `json:"category" validate:"max=50"`
	// Date defaults to now.
	Date *time.Time `json:"date,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type RemoveExpenseRequest struct {
	ExpenseID string `json:"expenseId" validate:"required"`
}

type RemoveExpenseResponse struct {
	Removed bool `json:"removed"`
}

// ListExpensesRequest filters the active cycle. Empty fields match everything.
type ListExpensesRequest struct {
	PayerID  string `json:"payerId"`
	Category string `json:"category"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
	// Total is the sum of the returned expenses.
	Total      float64          `json:"total"`
	Categories []*CategoryTotal `json:"categories"`
}

type ListArchivedExpensesRequest struct{}

type ListArchivedExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories      []string `json:"categories"`
	DefaultCategory string   `json:"defaultCategory"`
}

// Balances and cycles

type GetBalancesRequest struct{}

type GetBalancesResponse struct {
	TotalExpenses float64     `json:"totalExpenses"`
	Share         float64     `json:"share"`
	Balances      []*Balance  `json:"balances"`
	Transfers     []*Transfer `json:"transfers"`
	CanEndCycle   bool        `json:"canEndCycle"`
}

type EndCycleRequest struct {
	// Description defaults to "Cycle ended on <date>".
	Description string `json:"description" validate:"max=100"`
}

type EndCycleResponse struct {
	Settlement *Settlement `json:"settlement"`
}

// Settlements

type ListSettlementsRequest struct{}

type ListSettlementsResponse struct {
	Settlements []*Settlement `json:"settlements"`
}

type RemoveSettlementRequest struct {
	SettlementID string `json:"settlementId" validate:"required"`
}

type RemoveSettlementResponse struct {
	Removed bool `json:"removed"`
}

type SetSettlementItemSettledRequest struct {
	SettlementID string `json:"settlementId" validate:"required"`
	Index        int    `json:"index" validate:"gte=0"`
	Settled      bool   `json:"settled"`
}

type SetSettlementItemSettledResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type ClearAllRequest struct{}

type ClearAllResponse struct{}
