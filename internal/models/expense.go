package models

import "time"

// Categories offered when recording an expense. Any string is accepted by the
// ledger; these are what the clients present.
var Categories = []string{
	"Food & Dining",
	"Groceries",
	"Transportation",
	"Utilities",
	"Entertainment",
	"Shopping",
	"Healthcare",
	"Other",
}

// DefaultCategory is used when an expense is recorded without one.
const DefaultCategory = "Other"

// Expense is a payment made by one person and shared equally by everyone.
type Expense struct {
	// ID is the stable identifier (e.g. "E12").
	ID string

	// PayerID references the Person who paid.
	PayerID string

	// Amount is the total paid. Always positive.
	Amount float64

	// Description is free text (e.g. "Groceries at Aldi").
	Description string

	// Date is the calendar date of the expense.
	Date time.Time

	// Category is one of Categories or any caller-provided string.
	Category string
}
