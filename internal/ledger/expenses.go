package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/mmynk/splitcycle/internal/models"
)

// AddExpense records an expense in the active cycle and credits the payer.
//
// An id is assigned when e.ID is empty and written back to e. The payer must
// be a current person; an expense whose id is already active is rejected.
// Amount and description are validated by the caller.
func (s *Store) AddExpense(ctx context.Context, e *models.Expense) error {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	payer, ok := s.peopleByID[e.PayerID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, e.PayerID)
	}

	if e.ID != "" {
		if s.expenseIndex(e.ID) >= 0 {
			return fmt.Errorf("expense %s: %w", e.ID, ErrAlreadyExists)
		}
		observeID(expensePrefix, e.ID, &s.lastExpenseID)
	} else {
		e.ID = nextID(expensePrefix, &s.lastExpenseID, s.expenseIDTaken)
	}

	s.expenses = append(s.expenses, *e)
	payer.TotalPaid += e.Amount

	return s.persist(ctx, keyExpenses, keyPeople, keyLastExpenseID)
}

// RemoveExpense deletes an active expense and subtracts its amount from the
// payer. The payer's total is not clamped at zero. Returns false if id is unknown.
func (s *Store) RemoveExpense(ctx context.Context, id string) (bool, error) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.expenseIndex(id)
	if i < 0 {
		return false, nil
	}

	e := s.expenses[i]
	if payer, ok := s.peopleByID[e.PayerID]; ok {
		payer.TotalPaid -= e.Amount
	}
	s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)

	return true, s.persist(ctx, keyExpenses, keyPeople)
}

// Expense returns the active expense with the given id.
func (s *Store) Expense(id string) (models.Expense, bool) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.expenseIndex(id)
	if i < 0 {
		return models.Expense{}, false
	}
	return s.expenses[i], true
}

// Expenses returns the active expenses in insertion order.
func (s *Store) Expenses() []models.Expense {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Expense{}, s.expenses...)
}

// ExpensesByPerson returns the active expenses paid by personID in insertion order.
func (s *Store) ExpensesByPerson(personID string) []models.Expense {
	return s.FilterExpenses(personID, "")
}

// FilterExpenses returns active expenses matching payerID and category.
// An empty filter matches everything.
func (s *Store) FilterExpenses(payerID, category string) []models.Expense {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Expense{}
	for _, e := range s.expenses {
		if payerID != "" && e.PayerID != payerID {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ArchivedExpenses returns every expense from closed cycles, oldest first.
func (s *Store) ArchivedExpenses() []models.Expense {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Expense{}, s.archived...)
}

// TotalExpenses is the sum of all active expense amounts.
func (s *Store) TotalExpenses() float64 {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalExpenses()
}

func (s *Store) totalExpenses() float64 {
	var total float64
	for _, e := range s.expenses {
		total += e.Amount
	}
	return total
}

// CategoryTotal is the amount spent in one category during the active cycle.
type CategoryTotal struct {
	Category string
	Amount   float64
	Count    int
}

// CategoryTotals breaks the active cycle down by category, largest first.
func (s *Store) CategoryTotals() []CategoryTotal {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	byCategory := make(map[string]*CategoryTotal)
	for _, e := range s.expenses {
		ct, ok := byCategory[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category}
			byCategory[e.Category] = ct
		}
		ct.Amount += e.Amount
		ct.Count++
	}

	out := make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func (s *Store) expenseIndex(id string) int {
	for i, e := range s.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// expenseIDTaken checks both active and archived expenses.
func (s *Store) expenseIDTaken(id string) bool {
	if s.expenseIndex(id) >= 0 {
		return true
	}
	for _, e := range s.archived {
		if e.ID == id {
			return true
		}
	}
	return false
}
