package service

import (
	"github.com/mmynk/splitcycle/internal/calculator"
	"github.com/mmynk/splitcycle/internal/ledger"
	"github.com/mmynk/splitcycle/internal/models"
	"github.com/mmynk/splitcycle/pkg/api"
)

func toAPIPerson(p models.Person) *api.Person {
	return &api.Person{
		ID:        p.ID,
		Name:      p.Name,
		TotalPaid: calculator.Round2(p.TotalPaid),
		ColorHex:  p.ColorHex,
	}
}

// toAPIExpenses resolves payer names from names; unknown payers get none.
func toAPIExpenses(expenses []models.Expense, names map[string]string) []*api.Expense {
	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e, names[e.PayerID])
	}
	return out
}

func toAPIExpense(e models.Expense, payerName string) *api.Expense {
	return &api.Expense{
		ID:          e.ID,
		PayerID:     e.PayerID,
		PayerName:   payerName,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		Category:    e.Category,
	}
}

func toAPICategoryTotals(totals []ledger.CategoryTotal) []*api.CategoryTotal {
	out := make([]*api.CategoryTotal, len(totals))
	for i, ct := range totals {
		out[i] = &api.CategoryTotal{
			Category: ct.Category,
			Amount:   calculator.Round2(ct.Amount),
			Count:    ct.Count,
		}
	}
	return out
}

func toAPISettlement(s *models.Settlement) *api.Settlement {
	items := s.Items()
	apiItems := make([]api.SettlementItem, len(items))
	for i, it := range items {
		apiItems[i] = api.SettlementItem{
			FromID:   it.FromID,
			FromName: it.FromName,
			ToID:     it.ToID,
			ToName:   it.ToName,
			Amount:   it.Amount,
			Settled:  it.Settled,
		}
	}
	return &api.Settlement{
		ID:           s.ID,
		Date:         s.Date,
		Description:  s.Description,
		TotalAmount:  calculator.Round2(s.Total()),
		SettledCount: s.SettledCount(),
		Items:        apiItems,
	}
}

func nameIndex(people []models.Person) map[string]string {
	names := make(map[string]string, len(people))
	for _, p := range people {
		names[p.ID] = p.Name
	}
	return names
}
