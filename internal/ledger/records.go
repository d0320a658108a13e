package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/mmynk/splitcycle/internal/models"
)

// Storage keys. Each collection is serialized as one JSON array.
const (
	keyPeople           = "people_list"
	keyExpenses         = "expenses_list"
	keyArchivedExpenses = "archived_expenses"
	keySettlements      = "settlements"
	keyLastPersonID     = "last_person_id"
	keyLastExpenseID    = "last_expense_id"
	keyLastSettlementID = "last_settlement_id"
)

var allKeys = []string{
	keyPeople, keyExpenses, keyArchivedExpenses, keySettlements,
	keyLastPersonID, keyLastExpenseID, keyLastSettlementID,
}

type personRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TotalPaid float64 `json:"totalPaid"`
	ColorHex  string  `json:"colorHex"`
}

type expenseRecord struct {
	ID          string    `json:"id"`
	PayerID     string    `json:"payerId"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
}

type settlementItemRecord struct {
	FromID   string  `json:"fromId"`
	FromName string  `json:"fromName,omitempty"`
	ToID     string  `json:"toId"`
	ToName   string  `json:"toName,omitempty"`
	Amount   float64 `json:"amount"`
	Settled  bool    `json:"settled"`
}

type settlementRecord struct {
	ID          string                 `json:"id"`
	Date        time.Time              `json:"date"`
	Description string                 `json:"description"`
	TotalAmount float64                `json:"totalAmount"`
	Items       []settlementItemRecord `json:"items"`
}

func encodePeople(people []*models.Person) ([]byte, error) {
	recs := make([]personRecord, len(people))
	for i, p := range people {
		recs[i] = personRecord{ID: p.ID, Name: p.Name, TotalPaid: p.TotalPaid, ColorHex: p.ColorHex}
	}
	return json.Marshal(recs)
}

func decodePeople(data []byte) ([]*models.Person, error) {
	recs, err := decodeList[personRecord](data)
	if err != nil {
		return nil, err
	}
	people := make([]*models.Person, len(recs))
	for i, r := range recs {
		people[i] = &models.Person{ID: r.ID, Name: r.Name, TotalPaid: r.TotalPaid, ColorHex: r.ColorHex}
	}
	return people, nil
}

func encodeExpenses(expenses []models.Expense) ([]byte, error) {
	recs := make([]expenseRecord, len(expenses))
	for i, e := range expenses {
		recs[i] = expenseRecord{
			ID:          e.ID,
			PayerID:     e.PayerID,
			Amount:      e.Amount,
			Description: e.Description,
			Date:        e.Date,
			Category:    e.Category,
		}
	}
	return json.Marshal(recs)
}

func decodeExpenses(data []byte) ([]models.Expense, error) {
	recs, err := decodeList[expenseRecord](data)
	if err != nil {
		return nil, err
	}
	expenses := make([]models.Expense, len(recs))
	for i, r := range recs {
		expenses[i] = models.Expense{
			ID:          r.ID,
			PayerID:     r.PayerID,
			Amount:      r.Amount,
			Description: r.Description,
			Date:        r.Date,
			Category:    r.Category,
		}
	}
	return expenses, nil
}

func encodeSettlements(settlements []*models.Settlement) ([]byte, error) {
	recs := make([]settlementRecord, len(settlements))
	for i, s := range settlements {
		items := s.Items()
		itemRecs := make([]settlementItemRecord, len(items))
		for j, it := range items {
			itemRecs[j] = settlementItemRecord{
				FromID:   it.FromID,
				FromName: it.FromName,
				ToID:     it.ToID,
				ToName:   it.ToName,
				Amount:   it.Amount,
				Settled:  it.Settled,
			}
		}
		recs[i] = settlementRecord{
			ID:          s.ID,
			Date:        s.Date,
			Description: s.Description,
			TotalAmount: s.Total(),
			Items:       itemRecs,
		}
	}
	return json.Marshal(recs)
}

// decodeSettlements ignores the stored totalAmount; the total is always
// derived from the items.
func decodeSettlements(data []byte) ([]*models.Settlement, error) {
	recs, err := decodeList[settlementRecord](data)
	if err != nil {
		return nil, err
	}
	settlements := make([]*models.Settlement, len(recs))
	for i, r := range recs {
		items := make([]models.SettlementItem, len(r.Items))
		for j, it := range r.Items {
			items[j] = models.SettlementItem{
				FromID:   it.FromID,
				FromName: it.FromName,
				ToID:     it.ToID,
				ToName:   it.ToName,
				Amount:   it.Amount,
				Settled:  it.Settled,
			}
		}
		s := models.NewSettlement(r.Date, items, r.Description)
		s.ID = r.ID
		settlements[i] = s
	}
	return settlements, nil
}

// decodeList treats a missing, blank, or null value as an empty list.
func decodeList[T any](data []byte) ([]T, error) {
	out := []T{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func encodeCounter(n int64) []byte {
	return []byte(strconv.FormatInt(n, 10))
}

func decodeCounter(data []byte) (int64, error) {
	s := string(bytes.TrimSpace(data))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid counter %q: %w", s, err)
	}
	return n, nil
}
