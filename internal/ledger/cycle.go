package ledger

import (
	"context"
	"fmt"

	"github.com/mmynk/splitcycle/internal/calculator"
	"github.com/mmynk/splitcycle/internal/models"
)

// DescriptionDateLayout formats the date in the default cycle description.
const DescriptionDateLayout = "Jan 02, 2006"

// Summary is a consistent view of the active cycle's balances.
type Summary struct {
	People        []models.Person
	TotalExpenses float64
	Share         float64
	Balances      map[string]float64 // keyed by person ID
	Transfers     []calculator.Transfer
	CanEndCycle   bool
}

// Balances returns each current person's net balance, keyed by person ID.
func (s *Store) Balances() map[string]float64 {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	return calculator.CalculateBalances(s.peopleSnapshot(), s.totalExpenses())
}

// SettlementSuggestions returns the transfers that would settle the active cycle.
func (s *Store) SettlementSuggestions() []calculator.Transfer {
	return calculator.SuggestSettlements(s.Balances())
}

// CanEndCycle reports whether every balance is already within a cent of zero.
// It is informational: ResetCycle does not require it.
func (s *Store) CanEndCycle() bool {
	return calculator.AllSettled(s.Balances())
}

// Summary computes balances, suggestions and totals from a single snapshot.
func (s *Store) Summary() Summary {
	s.mustOpen()
	s.mu.Lock()
	people := s.peopleSnapshot()
	total := s.totalExpenses()
	s.mu.Unlock()

	balances := calculator.CalculateBalances(people, total)
	return Summary{
		People:        people,
		TotalExpenses: total,
		Share:         calculator.Share(total, len(people)),
		Balances:      balances,
		Transfers:     calculator.SuggestSettlements(balances),
		CanEndCycle:   calculator.AllSettled(balances),
	}
}

// ResetCycle closes the active cycle:
//
//  1. balances and suggested transfers are computed from the active expenses
//  2. a Settlement dated now holds the transfers, all unsettled
//  3. active expenses move to the archive
//  4. every person's total paid goes back to zero
//  5. all four collections are written in one batch
//
// An empty description becomes "Cycle ended on <date>". The new settlement is
// returned even when the write fails; the cycle is closed in memory either way.
func (s *Store) ResetCycle(ctx context.Context, description string) (*models.Settlement, error) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if description == "" {
		description = fmt.Sprintf("Cycle ended on %s", now.Format(DescriptionDateLayout))
	}

	balances := calculator.CalculateBalances(s.peopleSnapshot(), s.totalExpenses())
	transfers := calculator.SuggestSettlements(balances)

	items := make([]models.SettlementItem, len(transfers))
	for i, t := range transfers {
		items[i] = models.SettlementItem{
			FromID:   t.From,
			FromName: s.nameOf(t.From),
			ToID:     t.To,
			ToName:   s.nameOf(t.To),
			Amount:   t.Amount,
		}
	}

	settlement := models.NewSettlement(now, items, description)
	settlement.ID = nextID(settlementPrefix, &s.lastSettlementID, s.settlementIDTaken)
	s.settlements = append(s.settlements, settlement)

	archivedCount := len(s.expenses)
	s.archived = append(s.archived, s.expenses...)
	s.expenses = nil

	for _, p := range s.people {
		p.TotalPaid = 0
	}

	s.logger.Info("Cycle closed",
		"settlement_id", settlement.ID,
		"transfers", len(items),
		"archived_expenses", archivedCount,
	)

	err := s.persist(ctx,
		keyPeople, keyExpenses, keyArchivedExpenses, keySettlements, keyLastSettlementID,
	)
	return settlement.Clone(), err
}

func (s *Store) nameOf(id string) string {
	if p, ok := s.peopleByID[id]; ok {
		return p.Name
	}
	return ""
}
