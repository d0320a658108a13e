package calculator

import (
	"math"

	"github.com/mmynk/splitcycle/internal/models"
)

// Round2 rounds to cents: round(x*100)/100 with halves rounded away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Share is what each person owes when total is split equally among n people.
// Returns 0 when n is zero.
func Share(total float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// CalculateBalances computes each person's net position for the cycle,
// keyed by person ID.
//
// Everyone owes an equal share of totalExpenses regardless of who bought what:
//
//	balance = round2(person.TotalPaid - totalExpenses/len(people))
//
// Positive = owed money, Negative = owes money. An empty people list yields an
// empty map.
func CalculateBalances(people []models.Person, totalExpenses float64) map[string]float64 {
	balances := make(map[string]float64, len(people))
	if len(people) == 0 {
		return balances
	}

	share := Share(totalExpenses, len(people))
	for _, p := range people {
		balances[p.ID] = Round2(p.TotalPaid - share)
	}
	return balances
}

// AllSettled reports whether every balance is within a cent of zero.
func AllSettled(balances map[string]float64) bool {
	for _, b := range balances {
		if math.Abs(b) > Epsilon {
			return false
		}
	}
	return true
}
