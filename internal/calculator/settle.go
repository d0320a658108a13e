package calculator

import (
	"math"
	"sort"
)

// Epsilon is the smallest amount worth transferring. Balances within Epsilon
// of zero count as settled.
const Epsilon = 0.01

// Transfer is a suggested payment from a debtor to a creditor.
type Transfer struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount float64
}

type party struct {
	id      string
	balance float64
}

// SuggestSettlements returns the transfers that zero out balances using as few
// payments as the greedy strategy allows (at most n-1 for n non-zero people).
//
// Algorithm:
//   - Debtors (balance < 0) sorted most negative first, creditors (balance > 0)
//     sorted most positive first. Ties are broken by ID.
//   - The head debtor pays the head creditor min(debt, credit).
//   - A side is dropped once its remaining balance is under Epsilon.
//   - If the amount is Epsilon or less nothing is emitted and the side with the
//     smaller remainder is dropped (both when equal), so sub-cent residue
//     cannot stall the loop.
//
// Transfers are returned in emission order. balances is not modified.
func SuggestSettlements(balances map[string]float64) []Transfer {
	var debtors, creditors []*party
	for id, b := range balances {
		if b < 0 {
			debtors = append(debtors, &party{id: id, balance: b})
		} else if b > 0 {
			creditors = append(creditors, &party{id: id, balance: b})
		}
	}

	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].balance != debtors[j].balance {
			return debtors[i].balance < debtors[j].balance
		}
		return debtors[i].id < debtors[j].id
	})
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].balance != creditors[j].balance {
			return creditors[i].balance > creditors[j].balance
		}
		return creditors[i].id < creditors[j].id
	})

	var transfers []Transfer
	for len(debtors) > 0 && len(creditors) > 0 {
		debtor, creditor := debtors[0], creditors[0]

		debt := math.Abs(debtor.balance)
		amount := math.Min(debt, creditor.balance)

		if amount <= Epsilon {
			switch {
			case debt < creditor.balance:
				debtors = debtors[1:]
			case creditor.balance < debt:
				creditors = creditors[1:]
			default:
				debtors, creditors = debtors[1:], creditors[1:]
			}
			continue
		}

		transfers = append(transfers, Transfer{From: debtor.id, To: creditor.id, Amount: amount})
		debtor.balance += amount
		creditor.balance -= amount

		if math.Abs(debtor.balance) < Epsilon {
			debtors = debtors[1:]
		}
		if math.Abs(creditor.balance) < Epsilon {
			creditors = creditors[1:]
		}
	}

	return transfers
}
