package models

import "time"

// SettlementItem is a single transfer recorded when a cycle is closed.
type SettlementItem struct {
	// FromID is the person who pays (had a negative balance).
	FromID string

	// FromName is FromID's display name when the settlement was created.
	FromName string

	// ToID is the person who receives (had a positive balance).
	ToID string

	// ToName is ToID's display name when the settlement was created.
	ToName string

	// Amount is the transfer amount. Always positive.
	Amount float64

	// Settled reports whether the transfer has been made.
	Settled bool
}

// Settlement is the immutable record of a closed cycle.
// Items may only be replaced as a whole through SetItems.
type Settlement struct {
	// ID is the stable identifier (e.g. "S2").
	ID string

	// Date is when the cycle was closed.
	Date time.Time

	// Description is free text supplied when the cycle was closed.
	Description string

	items []SettlementItem
}

// NewSettlement builds a settlement owning a copy of items.
func NewSettlement(date time.Time, items []SettlementItem, description string) *Settlement {
	s := &Settlement{Date: date, Description: description}
	s.SetItems(items)
	return s
}

// Items returns a copy of the transfers in emission order.
func (s *Settlement) Items() []SettlementItem {
	out := make([]SettlementItem, len(s.items))
	copy(out, s.items)
	return out
}

// SetItems replaces the transfer list.
func (s *Settlement) SetItems(items []SettlementItem) {
	s.items = make([]SettlementItem, len(items))
	copy(s.items, items)
}

// Total is the sum of all item amounts.
func (s *Settlement) Total() float64 {
	var total float64
	for _, item := range s.items {
		total += item.Amount
	}
	return total
}

// SettledCount returns how many items are marked settled.
func (s *Settlement) SettledCount() int {
	n := 0
	for _, item := range s.items {
		if item.Settled {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (s *Settlement) Clone() *Settlement {
	c := *s
	c.SetItems(s.items)
	return &c
}
