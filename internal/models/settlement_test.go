package models

import (
	"testing"
	"time"
)

func TestSettlementTotalFollowsItems(t *testing.T) {
	s := NewSettlement(time.Now(), []SettlementItem{
		{FromID: "P2", ToID: "P1", Amount: 40},
		{FromID: "P3", ToID: "P1", Amount: 10},
	}, "March")

	if s.Total() != 50 {
		t.Errorf("Total() = %v, want 50", s.Total())
	}

	s.SetItems([]SettlementItem{{FromID: "P2", ToID: "P1", Amount: 12.5}})
	if s.Total() != 12.5 {
		t.Errorf("Total() after SetItems = %v, want 12.5", s.Total())
	}
}

func TestSettlementItemsAreCopies(t *testing.T) {
	items := []SettlementItem{{FromID: "P2", ToID: "P1", Amount: 40}}
	s := NewSettlement(time.Now(), items, "")

	items[0].Amount = 1000
	got := s.Items()
	got[0].Settled = true

	if s.Total() != 40 {
		t.Errorf("caller slice leaked into settlement: total = %v", s.Total())
	}
	if s.SettledCount() != 0 {
		t.Errorf("Items() result leaked into settlement: settled = %d", s.SettledCount())
	}
}

func TestSettlementClone(t *testing.T) {
	s := NewSettlement(time.Now(), []SettlementItem{{FromID: "P2", ToID: "P1", Amount: 5}}, "x")
	s.ID = "S1"

	c := s.Clone()
	c.SetItems(nil)

	if c.ID != "S1" || c.Description != "x" {
		t.Errorf("clone lost fields: %+v", c)
	}
	if s.Total() != 5 {
		t.Errorf("original changed after clone edit: total = %v", s.Total())
	}
}
