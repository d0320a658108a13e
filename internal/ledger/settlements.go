package ledger

import (
	"context"
	"fmt"

	"github.com/mmynk/splitcycle/internal/models"
)

// Settlements returns copies of all settlements, oldest first.
func (s *Store) Settlements() []*models.Settlement {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Settlement, len(s.settlements))
	for i, st := range s.settlements {
		out[i] = st.Clone()
	}
	return out
}

// Settlement returns a copy of the settlement with the given id.
func (s *Store) Settlement(id string) (*models.Settlement, bool) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.settlementIndex(id)
	if i < 0 {
		return nil, false
	}
	return s.settlements[i].Clone(), true
}

// RemoveSettlement deletes a settlement from history. Archived expenses are
// kept. Returns false if id is unknown.
func (s *Store) RemoveSettlement(ctx context.Context, id string) (bool, error) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.settlementIndex(id)
	if i < 0 {
		return false, nil
	}
	s.settlements = append(s.settlements[:i], s.settlements[i+1:]...)

	return true, s.persist(ctx, keySettlements)
}

// SetItemSettled marks one transfer of a settlement as paid (or not) by
// replacing the settlement's item list. Returns the updated settlement.
func (s *Store) SetItemSettled(ctx context.Context, settlementID string, index int, settled bool) (*models.Settlement, error) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.settlementIndex(settlementID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSettlementNotFound, settlementID)
	}

	st := s.settlements[i]
	items := st.Items()
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrItemOutOfRange, index, len(items))
	}
	items[index].Settled = settled
	st.SetItems(items)

	return st.Clone(), s.persist(ctx, keySettlements)
}

func (s *Store) settlementIndex(id string) int {
	for i, st := range s.settlements {
		if st.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) settlementIDTaken(id string) bool {
	return s.settlementIndex(id) >= 0
}
