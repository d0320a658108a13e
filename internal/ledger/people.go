package ledger

import (
	"context"
	"strings"

	"github.com/mmynk/splitcycle/internal/models"
)

// AddPerson appends p to the people list.
//
// If p.ID is set and already taken nothing changes and false is returned.
// Otherwise a fresh id is assigned when p.ID is empty, a color is picked when
// p.ColorHex is empty, and p is updated with both. The ledger keeps its own copy.
//
// Name uniqueness is the caller's responsibility (see PersonByName).
func (s *Store) AddPerson(ctx context.Context, p *models.Person) (bool, error) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID != "" {
		if _, exists := s.peopleByID[p.ID]; exists {
			return false, nil
		}
		observeID(personPrefix, p.ID, &s.lastPersonID)
	} else {
		p.ID = nextID(personPrefix, &s.lastPersonID, s.personExists)
	}
	if p.ColorHex == "" {
		p.ColorHex = s.pickColor()
	}

	stored := *p
	s.people = append(s.people, &stored)
	s.peopleByID[stored.ID] = &stored

	return true, s.persist(ctx, keyPeople, keyLastPersonID)
}

// RenamePerson changes a person's display name. Returns false if id is unknown.
func (s *Store) RenamePerson(ctx context.Context, id, name string) (bool, error) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.peopleByID[id]
	if !ok {
		return false, nil
	}
	p.Name = name
	return true, s.persist(ctx, keyPeople)
}

// RemovePerson deletes the person and, with them, every active expense they
// paid. Archived expenses and settlements are left untouched.
// Returns false if id is unknown.
func (s *Store) RemovePerson(ctx context.Context, id string) (bool, error) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.peopleByID[id]
	if !ok {
		return false, nil
	}

	kept := s.expenses[:0]
	removed := 0
	for _, e := range s.expenses {
		if e.PayerID == id {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.expenses = kept

	for i, candidate := range s.people {
		if candidate == p {
			s.people = append(s.people[:i], s.people[i+1:]...)
			break
		}
	}
	delete(s.peopleByID, id)

	s.logger.Debug("Person removed", "person_id", id, "expenses_removed", removed)
	return true, s.persist(ctx, keyPeople, keyExpenses)
}

// Person returns a copy of the person with the given id.
func (s *Store) Person(id string) (models.Person, bool) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.peopleByID[id]
	if !ok {
		return models.Person{}, false
	}
	return *p, true
}

// PersonByName returns the first person whose name equals name, ignoring case.
func (s *Store) PersonByName(name string) (models.Person, bool) {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.people {
		if strings.EqualFold(p.Name, name) {
			return *p, true
		}
	}
	return models.Person{}, false
}

// People returns copies of all people in insertion order.
func (s *Store) People() []models.Person {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.peopleSnapshot()
}

func (s *Store) peopleSnapshot() []models.Person {
	out := make([]models.Person, len(s.people))
	for i, p := range s.people {
		out[i] = *p
	}
	return out
}

func (s *Store) personExists(id string) bool {
	_, ok := s.peopleByID[id]
	return ok
}
