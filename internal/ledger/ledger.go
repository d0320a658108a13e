// Package ledger owns the shared-expense ledger: people, the active cycle's
// expenses, archived expenses, and settlement history.
//
// A Store keeps every collection in memory and writes through to a
// storage.Store after each mutation. The in-memory state is authoritative:
// when a write fails the mutation is kept and the error (wrapping ErrPersist)
// is returned to the caller.
//
// All methods are safe for concurrent use. A single lock guards every
// collection, so multi-collection updates (adding an expense and crediting
// its payer, closing a cycle) are never observed half-applied.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mmynk/splitcycle/internal/models"
	"github.com/mmynk/splitcycle/internal/storage"
)

// Store is the ledger. Create one with Open.
type Store struct {
	mu sync.Mutex
	kv storage.Store

	people      []*models.Person
	peopleByID  map[string]*models.Person
	expenses    []models.Expense
	archived    []models.Expense
	settlements []*models.Settlement

	lastPersonID     int64
	lastExpenseID    int64
	lastSettlementID int64

	now       func() time.Time
	pickColor ColorPicker
	logger    *slog.Logger
	open      bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used to date settlements.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithColorPicker sets how colors are assigned to people added without one.
func WithColorPicker(pick ColorPicker) Option {
	return func(s *Store) { s.pickColor = pick }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// Open loads every collection from kv and returns a ready Store.
// Missing or empty records load as empty collections.
func Open(ctx context.Context, kv storage.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:         kv,
		peopleByID: make(map[string]*models.Person),
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pickColor == nil {
		s.pickColor = PaletteColors(0)
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	s.open = true

	s.logger.Info("Ledger loaded",
		"people", len(s.people),
		"expenses", len(s.expenses),
		"archived_expenses", len(s.archived),
		"settlements", len(s.settlements),
	)
	return s, nil
}

func (s *Store) load(ctx context.Context) error {
	raw := make(map[string][]byte, len(allKeys))
	for _, key := range allKeys {
		v, err := s.kv.Load(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", key, err)
		}
		raw[key] = v
	}

	var err error
	if s.people, err = decodePeople(raw[keyPeople]); err != nil {
		return fmt.Errorf("failed to decode %s: %w", keyPeople, err)
	}
	if s.expenses, err = decodeExpenses(raw[keyExpenses]); err != nil {
		return fmt.Errorf("failed to decode %s: %w", keyExpenses, err)
	}
	if s.archived, err = decodeExpenses(raw[keyArchivedExpenses]); err != nil {
		return fmt.Errorf("failed to decode %s: %w", keyArchivedExpenses, err)
	}
	if s.settlements, err = decodeSettlements(raw[keySettlements]); err != nil {
		return fmt.Errorf("failed to decode %s: %w", keySettlements, err)
	}
	if s.lastPersonID, err = decodeCounter(raw[keyLastPersonID]); err != nil {
		return fmt.Errorf("failed to decode %s: %w", keyLastPersonID, err)
	}
	if s.lastExpenseID, err = decodeCounter(raw[keyLastExpenseID]); err != nil {
		return fmt.Errorf("failed to decode %s: %w", keyLastExpenseID, err)
	}
	if s.lastSettlementID, err = decodeCounter(raw[keyLastSettlementID]); err != nil {
		return fmt.Errorf("failed to decode %s: %w", keyLastSettlementID, err)
	}

	s.rebuildIndex()

	// A lost counter must never lead to an id being issued twice.
	for _, p := range s.people {
		observeID(personPrefix, p.ID, &s.lastPersonID)
	}
	for _, e := range s.expenses {
		observeID(expensePrefix, e.ID, &s.lastExpenseID)
	}
	for _, e := range s.archived {
		observeID(expensePrefix, e.ID, &s.lastExpenseID)
	}
	for _, st := range s.settlements {
		observeID(settlementPrefix, st.ID, &s.lastSettlementID)
	}
	return nil
}

func (s *Store) rebuildIndex() {
	s.peopleByID = make(map[string]*models.Person, len(s.people))
	for _, p := range s.people {
		s.peopleByID[p.ID] = p
	}
}

// mustOpen fails fast on lifecycle bugs.
func (s *Store) mustOpen() {
	if s == nil || !s.open {
		panic(ErrNotOpen)
	}
}

// ClearAll empties every collection, resets the id counters, and erases the
// persisted records. The store stays usable.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mustOpen()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.people = nil
	s.expenses = nil
	s.archived = nil
	s.settlements = nil
	s.lastPersonID, s.lastExpenseID, s.lastSettlementID = 0, 0, 0
	s.rebuildIndex()

	if err := s.kv.Delete(ctx, allKeys...); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.logger.Info("Ledger cleared")
	return nil
}

// persist writes the named records in one batch. Callers hold s.mu.
func (s *Store) persist(ctx context.Context, keys ...string) error {
	entries := make([]storage.Entry, 0, len(keys))
	for _, key := range keys {
		value, err := s.encode(key)
		if err != nil {
			return fmt.Errorf("%w: encode %s: %w", ErrPersist, key, err)
		}
		entries = append(entries, storage.Entry{Key: key, Value: value})
	}

	if err := s.kv.SaveMany(ctx, entries...); err != nil {
		s.logger.Error("Ledger write failed", "keys", keys, "error", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

func (s *Store) encode(key string) ([]byte, error) {
	switch key {
	case keyPeople:
		return encodePeople(s.people)
	case keyExpenses:
		return encodeExpenses(s.expenses)
	case keyArchivedExpenses:
		return encodeExpenses(s.archived)
	case keySettlements:
		return encodeSettlements(s.settlements)
	case keyLastPersonID:
		return encodeCounter(s.lastPersonID), nil
	case keyLastExpenseID:
		return encodeCounter(s.lastExpenseID), nil
	case keyLastSettlementID:
		return encodeCounter(s.lastSettlementID), nil
	}
	return nil, fmt.Errorf("unknown key %q", key)
}

const (
	personPrefix     = "P"
	expensePrefix    = "E"
	settlementPrefix = "S"
)

// nextID issues prefix+n for the next counter value not rejected by taken.
func nextID(prefix string, counter *int64, taken func(string) bool) string {
	for {
		*counter++
		id := prefix + strconv.FormatInt(*counter, 10)
		if !taken(id) {
			return id
		}
	}
}

// observeID advances counter past ids that were assigned elsewhere
// (caller-supplied or loaded) so generated ids never collide with them.
func observeID(prefix, id string, counter *int64) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return
	}
	if n > *counter {
		*counter = n
	}
}
