package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitcycle/internal/models"
	"github.com/mmynk/splitcycle/internal/storage"
	"github.com/mmynk/splitcycle/internal/storage/memory"
)

var testNow = time.Date(2025, time.March, 14, 18, 30, 0, 0, time.UTC)

func openTestStore(t *testing.T, kv storage.Store) *Store {
	t.Helper()

	s, err := Open(context.Background(), kv,
		WithClock(func() time.Time { return testNow }),
		WithColorPicker(FixedColor("#4ECDC4")),
	)
	require.NoError(t, err)
	return s
}

func addPerson(t *testing.T, s *Store, name string) models.Person {
	t.Helper()

	p := models.NewPerson(name, "")
	added, err := s.AddPerson(context.Background(), p)
	require.NoError(t, err)
	require.True(t, added)
	return *p
}

func addExpense(t *testing.T, s *Store, payerID string, amount float64, category string) models.Expense {
	t.Helper()

	e := &models.Expense{
		PayerID:     payerID,
		Amount:      amount,
		Description: "test expense",
		Date:        testNow,
		Category:    category,
	}
	require.NoError(t, s.AddExpense(context.Background(), e))
	return *e
}

var errDiskFull = errors.New("disk full")

// failingStore loads from an inner store but refuses writes while failing is set.
type failingStore struct {
	*memory.Store
	failing bool
}

func (f *failingStore) Save(ctx context.Context, key string, value []byte) error {
	if f.failing {
		return errDiskFull
	}
	return f.Store.Save(ctx, key, value)
}

func (f *failingStore) SaveMany(ctx context.Context, entries ...storage.Entry) error {
	if f.failing {
		return errDiskFull
	}
	return f.Store.SaveMany(ctx, entries...)
}

func (f *failingStore) Delete(ctx context.Context, keys ...string) error {
	if f.failing {
		return errDiskFull
	}
	return f.Store.Delete(ctx, keys...)
}
