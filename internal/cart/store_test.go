package cart

import (
	"context"
	"sync"
	"testing"

	"air-store/internal/model"
	"air-store/internal/money"
	"air-store/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory SnapshotStore for tests.
type memStore struct {
	mu   sync.Mutex
	data []byte
}

func (m *memStore) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *memStore) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}

var (
	sweater = model.Product{
		ID:         4,
		Name:       "Suéter Air Comfort",
		Category:   "sueter",
		PriceCents: money.Cents(8999),
		Image:      "https://example.com/sueter.jpg",
		Sizes:      []string{"S", "M", "L", "XL"},
		InStock:    true,
	}
	socks = model.Product{
		ID:         7,
		Name:       "Medias Air Essential Pack",
		Category:   "medias",
		PriceCents: money.Cents(2499),
		Image:      "https://example.com/medias.jpg",
		Sizes:      []string{"S", "M", "L"},
		InStock:    true,
	}
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(context.Background(), &memStore{}, zerolog.Nop())
}

func TestStore_AddItem_NewLine(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	item := store.AddItem(ctx, &sweater, "M")

	assert.NotEmpty(t, item.LineID)
	assert.Equal(t, 4, item.ProductID)
	assert.Equal(t, "M", item.Size)
	assert.Equal(t, 1, item.Quantity)
	assert.Len(t, store.Items(), 1)
}

func TestStore_AddItem_SamePairIncrements(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first := store.AddItem(ctx, &sweater, "M")
	for i := 0; i < 4; i++ {
		store.AddItem(ctx, &sweater, "M")
	}

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, first.LineID, items[0].LineID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestStore_AddItem_DifferentSizeIsNewLine(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	store.AddItem(ctx, &sweater, "M")
	store.AddItem(ctx, &sweater, "L")

	items := store.Items()
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].LineID, items[1].LineID)
}

func TestStore_AddItem_ClampsAtCeiling(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for i := 0; i < MaxLineQuantity+10; i++ {
		store.AddItem(ctx, &socks, "M")
	}

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, MaxLineQuantity, items[0].Quantity)
}

func TestStore_Total(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	assert.Equal(t, money.Cents(0), store.Total())

	store.AddItem(ctx, &sweater, "M")
	store.AddItem(ctx, &sweater, "M")

	// 89.99 * 2 = 179.98
	assert.Equal(t, money.Cents(17998), store.Total())
	assert.Equal(t, 179.98, store.Total().Amount())
	assert.Equal(t, 2, store.Count())

	store.AddItem(ctx, &socks, "L")
	assert.Equal(t, money.Cents(20497), store.Total())
	assert.Equal(t, 3, store.Count())
}

func TestStore_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		expectRemoved bool
		expectedQty   int
	}{
		{name: "Set to positive", quantity: 7, expectedQty: 7},
		{name: "Zero removes line", quantity: 0, expectRemoved: true},
		{name: "Negative removes line", quantity: -1, expectRemoved: true},
		{name: "Above ceiling clamps", quantity: MaxLineQuantity + 1, expectedQty: MaxLineQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newTestStore(t)
			item := store.AddItem(ctx, &sweater, "M")

			store.UpdateQuantity(ctx, item.LineID, tt.quantity)

			items := store.Items()
			if tt.expectRemoved {
				assert.Empty(t, items)
				return
			}
			require.Len(t, items, 1)
			assert.Equal(t, tt.expectedQty, items[0].Quantity)
		})
	}
}

func TestStore_UpdateQuantity_UnknownLineIsNoop(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	store.AddItem(ctx, &sweater, "M")

	store.UpdateQuantity(ctx, "no-such-line", 5)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestStore_RemoveItem(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	a := store.AddItem(ctx, &sweater, "M")
	b := store.AddItem(ctx, &socks, "L")

	store.RemoveItem(ctx, a.LineID)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, b.LineID, items[0].LineID)

	// Absent line is a no-op.
	store.RemoveItem(ctx, a.LineID)
	assert.Len(t, store.Items(), 1)
}

func TestStore_Clear_KeepsVisibility(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	store.AddItem(ctx, &sweater, "M")
	store.SetOpen(true)

	store.Clear(ctx)

	assert.Empty(t, store.Items())
	assert.Equal(t, money.Cents(0), store.Total())
	assert.True(t, store.IsOpen())
}

func TestStore_Visibility(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.IsOpen())
	assert.True(t, store.Toggle())
	assert.False(t, store.Toggle())

	store.SetOpen(true)
	assert.True(t, store.IsOpen())
}

func TestStore_PersistReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	snapshots := &memStore{}

	store := NewStore(ctx, snapshots, zerolog.Nop())
	store.AddItem(ctx, &sweater, "M")
	store.AddItem(ctx, &socks, "L")
	store.AddItem(ctx, &sweater, "M")

	reloaded := NewStore(ctx, snapshots, zerolog.Nop())

	assert.Equal(t, store.Items(), reloaded.Items())
	assert.Equal(t, store.Total(), reloaded.Total())
	assert.Equal(t, store.Count(), reloaded.Count())
}

func TestStore_HydrateMalformedSnapshot(t *testing.T) {
	ctx := context.Background()
	snapshots := &memStore{data: []byte("{not json")}

	store := NewStore(ctx, snapshots, zerolog.Nop())

	assert.Empty(t, store.Items())
	assert.Equal(t, money.Cents(0), store.Total())
}

func TestStore_HydrateMissingSnapshot(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.Items())
}
