package integration

import (
	"context"
	"testing"

	"air-store/internal/cart"
	"air-store/internal/catalog"
	"air-store/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testRedis := SetupTestRedis(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	t.Run("Load on empty slot returns ErrNotFound", func(t *testing.T) {
		store, err := storage.NewRedisStore(ctx, testRedis.Client, "air:cart:empty", logger)
		require.NoError(t, err)

		_, err = store.Load(ctx)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Save then Load round-trips", func(t *testing.T) {
		store, err := storage.NewRedisStore(ctx, testRedis.Client, "air:cart:roundtrip", logger)
		require.NoError(t, err)

		payload := []byte(`[{"lineId":"abc","productId":4,"quantity":2}]`)
		require.NoError(t, store.Save(ctx, payload))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, payload, loaded)
	})

	t.Run("Cart store persists and rehydrates through redis", func(t *testing.T) {
		snapshots, err := storage.NewRedisStore(ctx, testRedis.Client, "air:cart:hydrate", logger)
		require.NoError(t, err)

		products := catalog.New(logger)
		sweater := products.ByID(4)
		socks := products.ByID(7)
		require.NotNil(t, sweater)
		require.NotNil(t, socks)

		first := cart.NewStore(ctx, snapshots, logger)
		first.AddItem(ctx, sweater, "M")
		first.AddItem(ctx, socks, "L")
		first.AddItem(ctx, sweater, "M")

		// A second store over the same slot sees the same cart.
		second := cart.NewStore(ctx, snapshots, logger)
		assert.Equal(t, first.Items(), second.Items())
		assert.Equal(t, first.Total(), second.Total())
		assert.Equal(t, 3, second.Count())
	})

	t.Run("Malformed snapshot hydrates to empty cart", func(t *testing.T) {
		key := "air:cart:malformed"
		require.NoError(t, testRedis.Client.Set(ctx, key, "{not json", 0).Err())

		snapshots, err := storage.NewRedisStore(ctx, testRedis.Client, key, logger)
		require.NoError(t, err)

		store := cart.NewStore(ctx, snapshots, logger)
		assert.Empty(t, store.Items())
	})
}
