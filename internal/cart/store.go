package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"air-store/internal/model"
	"air-store/internal/money"
	"air-store/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MaxLineQuantity is the per-line quantity ceiling. Adds and updates
// beyond it are clamped rather than rejected.
const MaxLineQuantity = 99

// Store is the single source of truth for cart contents. One instance
// is constructed at application start, hydrated from the snapshot
// store, and shared by every consumer. All mutations re-persist the
// line-item collection before returning.
type Store struct {
	mu        sync.Mutex
	items     []model.CartItem
	open      bool
	snapshots storage.SnapshotStore
	logger    zerolog.Logger
}

// NewStore creates the cart store and hydrates it from the snapshot
// store. An absent or malformed snapshot yields an empty cart; it is
// never surfaced as an error.
func NewStore(ctx context.Context, snapshots storage.SnapshotStore, logger zerolog.Logger) *Store {
	s := &Store{
		snapshots: snapshots,
		logger:    logger.With().Str("component", "cart").Logger(),
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	data, err := s.snapshots.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Debug().Msg("no cart snapshot, starting empty")
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load cart snapshot, starting empty")
		return
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn().Err(err).Msg("malformed cart snapshot, starting empty")
		return
	}

	s.items = items
	s.logger.Info().Int("lines", len(items)).Msg("cart hydrated from snapshot")
}

// persist writes the current line-item collection to the snapshot
// store. Failures are logged and swallowed: cart contents are not
// critical enough to fail the triggering operation over.
// Callers must hold the mutex.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to marshal cart snapshot")
		return
	}
	if err := s.snapshots.Save(ctx, data); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save cart snapshot")
	}
}

// AddItem adds one unit of the product in the chosen size. A line
// already holding the same (product, size) pair has its quantity
// incremented instead of a new line being created. Always succeeds.
func (s *Store) AddItem(ctx context.Context, product *model.Product, size string) model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID == product.ID && s.items[i].Size == size {
			if s.items[i].Quantity < MaxLineQuantity {
				s.items[i].Quantity++
			}
			s.persist(ctx)
			return s.items[i]
		}
	}

	item := model.CartItem{
		LineID:     uuid.NewString(),
		ProductID:  product.ID,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Image:      product.Image,
		Size:       size,
		Quantity:   1,
	}
	s.items = append(s.items, item)
	s.persist(ctx)

	s.logger.Debug().
		Str("line_id", item.LineID).
		Int("product_id", product.ID).
		Str("size", size).
		Msg("line added to cart")

	return item
}

// RemoveItem removes the line with the given ID. Removing an absent
// line is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, lineID)
}

func (s *Store) removeLocked(ctx context.Context, lineID string) {
	for i := range s.items {
		if s.items[i].LineID == lineID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity sets the quantity of the line with the given ID.
// A quantity of zero or below removes the line. Quantities above
// MaxLineQuantity are clamped.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(ctx, lineID)
		return
	}
	if quantity > MaxLineQuantity {
		quantity = MaxLineQuantity
	}

	for i := range s.items {
		if s.items[i].LineID == lineID {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the line-item collection. The visibility flag is left
// untouched.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
	s.logger.Debug().Msg("cart cleared")
}

// Items returns the cart lines in insertion order.
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the sum of price * quantity over all lines; zero for
// an empty cart.
func (s *Store) Total() money.Cents {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total money.Cents
	for i := range s.items {
		total = total.Add(s.items[i].Subtotal())
	}
	return total
}

// Count returns the sum of line quantities, used for the cart badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.items {
		count += s.items[i].Quantity
	}
	return count
}

// IsOpen reports whether the cart panel is visible.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// SetOpen sets the cart panel visibility.
func (s *Store) SetOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = open
}

// Toggle flips the cart panel visibility and returns the new value.
func (s *Store) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}
