package storage

import (
	"context"
	"errors"
)

// SnapshotStore persists the serialised cart snapshot in a single
// fixed slot. Load is called once at startup; Save after every cart
// mutation.
type SnapshotStore interface {
	// Load returns the stored snapshot bytes, or ErrNotFound when no
	// snapshot has been saved yet.
	Load(ctx context.Context) ([]byte, error)

	// Save overwrites the stored snapshot.
	Save(ctx context.Context, data []byte) error
}

// ErrNotFound is returned by Load when the slot is empty.
var ErrNotFound = errors.New("snapshot not found")
