package snapshot

import (
	"context"
	"sync/atomic"

	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/pkg/errs"
)

//go:generate mockgen -source=store.go -destination=../../../tests/mock/snapshot/source.go -package=snapshotmock

// Source produces complete snapshots. A failed fetch returns no snapshot.
type Source interface {
	Name() string
	FetchSnapshot(ctx context.Context) (*restaurant.Snapshot, error)
}

// Store holds the snapshot queries run against. A refresh publishes a new
// snapshot by swapping the pointer; published snapshots are never modified.
type Store struct {
	current atomic.Pointer[restaurant.Snapshot]
}

func NewStore() *Store {
	return &Store{}
}

// Current returns errs.ErrSnapshotNotLoaded until the first Publish.
func (s *Store) Current() (*restaurant.Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, errs.ErrSnapshotNotLoaded
	}
	return snap, nil
}

// Publish replaces the current snapshot and returns the one it replaced, if
// any. A nil snapshot is ignored.
func (s *Store) Publish(snap *restaurant.Snapshot) *restaurant.Snapshot {
	if snap == nil {
		return s.current.Load()
	}
	return s.current.Swap(snap)
}
