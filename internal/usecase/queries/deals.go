package queries

import (
	"context"
	"errors"
	"time"

	"restaurant-deals/internal/domain/availability"
	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/domain/timeofday"
	"restaurant-deals/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=deals.go -destination=../../../tests/mock/queries/deals.go -package=queriesmock

var ErrSnapshotUnavailable = errors.New("restaurant data is not loaded yet")

// AvailableDealView is one deal flattened together with its restaurant.
// Open and Close repeat the restaurant's hours since deals carry none.
type AvailableDealView struct {
	RestaurantObjectID string
	RestaurantName     string
	RestaurantAddress1 string
	RestaurantSuburb   string
	RestaurantOpen     timeofday.TimeOfDay
	RestaurantClose    timeofday.TimeOfDay
	ObjectID           string
	Discount           float64
	DineIn             bool
	Lightning          bool
	Open               timeofday.TimeOfDay
	Close              timeofday.TimeOfDay
	QtyLeft            int
}

type PeakWindowView struct {
	Start timeofday.TimeOfDay
	End   timeofday.TimeOfDay
}

type SnapshotInfo struct {
	Version     uuid.UUID
	LoadedAt    time.Time
	Restaurants int
	Deals       int
}

type SnapshotReader interface {
	Current() (*restaurant.Snapshot, error)
}

type PeakWindowCache interface {
	Get(version uuid.UUID) (availability.PeakWindow, bool)
	Set(version uuid.UUID, w availability.PeakWindow)
}

type DealQueries interface {
	AvailableDeals(ctx context.Context, at timeofday.TimeOfDay) ([]AvailableDealView, error)
	PeakWindow(ctx context.Context) (*PeakWindowView, error)
	SnapshotInfo(ctx context.Context) (*SnapshotInfo, error)
}

type dealQueriesImpl struct {
	snapshots SnapshotReader
	peaks     PeakWindowCache
}

func NewDealQueries(snapshots SnapshotReader, peaks PeakWindowCache) DealQueries {
	return &dealQueriesImpl{snapshots: snapshots, peaks: peaks}
}

func (q *dealQueriesImpl) AvailableDeals(ctx context.Context, at timeofday.TimeOfDay) ([]AvailableDealView, error) {
	snap, err := q.current(ctx)
	if err != nil {
		return nil, err
	}

	found := availability.FindAvailableDeals(snap, at)
	views := make([]AvailableDealView, 0, len(found))
	for _, d := range found {
		views = append(views, toAvailableDealView(d))
	}
	return views, nil
}

// PeakWindow depends only on the snapshot, so it is computed once per
// snapshot version.
func (q *dealQueriesImpl) PeakWindow(ctx context.Context) (*PeakWindowView, error) {
	snap, err := q.current(ctx)
	if err != nil {
		return nil, err
	}

	w, ok := q.peaks.Get(snap.Version())
	if !ok {
		w = availability.FindPeakWindow(snap)
		q.peaks.Set(snap.Version(), w)
	}
	return &PeakWindowView{Start: w.Start, End: w.End}, nil
}

func (q *dealQueriesImpl) SnapshotInfo(ctx context.Context) (*SnapshotInfo, error) {
	snap, err := q.current(ctx)
	if err != nil {
		return nil, err
	}
	return &SnapshotInfo{
		Version:     snap.Version(),
		LoadedAt:    snap.LoadedAt(),
		Restaurants: snap.Len(),
		Deals:       snap.DealCount(),
	}, nil
}

func (q *dealQueriesImpl) current(ctx context.Context) (*restaurant.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap, err := q.snapshots.Current()
	if err != nil {
		if errors.Is(err, errs.ErrSnapshotNotLoaded) {
			return nil, ErrSnapshotUnavailable
		}
		return nil, errs.Wrap(err, "read snapshot")
	}
	return snap, nil
}

func toAvailableDealView(d restaurant.DealAtRestaurant) AvailableDealView {
	return AvailableDealView{
		RestaurantObjectID: d.Restaurant.ObjectID,
		RestaurantName:     d.Restaurant.Name,
		RestaurantAddress1: d.Restaurant.Address1,
		RestaurantSuburb:   d.Restaurant.Suburb,
		RestaurantOpen:     d.Restaurant.OpenTime,
		RestaurantClose:    d.Restaurant.CloseTime,
		ObjectID:           d.Deal.ObjectID,
		Discount:           d.Deal.Discount,
		DineIn:             d.Deal.DineIn,
		Lightning:          d.Deal.Lightning,
		Open:               d.Restaurant.OpenTime,
		Close:              d.Restaurant.CloseTime,
		QtyLeft:            d.Deal.QtyLeft,
	}
}
