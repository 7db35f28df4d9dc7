//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"restaurant-deals/internal/domain/availability"
	"restaurant-deals/internal/domain/timeofday"
	"restaurant-deals/internal/pkg/errs"
	"restaurant-deals/internal/usecase/queries"
	"restaurant-deals/tests/common/builder"
	queriesmock "restaurant-deals/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dealQueriesFixture struct {
	snapshots *queriesmock.MockSnapshotReader
	peaks     *queriesmock.MockPeakWindowCache
	queries   queries.DealQueries
}

func newFixture(t *testing.T) dealQueriesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := dealQueriesFixture{
		snapshots: queriesmock.NewMockSnapshotReader(ctrl),
		peaks:     queriesmock.NewMockPeakWindowCache(ctrl),
	}
	f.queries = queries.NewDealQueries(f.snapshots, f.peaks)
	return f
}

func TestDealQueries_AvailableDeals(t *testing.T) {
	ctx := context.Background()

	t.Run("success: flattens restaurant and deal", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewScenarioSnapshotBuilder()
		snap := b.BuildDomain()
		f.snapshots.EXPECT().Current().Return(snap, nil)

		got, err := f.queries.AvailableDeals(ctx, timeofday.Of(23, 0))
		require.NoError(t, err)

		r2 := b.BuildRestaurant("r2")
		r3 := b.BuildRestaurant("r3")
		d3 := snap.DealsFor("r2")[0]
		d4 := snap.DealsFor("r3")[0]
		want := []queries.AvailableDealView{
			{
				RestaurantObjectID: "r2", RestaurantName: r2.Name, RestaurantAddress1: r2.Address1, RestaurantSuburb: r2.Suburb,
				RestaurantOpen: r2.OpenTime, RestaurantClose: r2.CloseTime,
				ObjectID: "d3", Discount: d3.Discount, DineIn: d3.DineIn, Lightning: d3.Lightning,
				Open: r2.OpenTime, Close: r2.CloseTime, QtyLeft: d3.QtyLeft,
			},
			{
				RestaurantObjectID: "r3", RestaurantName: r3.Name, RestaurantAddress1: r3.Address1, RestaurantSuburb: r3.Suburb,
				RestaurantOpen: r3.OpenTime, RestaurantClose: r3.CloseTime,
				ObjectID: "d4", Discount: d4.Discount, DineIn: d4.DineIn, Lightning: d4.Lightning,
				Open: r3.OpenTime, Close: r3.CloseTime, QtyLeft: d4.QtyLeft,
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("AvailableDeals mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: nothing open is an empty list", func(t *testing.T) {
		f := newFixture(t)
		f.snapshots.EXPECT().Current().Return(builder.NewScenarioSnapshotBuilder().BuildDomain(), nil)

		got, err := f.queries.AvailableDeals(ctx, timeofday.Of(5, 0))
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("error: snapshot not loaded", func(t *testing.T) {
		f := newFixture(t)
		f.snapshots.EXPECT().Current().Return(nil, errs.ErrSnapshotNotLoaded)

		_, err := f.queries.AvailableDeals(ctx, timeofday.Of(12, 0))
		assert.ErrorIs(t, err, queries.ErrSnapshotUnavailable)
	})

	t.Run("error: other reader failure is wrapped", func(t *testing.T) {
		f := newFixture(t)
		boom := errors.New("boom")
		f.snapshots.EXPECT().Current().Return(nil, boom)

		_, err := f.queries.AvailableDeals(ctx, timeofday.Of(12, 0))
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, queries.ErrSnapshotUnavailable)
	})

	t.Run("error: cancelled context", func(t *testing.T) {
		f := newFixture(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := f.queries.AvailableDeals(cctx, timeofday.Of(12, 0))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDealQueries_PeakWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("success: computes and caches on miss", func(t *testing.T) {
		f := newFixture(t)
		snap := builder.NewSnapshotBuilder().WithRestaurant("r1", "10:00", "22:00", 2).BuildDomain()
		want := availability.PeakWindow{Start: timeofday.Of(9, 0), End: timeofday.Of(12, 0)}

		f.snapshots.EXPECT().Current().Return(snap, nil)
		f.peaks.EXPECT().Get(snap.Version()).Return(availability.PeakWindow{}, false)
		f.peaks.EXPECT().Set(snap.Version(), want)

		got, err := f.queries.PeakWindow(ctx)
		require.NoError(t, err)
		assert.Equal(t, &queries.PeakWindowView{Start: want.Start, End: want.End}, got)
	})

	t.Run("success: cached window is returned as is", func(t *testing.T) {
		f := newFixture(t)
		snap := builder.NewScenarioSnapshotBuilder().BuildDomain()
		cached := availability.PeakWindow{Start: timeofday.Of(15, 0), End: timeofday.Of(18, 0)}

		f.snapshots.EXPECT().Current().Return(snap, nil)
		f.peaks.EXPECT().Get(snap.Version()).Return(cached, true)

		got, err := f.queries.PeakWindow(ctx)
		require.NoError(t, err)
		assert.Equal(t, cached.Start, got.Start)
		assert.Equal(t, cached.End, got.End)
	})

	t.Run("success: empty snapshot yields full day", func(t *testing.T) {
		f := newFixture(t)
		snap := builder.NewSnapshotBuilder().BuildDomain()

		f.snapshots.EXPECT().Current().Return(snap, nil)
		f.peaks.EXPECT().Get(snap.Version()).Return(availability.PeakWindow{}, false)
		f.peaks.EXPECT().Set(snap.Version(), availability.FullDay)

		got, err := f.queries.PeakWindow(ctx)
		require.NoError(t, err)
		assert.Equal(t, timeofday.Midnight, got.Start)
		assert.Equal(t, timeofday.Max, got.End)
	})

	t.Run("error: snapshot not loaded", func(t *testing.T) {
		f := newFixture(t)
		f.snapshots.EXPECT().Current().Return(nil, errs.ErrSnapshotNotLoaded)

		_, err := f.queries.PeakWindow(ctx)
		assert.ErrorIs(t, err, queries.ErrSnapshotUnavailable)
	})
}

func TestDealQueries_SnapshotInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewScenarioSnapshotBuilder()
		snap := b.BuildDomain()
		f.snapshots.EXPECT().Current().Return(snap, nil)

		got, err := f.queries.SnapshotInfo(ctx)
		require.NoError(t, err)
		assert.Equal(t, &queries.SnapshotInfo{
			Version:     snap.Version(),
			LoadedAt:    b.LoadedAt,
			Restaurants: 4,
			Deals:       4,
		}, got)
	})

	t.Run("error: snapshot not loaded", func(t *testing.T) {
		f := newFixture(t)
		f.snapshots.EXPECT().Current().Return(nil, errs.ErrSnapshotNotLoaded)

		_, err := f.queries.SnapshotInfo(ctx)
		assert.ErrorIs(t, err, queries.ErrSnapshotUnavailable)
	})
}
