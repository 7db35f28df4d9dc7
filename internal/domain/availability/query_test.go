//go:build unit

package availability_test

import (
	"testing"

	"restaurant-deals/internal/domain/availability"
	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/domain/timeofday"
	"restaurant-deals/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct{ restaurantID, dealID string }

func pairsOf(deals []restaurant.DealAtRestaurant) []pair {
	out := make([]pair, 0, len(deals))
	for _, d := range deals {
		out = append(out, pair{d.Restaurant.ObjectID, d.Deal.ObjectID})
	}
	return out
}

func TestFindAvailableDeals(t *testing.T) {
	snap := builder.NewScenarioSnapshotBuilder().BuildDomain()

	testCases := []struct {
		name string
		at   timeofday.TimeOfDay
		want []pair
	}{
		{
			name: "afternoon: r1, r2 and deal-less r4 are open",
			at:   timeofday.Of(15, 0),
			want: []pair{{"r1", "d1"}, {"r1", "d2"}, {"r2", "d3"}},
		},
		{
			name: "late evening: r2 and r3",
			at:   timeofday.Of(23, 0),
			want: []pair{{"r2", "d3"}, {"r3", "d4"}},
		},
		{
			name: "boundary at 22:00 includes closing r1 and opening r3",
			at:   timeofday.Of(22, 0),
			want: []pair{{"r1", "d1"}, {"r1", "d2"}, {"r2", "d3"}, {"r3", "d4"}},
		},
		{
			name: "after midnight: only r3",
			at:   timeofday.Of(1, 0),
			want: []pair{{"r3", "d4"}},
		},
		{
			name: "early morning: nothing",
			at:   timeofday.Of(5, 0),
			want: []pair{},
		},
		{
			name: "only deal-less restaurant open",
			at:   timeofday.Of(9, 30),
			want: []pair{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := availability.FindAvailableDeals(snap, tc.at)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, pairsOf(got))
		})
	}

	t.Run("result carries full restaurant and deal values", func(t *testing.T) {
		got := availability.FindAvailableDeals(snap, timeofday.Of(23, 0))
		require.Len(t, got, 2)
		assert.Equal(t, builder.NewScenarioSnapshotBuilder().BuildRestaurant("r3"), got[1].Restaurant)
		assert.Equal(t, snap.DealsFor("r3")[0], got[1].Deal)
	})

	t.Run("empty snapshot", func(t *testing.T) {
		empty := builder.NewSnapshotBuilder().BuildDomain()
		assert.Empty(t, availability.FindAvailableDeals(empty, timeofday.Of(12, 0)))
	})
}

func TestOpenRestaurants(t *testing.T) {
	snap := builder.NewScenarioSnapshotBuilder().BuildDomain()

	ids := func(rs []restaurant.Restaurant) []string {
		out := []string{}
		for _, r := range rs {
			out = append(out, r.ObjectID)
		}
		return out
	}

	assert.Equal(t, []string{"r1", "r2", "r4"}, ids(availability.OpenRestaurants(snap, timeofday.Of(15, 0))))
	assert.Equal(t, []string{"r1", "r4"}, ids(availability.OpenRestaurants(snap, timeofday.Of(10, 0))))
	assert.Equal(t, []string{"r1", "r2"}, ids(availability.OpenRestaurants(snap, timeofday.Of(17, 30))))
	assert.Equal(t, []string{}, ids(availability.OpenRestaurants(snap, timeofday.Of(3, 0))))
}
