package availability

import (
	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/domain/timeofday"
)

// FindAvailableDeals pairs every deal with its restaurant for each restaurant
// open at t, in snapshot order.
func FindAvailableDeals(snap *restaurant.Snapshot, t timeofday.TimeOfDay) []restaurant.DealAtRestaurant {
	result := []restaurant.DealAtRestaurant{}
	snap.EachRestaurant(func(r restaurant.Restaurant) {
		if !IsOpenAt(r, t) {
			return
		}
		for _, d := range snap.DealsFor(r.ObjectID) {
			result = append(result, restaurant.DealAtRestaurant{Restaurant: r, Deal: d})
		}
	})
	return result
}

// OpenRestaurants returns the restaurants open at t in snapshot order,
// including those without deals.
func OpenRestaurants(snap *restaurant.Snapshot, t timeofday.TimeOfDay) []restaurant.Restaurant {
	var open []restaurant.Restaurant
	snap.EachRestaurant(func(r restaurant.Restaurant) {
		if IsOpenAt(r, t) {
			open = append(open, r)
		}
	})
	return open
}
