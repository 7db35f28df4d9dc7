package restaurant

import "restaurant-deals/internal/domain/timeofday"

// Restaurant opening hours repeat daily. CloseTime at or before OpenTime means
// the interval runs past midnight.
type Restaurant struct {
	ObjectID  string
	Name      string
	Address1  string
	Suburb    string
	OpenTime  timeofday.TimeOfDay
	CloseTime timeofday.TimeOfDay
}

// WrapsMidnight reports whether the open interval is [open, 24:00) ∪ [00:00, close].
func (r Restaurant) WrapsMidnight() bool {
	return !r.OpenTime.Before(r.CloseTime)
}

// Deal availability is governed entirely by the owning restaurant's hours.
type Deal struct {
	ObjectID     string
	RestaurantID string
	Discount     float64
	DineIn       bool
	Lightning    bool
	QtyLeft      int
}

type DealAtRestaurant struct {
	Restaurant Restaurant
	Deal       Deal
}
