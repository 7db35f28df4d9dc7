package availability

import (
	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/domain/timeofday"
)

// IsOpenAt reports whether r is open at t. Both ends of the interval are
// inclusive. A wrapping interval is the union [open, 24:00) ∪ [00:00, close],
// so the two bounds are OR-ed instead of AND-ed.
func IsOpenAt(r restaurant.Restaurant, t timeofday.TimeOfDay) bool {
	if !r.WrapsMidnight() {
		return !t.Before(r.OpenTime) && !t.After(r.CloseTime)
	}
	return !t.Before(r.OpenTime) || !t.After(r.CloseTime)
}

// OverlapsWindow reports whether r is open at any point of [start, end].
// start must be before end; windows never wrap.
func OverlapsWindow(r restaurant.Restaurant, start, end timeofday.TimeOfDay) bool {
	if !r.WrapsMidnight() {
		return !end.Before(r.OpenTime) && !start.After(r.CloseTime)
	}
	return !end.Before(r.OpenTime) || !start.After(r.CloseTime)
}
