package upstream

import (
	"strconv"
	"strings"
	"time"

	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/domain/timeofday"
	"restaurant-deals/internal/pkg/errs"
)

// ToSnapshot converts the whole payload or nothing. The returned error names
// the restaurant (and deal) holding the first field that failed to convert.
func ToSnapshot(p RestaurantsPayload, loadedAt time.Time) (*restaurant.Snapshot, error) {
	restaurants := make([]restaurant.Restaurant, 0, len(p.Restaurants))
	deals := make(map[string][]restaurant.Deal, len(p.Restaurants))

	for _, rp := range p.Restaurants {
		r, err := toRestaurant(rp)
		if err != nil {
			return nil, errs.Wrapf(err, "restaurant %q", rp.ObjectID)
		}

		ds := make([]restaurant.Deal, 0, len(rp.Deals))
		for _, dp := range rp.Deals {
			d, err := toDeal(rp.ObjectID, dp)
			if err != nil {
				return nil, errs.Wrapf(err, "restaurant %q: deal %q", rp.ObjectID, dp.ObjectID)
			}
			ds = append(ds, d)
		}

		restaurants = append(restaurants, r)
		deals[r.ObjectID] = ds
	}

	return restaurant.NewSnapshot(restaurants, deals, loadedAt), nil
}

func toRestaurant(rp RestaurantPayload) (restaurant.Restaurant, error) {
	openTime, err := timeofday.Parse12h(rp.Open)
	if err != nil {
		return restaurant.Restaurant{}, errs.Wrap(err, "open")
	}
	closeTime, err := timeofday.Parse12h(rp.Close)
	if err != nil {
		return restaurant.Restaurant{}, errs.Wrap(err, "close")
	}

	return restaurant.Restaurant{
		ObjectID:  rp.ObjectID,
		Name:      rp.Name,
		Address1:  rp.Address1,
		Suburb:    rp.Suburb,
		OpenTime:  openTime,
		CloseTime: closeTime,
	}, nil
}

func toDeal(restaurantID string, dp DealPayload) (restaurant.Deal, error) {
	discount, err := strconv.ParseFloat(strings.TrimSpace(dp.Discount), 64)
	if err != nil {
		return restaurant.Deal{}, errs.Wrap(err, "discount")
	}
	if discount < 0 {
		return restaurant.Deal{}, errs.Newf("discount: negative value %q", dp.Discount)
	}
	dineIn, err := strconv.ParseBool(strings.TrimSpace(dp.DineIn))
	if err != nil {
		return restaurant.Deal{}, errs.Wrap(err, "dineIn")
	}
	lightning, err := strconv.ParseBool(strings.TrimSpace(dp.Lightning))
	if err != nil {
		return restaurant.Deal{}, errs.Wrap(err, "lightning")
	}
	qtyLeft, err := strconv.Atoi(strings.TrimSpace(dp.QtyLeft))
	if err != nil {
		return restaurant.Deal{}, errs.Wrap(err, "qtyLeft")
	}
	if qtyLeft < 0 {
		return restaurant.Deal{}, errs.Newf("qtyLeft: negative value %q", dp.QtyLeft)
	}

	return restaurant.Deal{
		ObjectID:     dp.ObjectID,
		RestaurantID: restaurantID,
		Discount:     discount,
		DineIn:       dineIn,
		Lightning:    lightning,
		QtyLeft:      qtyLeft,
	}, nil
}
