//go:build unit || e2e

package builder

import (
	"fmt"
	"strconv"
	"time"

	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/domain/timeofday"
	"restaurant-deals/internal/infra/upstream"
)

type RestaurantSpec struct {
	ID    string
	Name  string
	Open  timeofday.TimeOfDay
	Close timeofday.TimeOfDay
	Deals []restaurant.Deal
}

type SnapshotBuilder struct {
	Restaurants []RestaurantSpec
	LoadedAt    time.Time
}

func NewSnapshotBuilder() *SnapshotBuilder {
	return &SnapshotBuilder{LoadedAt: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
}

// NewScenarioSnapshotBuilder returns the four-restaurant catalog used across
// the test suites:
//
//	r1 10:00-22:00 (2 deals), r2 11:30-23:30 (1 deal),
//	r3 22:00-02:00 (1 deal),  r4 09:00-17:00 (no deals)
func NewScenarioSnapshotBuilder() *SnapshotBuilder {
	return NewSnapshotBuilder().
		WithRestaurant("r1", "10:00", "22:00", 2).
		WithRestaurant("r2", "11:30", "23:30", 1).
		WithRestaurant("r3", "22:00", "02:00", 1).
		WithRestaurant("r4", "09:00", "17:00", 0)
}

func (b *SnapshotBuilder) With(mutate func(*SnapshotBuilder)) *SnapshotBuilder {
	mutate(b)
	return b
}

// WithRestaurant appends a restaurant open between two "HH:MM" times with
// dealCount generated deals. Deal ids continue across restaurants (d1, d2, ...).
func (b *SnapshotBuilder) WithRestaurant(id, open, close string, dealCount int) *SnapshotBuilder {
	spec := RestaurantSpec{
		ID:    id,
		Name:  "Restaurant " + id,
		Open:  mustParse(open),
		Close: mustParse(close),
	}
	next := b.dealTotal() + 1
	for i := 0; i < dealCount; i++ {
		spec.Deals = append(spec.Deals, restaurant.Deal{
			ObjectID:     fmt.Sprintf("d%d", next+i),
			RestaurantID: id,
			Discount:     float64(10 + 5*(next+i-1)),
			DineIn:       (next+i)%2 == 1,
			Lightning:    (next+i)%2 == 0,
			QtyLeft:      5,
		})
	}
	b.Restaurants = append(b.Restaurants, spec)
	return b
}

func (b *SnapshotBuilder) BuildDomain() *restaurant.Snapshot {
	restaurants := make([]restaurant.Restaurant, 0, len(b.Restaurants))
	deals := make(map[string][]restaurant.Deal, len(b.Restaurants))
	for _, spec := range b.Restaurants {
		restaurants = append(restaurants, b.buildRestaurant(spec))
		deals[spec.ID] = spec.Deals
	}
	return restaurant.NewSnapshot(restaurants, deals, b.LoadedAt)
}

func (b *SnapshotBuilder) BuildRestaurant(id string) restaurant.Restaurant {
	for _, spec := range b.Restaurants {
		if spec.ID == id {
			return b.buildRestaurant(spec)
		}
	}
	panic("builder: unknown restaurant " + id)
}

// BuildPayload renders the catalog in the upstream feed's string-typed shape.
func (b *SnapshotBuilder) BuildPayload() upstream.RestaurantsPayload {
	payload := upstream.RestaurantsPayload{Restaurants: []upstream.RestaurantPayload{}}
	for _, spec := range b.Restaurants {
		rp := upstream.RestaurantPayload{
			ObjectID: spec.ID,
			Name:     spec.Name,
			Address1: "1 " + spec.Name + " St",
			Suburb:   "Melbourne",
			Open:     spec.Open.Format12h(),
			Close:    spec.Close.Format12h(),
			Deals:    []upstream.DealPayload{},
		}
		for _, d := range spec.Deals {
			rp.Deals = append(rp.Deals, upstream.DealPayload{
				ObjectID:  d.ObjectID,
				Discount:  strconv.FormatFloat(d.Discount, 'f', -1, 64),
				DineIn:    strconv.FormatBool(d.DineIn),
				Lightning: strconv.FormatBool(d.Lightning),
				QtyLeft:   strconv.Itoa(d.QtyLeft),
			})
		}
		payload.Restaurants = append(payload.Restaurants, rp)
	}
	return payload
}

func (b *SnapshotBuilder) buildRestaurant(spec RestaurantSpec) restaurant.Restaurant {
	return restaurant.Restaurant{
		ObjectID:  spec.ID,
		Name:      spec.Name,
		Address1:  "1 " + spec.Name + " St",
		Suburb:    "Melbourne",
		OpenTime:  spec.Open,
		CloseTime: spec.Close,
	}
}

func (b *SnapshotBuilder) dealTotal() int {
	n := 0
	for _, spec := range b.Restaurants {
		n += len(spec.Deals)
	}
	return n
}

func mustParse(s string) timeofday.TimeOfDay {
	t, err := timeofday.Parse24h(s)
	if err != nil {
		panic(err)
	}
	return t
}
