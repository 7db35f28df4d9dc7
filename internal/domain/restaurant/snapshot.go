package restaurant

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable view of every restaurant and its deals. It is
// replaced as a whole on refresh and never modified after construction, so it
// may be read from any number of goroutines.
type Snapshot struct {
	version     uuid.UUID
	loadedAt    time.Time
	restaurants []Restaurant
	deals       map[string][]Deal
	dealCount   int
}

// NewSnapshot copies its inputs. Deals keyed by an id that has no restaurant
// are kept but never reached by a query.
func NewSnapshot(restaurants []Restaurant, dealsByRestaurant map[string][]Deal, loadedAt time.Time) *Snapshot {
	deals := make(map[string][]Deal, len(dealsByRestaurant))
	total := 0
	for id, ds := range dealsByRestaurant {
		deals[id] = slices.Clone(ds)
	}
	for _, r := range restaurants {
		total += len(deals[r.ObjectID])
	}

	return &Snapshot{
		version:     uuid.New(),
		loadedAt:    loadedAt,
		restaurants: slices.Clone(restaurants),
		deals:       deals,
		dealCount:   total,
	}
}

func (s *Snapshot) Version() uuid.UUID  { return s.version }
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Len returns the number of restaurants.
func (s *Snapshot) Len() int { return len(s.restaurants) }

// DealCount returns the number of deals owned by restaurants in the snapshot.
func (s *Snapshot) DealCount() int { return s.dealCount }

// Restaurants returns the restaurants in load order.
func (s *Snapshot) Restaurants() []Restaurant {
	return slices.Clone(s.restaurants)
}

// EachRestaurant calls fn for every restaurant in load order without copying
// the collection.
func (s *Snapshot) EachRestaurant(fn func(Restaurant)) {
	for _, r := range s.restaurants {
		fn(r)
	}
}

// DealsFor returns the deals of a restaurant in load order. A restaurant
// without deals and an unknown id both yield a non-nil empty slice.
func (s *Snapshot) DealsFor(restaurantID string) []Deal {
	ds := s.deals[restaurantID]
	if len(ds) == 0 {
		return []Deal{}
	}
	return slices.Clone(ds)
}

// DealCountFor is len(DealsFor(id)) without the copy.
func (s *Snapshot) DealCountFor(restaurantID string) int {
	return len(s.deals[restaurantID])
}
