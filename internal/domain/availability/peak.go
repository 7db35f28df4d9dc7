package availability

import (
	"restaurant-deals/internal/domain/restaurant"
	"restaurant-deals/internal/domain/timeofday"
)

const (
	BucketHours = 3
	BucketCount = 24 / BucketHours
)

// Bucket is one of the fixed windows tiling the day. The last bucket ends at
// timeofday.Max since 24:00 is not a time of day.
type Bucket struct {
	Start timeofday.TimeOfDay
	End   timeofday.TimeOfDay
}

type BucketTotal struct {
	Bucket
	Deals int
}

type PeakWindow struct {
	Start timeofday.TimeOfDay
	End   timeofday.TimeOfDay
}

// FullDay is returned for an empty snapshot.
var FullDay = PeakWindow{Start: timeofday.Midnight, End: timeofday.Max}

func Buckets() []Bucket {
	buckets := make([]Bucket, 0, BucketCount)
	for hour := 0; hour < 24; hour += BucketHours {
		end := timeofday.Max
		if hour+BucketHours < 24 {
			end = timeofday.Of(hour+BucketHours, 0)
		}
		buckets = append(buckets, Bucket{Start: timeofday.Of(hour, 0), End: end})
	}
	return buckets
}

// BucketTotals counts, per bucket, the deals of every restaurant overlapping
// it. A restaurant spanning several buckets is counted in each.
func BucketTotals(snap *restaurant.Snapshot) []BucketTotal {
	buckets := Buckets()
	totals := make([]BucketTotal, len(buckets))
	for i, b := range buckets {
		totals[i].Bucket = b
		snap.EachRestaurant(func(r restaurant.Restaurant) {
			if OverlapsWindow(r, b.Start, b.End) {
				totals[i].Deals += snap.DealCountFor(r.ObjectID)
			}
		})
	}
	return totals
}

// FindPeakWindow returns the bucket with the most deals. Only a strictly
// greater total replaces the current best, so ties go to the earliest bucket
// and a snapshot with no deals at all yields the first bucket.
func FindPeakWindow(snap *restaurant.Snapshot) PeakWindow {
	if snap.Len() == 0 {
		return FullDay
	}
	return peakOf(BucketTotals(snap))
}

// PeakOf applies FindPeakWindow's selection to precomputed totals.
func PeakOf(totals []BucketTotal) PeakWindow {
	if len(totals) == 0 {
		return FullDay
	}
	return peakOf(totals)
}

func peakOf(totals []BucketTotal) PeakWindow {
	peak := PeakWindow{Start: totals[0].Start, End: totals[0].End}
	maxDeals := 0
	for _, t := range totals {
		if t.Deals > maxDeals {
			maxDeals = t.Deals
			peak = PeakWindow{Start: t.Start, End: t.End}
		}
	}
	return peak
}
