package response

import (
	"strconv"
	"strings"

	"restaurant-deals/internal/domain/timeofday"
	"restaurant-deals/internal/pkg/errs"
	"restaurant-deals/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

// Every deal field is a string on the wire, times in 12-hour "h:mmAM" form.
type DealResponse struct {
	RestaurantObjectID string `json:"restaurantObjectId"`
	RestaurantName     string `json:"restaurantName"`
	RestaurantAddress1 string `json:"restaurantAddress1"`
	RestaurantSuburb   string `json:"restarantSuburb"` // existing clients read this spelling
	RestaurantOpen     string `json:"restaurantOpen"`
	RestaurantClose    string `json:"restaurantClose"`
	ObjectID           string `json:"objectId"`
	Discount           string `json:"discount"`
	DineIn             string `json:"dineIn"`
	Lightning          string `json:"lightning"`
	Open               string `json:"open"`
	Close              string `json:"close"`
	QtyLeft            string `json:"qtyLeft"`
}

type AvailableDealsResponse struct {
	Deals []DealResponse `json:"deals"`
}

type PeakTimeResponse struct {
	PeakTimeStart string `json:"peakTimeStart"`
	PeakTimeEnd   string `json:"peakTimeEnd"`
}

type HealthResponse struct {
	Status   string         `json:"status"`
	Message  string         `json:"message"`
	Snapshot *SnapshotState `json:"snapshot,omitempty"`
}

type SnapshotState struct {
	Version     string `json:"version"`
	LoadedAt    int64  `json:"loadedAt"`
	Restaurants int    `json:"restaurants"`
	Deals       int    `json:"deals"`
}

var stringOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: timeofday.TimeOfDay(0),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(timeofday.TimeOfDay).Format12h(), nil
			},
		},
		{
			SrcType: float64(0),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return FormatDiscount(src.(float64)), nil
			},
		},
		{
			SrcType: false,
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return strconv.FormatBool(src.(bool)), nil
			},
		},
		{
			SrcType: int(0),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return strconv.Itoa(src.(int)), nil
			},
		},
	},
}

// FormatDiscount always keeps a fractional part: 10 -> "10.0", 12.5 -> "12.5".
func FormatDiscount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

func FromAvailableDeals(views []queries.AvailableDealView) (*AvailableDealsResponse, error) {
	deals := make([]DealResponse, 0, len(views))
	if err := copier.CopyWithOption(&deals, &views, stringOption); err != nil {
		return nil, errs.Wrap(err, "map available deals")
	}
	if deals == nil {
		deals = []DealResponse{}
	}
	return &AvailableDealsResponse{Deals: deals}, nil
}

func FromPeakWindow(v *queries.PeakWindowView) *PeakTimeResponse {
	return &PeakTimeResponse{
		PeakTimeStart: v.Start.Format12h(),
		PeakTimeEnd:   v.End.Format12h(),
	}
}

func FromSnapshotInfo(v *queries.SnapshotInfo) *SnapshotState {
	return &SnapshotState{
		Version:     v.Version.String(),
		LoadedAt:    v.LoadedAt.Unix(),
		Restaurants: v.Restaurants,
		Deals:       v.Deals,
	}
}
