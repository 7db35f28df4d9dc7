package upstream

// RestaurantsPayload is the upstream feed document. Every scalar arrives as a
// string and is converted in ToSnapshot.
type RestaurantsPayload struct {
	Restaurants []RestaurantPayload `json:"restaurants"`
}

type RestaurantPayload struct {
	ObjectID string        `json:"objectId"`
	Name     string        `json:"name"`
	Address1 string        `json:"address1"`
	Suburb   string        `json:"suburb"`
	Open     string        `json:"open"`
	Close    string        `json:"close"`
	Deals    []DealPayload `json:"deals"`
}

type DealPayload struct {
	ObjectID  string `json:"objectId"`
	Discount  string `json:"discount"`
	DineIn    string `json:"dineIn"`
	Lightning string `json:"lightning"`
	QtyLeft   string `json:"qtyLeft"`
}
