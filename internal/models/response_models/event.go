package response_models

// EventVenueLocation intentionally uses {lat, lng} field naming, which is what
// the map client consumes. The upstream API sends {lat, lon}; the events
// service remaps it at the boundary.
type EventVenueLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type EventVenue struct {
	Name     string              `json:"name,omitempty"`
	Address  string              `json:"address,omitempty"`
	City     string              `json:"city,omitempty"`
	State    string              `json:"state,omitempty"`
	Location *EventVenueLocation `json:"location,omitempty"`
}

// Event is the normalized projection of an upstream SeatGeek event. It is
// never persisted; its id space is unrelated to Activity ids.
type Event struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	DatetimeLocal string      `json:"datetime_local"`
	Description   string      `json:"description,omitempty"`
	URL           string      `json:"url,omitempty"`
	Score         float64     `json:"score"`
	Type          string      `json:"type"`
	Venue         *EventVenue `json:"venue,omitempty"`
}
