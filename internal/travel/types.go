// Package travel defines the domain types shared by the storage, provider,
// merge and planner layers. JSON tags match the wire format the UI consumes.
package travel

import "errors"

// Location is a lat/lng coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Destination is a place users can browse and build an itinerary around.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Rating      float64  `json:"rating"`
	ImageURL    string   `json:"imageUrl"`
	Location    Location `json:"location"`
	Category    string   `json:"category"`
}

// Hotel is a stored hotel record belonging to one destination.
type Hotel struct {
	ID            string   `json:"id"`
	DestinationID string   `json:"destinationId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int      `json:"price"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	ImageURL      string   `json:"imageUrl"`
	Amenities     []string `json:"amenities"`
}

// Restaurant is a stored restaurant record belonging to one destination.
type Restaurant struct {
	ID            string  `json:"id"`
	DestinationID string  `json:"destinationId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	CuisineType   string  `json:"cuisineType"`
	PriceRange    string  `json:"priceRange"`
	Rating        float64 `json:"rating"`
	ImageURL      string  `json:"imageUrl"`
}

// Attraction is a stored attraction record belonging to one destination.
type Attraction struct {
	ID            string   `json:"id"`
	DestinationID string   `json:"destinationId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Duration      string   `json:"duration"`
	ImageURL      string   `json:"imageUrl"`
	Location      Location `json:"location"`
}

// Weather is the current weather snapshot for one destination. There is at
// most one row per destination; it is overwritten on each refresh.
type Weather struct {
	ID            string `json:"id"`
	DestinationID string `json:"destinationId"`
	Temperature   int    `json:"temperature"`
	Condition     string `json:"condition"`
	Humidity      int    `json:"humidity"`
	WindSpeed     int    `json:"windSpeed"`
	Icon          string `json:"icon"`
}

// ItineraryEntry is one scheduled slot inside a saved itinerary.
type ItineraryEntry struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Time string `json:"time"`
}

// Itinerary is a named, saved snapshot of a working itinerary. Immutable
// after creation except via delete.
type Itinerary struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	DestinationID string           `json:"destinationId"`
	Items         []ItineraryEntry `json:"items"`
	CreatedAt     string           `json:"createdAt"`
}

// ItineraryItem is an entry in the working (unsaved) itinerary. It exists
// only inside the planner; it is not independently persisted.
type ItineraryItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Duration string `json:"duration,omitempty"`
	Category string `json:"category,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ---- insert shapes (identity-less) ----

// InsertDestination holds the fields for creating a destination.
type InsertDestination struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Rating      float64  `json:"rating"`
	ImageURL    string   `json:"imageUrl"`
	Location    Location `json:"location"`
	Category    string   `json:"category"`
}

// InsertHotel holds the fields for creating a hotel.
type InsertHotel struct {
	DestinationID string   `json:"destinationId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int      `json:"price"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	ImageURL      string   `json:"imageUrl"`
	Amenities     []string `json:"amenities"`
}

// InsertRestaurant holds the fields for creating a restaurant.
type InsertRestaurant struct {
	DestinationID string  `json:"destinationId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	CuisineType   string  `json:"cuisineType"`
	PriceRange    string  `json:"priceRange"`
	Rating        float64 `json:"rating"`
	ImageURL      string  `json:"imageUrl"`
}

// InsertAttraction holds the fields for creating an attraction.
type InsertAttraction struct {
	DestinationID string   `json:"destinationId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Duration      string   `json:"duration"`
	ImageURL      string   `json:"imageUrl"`
	Location      Location `json:"location"`
}

// InsertWeather holds the fields for creating or overwriting a weather row.
type InsertWeather struct {
	DestinationID string `json:"destinationId"`
	Temperature   int    `json:"temperature"`
	Condition     string `json:"condition"`
	Humidity      int    `json:"humidity"`
	WindSpeed     int    `json:"windSpeed"`
	Icon          string `json:"icon"`
}

// InsertItinerary is the request shape for POST /api/itineraries.
type InsertItinerary struct {
	Name          string           `json:"name"`
	DestinationID string           `json:"destinationId"`
	Items         []ItineraryEntry `json:"items"`
}

var validItemTypes = map[string]bool{
	"hotel":      true,
	"restaurant": true,
	"attraction": true,
}

// ErrInvalidItinerary is returned by Validate for malformed itinerary payloads.
var ErrInvalidItinerary = errors.New("invalid itinerary data")

// Validate checks the insert shape: non-empty name and destination, at least
// one item, and a known type on every item.
func (in InsertItinerary) Validate() error {
	if in.Name == "" || in.DestinationID == "" || len(in.Items) == 0 {
		return ErrInvalidItinerary
	}
	for _, it := range in.Items {
		if it.ID == "" || !validItemTypes[it.Type] {
			return ErrInvalidItinerary
		}
	}
	return nil
}

// ---- external provider shapes ----

// ExternalHotel is a hotel record as returned by a travel data provider.
type ExternalHotel struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	ImageURL    string   `json:"imageUrl"`
	Amenities   []string `json:"amenities"`
	BookingURL  string   `json:"bookingUrl,omitempty"`
}

// ExternalRestaurant is a restaurant record as returned by a provider.
type ExternalRestaurant struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	CuisineType    string  `json:"cuisineType"`
	PriceRange     string  `json:"priceRange"`
	Rating         float64 `json:"rating"`
	ImageURL       string  `json:"imageUrl"`
	ReservationURL string  `json:"reservationUrl,omitempty"`
}

// ExternalAttraction is an attraction record as returned by a provider.
type ExternalAttraction struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	ImageURL    string   `json:"imageUrl"`
	Location    Location `json:"location"`
	TicketURL   string   `json:"ticketUrl,omitempty"`
}

// WeatherSnapshot is the current-conditions shape returned by a weather
// provider. Callers must not assume determinism or caching between calls.
type WeatherSnapshot struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Icon        string `json:"icon"`
}
