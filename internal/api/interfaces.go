package api

import (
	"context"

	"github.com/neexbeast/neon-voyager/internal/travel"
)

// RecordStore defines the storage operations needed directly by handlers.
type RecordStore interface {
	Destinations(ctx context.Context) ([]travel.Destination, error)
	Destination(ctx context.Context, id string) (*travel.Destination, error)
	SearchDestinations(ctx context.Context, query string) ([]travel.Destination, error)
	Itineraries(ctx context.Context) ([]travel.Itinerary, error)
	CreateItinerary(ctx context.Context, in travel.InsertItinerary) (*travel.Itinerary, error)
	DeleteItinerary(ctx context.Context, id string) error
}

// Merger defines the merged per-destination reads served by handlers.
type Merger interface {
	Hotels(ctx context.Context, destinationID string) ([]travel.Hotel, error)
	Restaurants(ctx context.Context, destinationID string) ([]travel.Restaurant, error)
	Attractions(ctx context.Context, destinationID string) ([]travel.Attraction, error)
	Weather(ctx context.Context, destinationID string) (*travel.Weather, error)
}

// ItineraryPlanner defines the session planner operations served by handlers.
type ItineraryPlanner interface {
	Current() []travel.ItineraryItem
	Saved() []travel.Itinerary
	AddItem(ctx context.Context, item travel.ItineraryItem)
	RemoveItem(ctx context.Context, id string)
	Reorder(ctx context.Context, from, to int) error
	Clear(ctx context.Context)
	Save(ctx context.Context, name, destinationID string) (*travel.Itinerary, error)
	DeleteSaved(ctx context.Context, id string)
}
