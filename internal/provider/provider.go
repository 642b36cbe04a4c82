// Package provider supplies travel data from external sources. The shipped
// implementation simulates third-party APIs with static tables; a real
// integration can replace it behind the same interface.
package provider

import (
	"context"

	"github.com/neexbeast/neon-voyager/internal/travel"
)

// TravelDataProvider is the capability interface the merge engine consumes.
// Hotel/restaurant/attraction lookups are keyed by exact destination name;
// an unknown name yields an empty slice, never an error.
type TravelDataProvider interface {
	Hotels(ctx context.Context, destinationName string) ([]travel.ExternalHotel, error)
	Restaurants(ctx context.Context, destinationName string) ([]travel.ExternalRestaurant, error)
	Attractions(ctx context.Context, destinationName string) ([]travel.ExternalAttraction, error)
	Weather(ctx context.Context, lat, lng float64) (*travel.WeatherSnapshot, error)
}

// DefaultSnapshot returns the fallback weather used when a live fetch fails
// and no stored reading exists.
func DefaultSnapshot() *travel.WeatherSnapshot {
	return &travel.WeatherSnapshot{
		Temperature: 22,
		Condition:   "Clear Sky",
		Humidity:    65,
		WindSpeed:   10,
		Icon:        "clear-day",
	}
}
