package provider

import (
	"context"
	"math/rand"
	"time"

	"github.com/neexbeast/neon-voyager/internal/travel"
)

const defaultDelay = 200 * time.Millisecond

// weather conditions paired with their icon slugs, index-aligned.
var (
	weatherConditions = []string{"Clear Sky", "Partly Cloudy", "Neon Rain", "Digital Fog", "Cyber Storm"}
	weatherIcons      = []string{"clear-day", "partly-cloudy", "neon-rain", "digital-fog", "cyber-storm"}
)

// Simulated serves travel data from in-memory tables and generates weather
// randomly within fixed bounds. It imitates real provider latency with a
// configurable delay that respects context cancellation.
type Simulated struct {
	delay       time.Duration
	hotels      map[string][]travel.ExternalHotel
	restaurants map[string][]travel.ExternalRestaurant
	attractions map[string][]travel.ExternalAttraction
}

// NewSimulated constructs a Simulated provider with the given artificial
// latency per call. A zero or negative delay disables the wait (useful in
// tests).
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{
		delay:       delay,
		hotels:      hotelTable,
		restaurants: restaurantTable,
		attractions: attractionTable,
	}
}

// NewSimulatedDefault constructs a Simulated provider with production latency.
func NewSimulatedDefault() *Simulated {
	return NewSimulated(defaultDelay)
}

// wait blocks for the configured delay or until ctx is done.
func (s *Simulated) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Hotels returns the simulated hotel listings for the named destination.
func (s *Simulated) Hotels(ctx context.Context, destinationName string) ([]travel.ExternalHotel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.hotels[destinationName], nil
}

// Restaurants returns the simulated restaurant listings for the named destination.
func (s *Simulated) Restaurants(ctx context.Context, destinationName string) ([]travel.ExternalRestaurant, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.restaurants[destinationName], nil
}

// Attractions returns the simulated attraction listings for the named destination.
func (s *Simulated) Attractions(ctx context.Context, destinationName string) ([]travel.ExternalAttraction, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.attractions[destinationName], nil
}

// Weather generates a fresh snapshot within fixed bounds: temperature
// 10-40 °C, humidity 40-80 %, wind 5-25 km/h. Every call produces new values.
func (s *Simulated) Weather(ctx context.Context, lat, lng float64) (*travel.WeatherSnapshot, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	idx := rand.Intn(len(weatherConditions))
	return &travel.WeatherSnapshot{
		Temperature: rand.Intn(30) + 10,
		Condition:   weatherConditions[idx],
		Humidity:    rand.Intn(40) + 40,
		WindSpeed:   rand.Intn(20) + 5,
		Icon:        weatherIcons[idx],
	}, nil
}

var _ TravelDataProvider = (*Simulated)(nil)
