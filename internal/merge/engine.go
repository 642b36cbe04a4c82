// Package merge produces the authoritative per-destination record lists by
// unioning the record store with external provider data, deduplicated by
// name, and keeps the store current with newly discovered records.
package merge

import (
	"context"
	"log/slog"

	"github.com/neexbeast/neon-voyager/internal/provider"
	"github.com/neexbeast/neon-voyager/internal/travel"
)

// Store defines the record-store operations the engine needs.
type Store interface {
	Destination(ctx context.Context, id string) (*travel.Destination, error)
	HotelsByDestination(ctx context.Context, destinationID string) ([]travel.Hotel, error)
	CreateHotel(ctx context.Context, in travel.InsertHotel) (*travel.Hotel, error)
	RestaurantsByDestination(ctx context.Context, destinationID string) ([]travel.Restaurant, error)
	CreateRestaurant(ctx context.Context, in travel.InsertRestaurant) (*travel.Restaurant, error)
	AttractionsByDestination(ctx context.Context, destinationID string) ([]travel.Attraction, error)
	CreateAttraction(ctx context.Context, in travel.InsertAttraction) (*travel.Attraction, error)
	WeatherByDestination(ctx context.Context, destinationID string) (*travel.Weather, error)
	UpsertWeather(ctx context.Context, in travel.InsertWeather) (*travel.Weather, error)
}

// Engine merges stored and provider-sourced records. Provider failures are
// absorbed here: callers get the local data and the failure is only logged.
// Store failures always propagate.
type Engine struct {
	store    Store
	provider provider.TravelDataProvider
	log      *slog.Logger
}

// NewEngine constructs an Engine.
func NewEngine(store Store, p provider.TravelDataProvider, log *slog.Logger) *Engine {
	return &Engine{store: store, provider: p, log: log}
}

// mergeByName unions local records with external ones, skipping external
// records whose name is already present. Newly discovered records are
// inserted through insert and appended after the local records in provider
// order. insert returning nil, nil means a concurrent merge already stored
// the record; it is skipped without appending.
func mergeByName[L, E any](
	ctx context.Context,
	local []L,
	external []E,
	localName func(L) string,
	externalName func(E) string,
	insert func(context.Context, E) (*L, error),
) ([]L, error) {
	seen := make(map[string]bool, len(local))
	for _, l := range local {
		seen[localName(l)] = true
	}

	merged := local
	for _, e := range external {
		name := externalName(e)
		if seen[name] {
			continue
		}
		stored, err := insert(ctx, e)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			continue
		}
		seen[name] = true
		merged = append(merged, *stored)
	}
	return merged, nil
}

// resolveDestination loads the destination or nil when it does not exist.
func (e *Engine) resolveDestination(ctx context.Context, id string) (*travel.Destination, error) {
	return e.store.Destination(ctx, id)
}

// Hotels returns the merged hotel list for a destination.
func (e *Engine) Hotels(ctx context.Context, destinationID string) ([]travel.Hotel, error) {
	local, err := e.store.HotelsByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	dest, err := e.resolveDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return local, nil
	}

	external, err := e.provider.Hotels(ctx, dest.Name)
	if err != nil {
		e.log.Warn("hotel provider fetch failed", "destination", dest.Name, "err", err)
		return local, nil
	}

	return mergeByName(ctx, local, external,
		func(h travel.Hotel) string { return h.Name },
		func(x travel.ExternalHotel) string { return x.Name },
		func(ctx context.Context, x travel.ExternalHotel) (*travel.Hotel, error) {
			return e.store.CreateHotel(ctx, travel.InsertHotel{
				DestinationID: destinationID,
				Name:          x.Name,
				Description:   x.Description,
				Price:         x.Price,
				Rating:        x.Rating,
				ReviewCount:   x.ReviewCount,
				ImageURL:      x.ImageURL,
				Amenities:     x.Amenities,
			})
		},
	)
}

// Restaurants returns the merged restaurant list for a destination.
func (e *Engine) Restaurants(ctx context.Context, destinationID string) ([]travel.Restaurant, error) {
	local, err := e.store.RestaurantsByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	dest, err := e.resolveDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return local, nil
	}

	external, err := e.provider.Restaurants(ctx, dest.Name)
	if err != nil {
		e.log.Warn("restaurant provider fetch failed", "destination", dest.Name, "err", err)
		return local, nil
	}

	return mergeByName(ctx, local, external,
		func(r travel.Restaurant) string { return r.Name },
		func(x travel.ExternalRestaurant) string { return x.Name },
		func(ctx context.Context, x travel.ExternalRestaurant) (*travel.Restaurant, error) {
			return e.store.CreateRestaurant(ctx, travel.InsertRestaurant{
				DestinationID: destinationID,
				Name:          x.Name,
				Description:   x.Description,
				CuisineType:   x.CuisineType,
				PriceRange:    x.PriceRange,
				Rating:        x.Rating,
				ImageURL:      x.ImageURL,
			})
		},
	)
}

// Attractions returns the merged attraction list for a destination.
func (e *Engine) Attractions(ctx context.Context, destinationID string) ([]travel.Attraction, error) {
	local, err := e.store.AttractionsByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	dest, err := e.resolveDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return local, nil
	}

	external, err := e.provider.Attractions(ctx, dest.Name)
	if err != nil {
		e.log.Warn("attraction provider fetch failed", "destination", dest.Name, "err", err)
		return local, nil
	}

	return mergeByName(ctx, local, external,
		func(a travel.Attraction) string { return a.Name },
		func(x travel.ExternalAttraction) string { return x.Name },
		func(ctx context.Context, x travel.ExternalAttraction) (*travel.Attraction, error) {
			return e.store.CreateAttraction(ctx, travel.InsertAttraction{
				DestinationID: destinationID,
				Name:          x.Name,
				Description:   x.Description,
				Category:      x.Category,
				Duration:      x.Duration,
				ImageURL:      x.ImageURL,
				Location:      x.Location,
			})
		},
	)
}

// Weather refreshes and returns the destination's current weather. The row
// is overwritten on every call. A provider failure falls back to the stored
// reading, or to the default snapshot when nothing is stored yet; the
// default is persisted so the row exists afterwards. A nil result means the
// destination does not exist.
func (e *Engine) Weather(ctx context.Context, destinationID string) (*travel.Weather, error) {
	current, err := e.store.WeatherByDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	dest, err := e.resolveDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return current, nil
	}

	snap, err := e.provider.Weather(ctx, dest.Location.Lat, dest.Location.Lng)
	if err != nil {
		e.log.Warn("weather provider fetch failed", "destination", dest.Name, "err", err)
		if current != nil {
			return current, nil
		}
		snap = provider.DefaultSnapshot()
	}

	return e.store.UpsertWeather(ctx, travel.InsertWeather{
		DestinationID: destinationID,
		Temperature:   snap.Temperature,
		Condition:     snap.Condition,
		Humidity:      snap.Humidity,
		WindSpeed:     snap.WindSpeed,
		Icon:          snap.Icon,
	})
}
