package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/neon-voyager/internal/travel"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for all travel record kinds.
// Lookups that find nothing return nil, nil rather than an error.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// newID generates a record identity. IDs are created app-side so inserts can
// use ON CONFLICT DO NOTHING without a RETURNING round-trip for identity.
func newID() string {
	return uuid.NewString()
}

// ---- destinations ----

const destinationCols = `id, name, description, price, rating, image_url, location, category`

func scanDestination(row pgx.Row) (*travel.Destination, error) {
	var d travel.Destination
	var locJSON []byte
	if err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Price, &d.Rating, &d.ImageURL, &locJSON, &d.Category); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(locJSON, &d.Location); err != nil {
		return nil, fmt.Errorf("unmarshaling destination location: %w", err)
	}
	return &d, nil
}

func (r *Repository) queryDestinations(ctx context.Context, sql string, args ...any) ([]travel.Destination, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	results := []travel.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning destination row: %w", err)
		}
		results = append(results, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destination rows: %w", err)
	}
	return results, nil
}

// Destinations returns all destinations.
func (r *Repository) Destinations(ctx context.Context) ([]travel.Destination, error) {
	return r.queryDestinations(ctx, `SELECT `+destinationCols+` FROM destinations`)
}

// Destination retrieves one destination by id. Returns nil, nil when absent.
func (r *Repository) Destination(ctx context.Context, id string) (*travel.Destination, error) {
	row := r.q.QueryRow(ctx, `SELECT `+destinationCols+` FROM destinations WHERE id = $1`, id)
	d, err := scanDestination(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying destination %s: %w", id, err)
	}
	return d, nil
}

// SearchDestinations returns destinations whose name, description or category
// contains the query, case-insensitively.
func (r *Repository) SearchDestinations(ctx context.Context, query string) ([]travel.Destination, error) {
	pattern := "%" + query + "%"
	const q = `
		SELECT ` + destinationCols + `
		FROM destinations
		WHERE name ILIKE $1 OR description ILIKE $1 OR category ILIKE $1
	`
	return r.queryDestinations(ctx, q, pattern)
}

// CreateDestination inserts a destination with a fresh identity.
func (r *Repository) CreateDestination(ctx context.Context, in travel.InsertDestination) (*travel.Destination, error) {
	locJSON, err := json.Marshal(in.Location)
	if err != nil {
		return nil, fmt.Errorf("marshaling destination location: %w", err)
	}

	d := travel.Destination{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Rating:      in.Rating,
		ImageURL:    in.ImageURL,
		Location:    in.Location,
		Category:    in.Category,
	}

	const q = `
		INSERT INTO destinations (id, name, description, price, rating, image_url, location, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := r.q.Exec(ctx, q, d.ID, d.Name, d.Description, d.Price, d.Rating, d.ImageURL, locJSON, d.Category); err != nil {
		return nil, fmt.Errorf("inserting destination %s: %w", d.Name, err)
	}
	return &d, nil
}

// ---- hotels ----

const hotelCols = `id, destination_id, name, description, price, rating, review_count, image_url, amenities`

// HotelsByDestination returns all hotels stored for the given destination.
func (r *Repository) HotelsByDestination(ctx context.Context, destinationID string) ([]travel.Hotel, error) {
	rows, err := r.q.Query(ctx, `SELECT `+hotelCols+` FROM hotels WHERE destination_id = $1`, destinationID)
	if err != nil {
		return nil, fmt.Errorf("querying hotels for destination %s: %w", destinationID, err)
	}
	defer rows.Close()

	results := []travel.Hotel{}
	for rows.Next() {
		var h travel.Hotel
		var amenitiesJSON []byte
		if err := rows.Scan(&h.ID, &h.DestinationID, &h.Name, &h.Description, &h.Price, &h.Rating, &h.ReviewCount, &h.ImageURL, &amenitiesJSON); err != nil {
			return nil, fmt.Errorf("scanning hotel row: %w", err)
		}
		if err := json.Unmarshal(amenitiesJSON, &h.Amenities); err != nil {
			return nil, fmt.Errorf("unmarshaling hotel amenities: %w", err)
		}
		results = append(results, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hotel rows: %w", err)
	}
	return results, nil
}

// CreateHotel inserts a hotel with a fresh identity. When another insert
// already claimed (destination_id, name) the conflict is silently skipped
// and nil, nil is returned.
func (r *Repository) CreateHotel(ctx context.Context, in travel.InsertHotel) (*travel.Hotel, error) {
	amenitiesJSON, err := json.Marshal(in.Amenities)
	if err != nil {
		return nil, fmt.Errorf("marshaling hotel amenities: %w", err)
	}

	h := travel.Hotel{
		ID:            newID(),
		DestinationID: in.DestinationID,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Rating:        in.Rating,
		ReviewCount:   in.ReviewCount,
		ImageURL:      in.ImageURL,
		Amenities:     in.Amenities,
	}

	const q = `
		INSERT INTO hotels (id, destination_id, name, description, price, rating, review_count, image_url, amenities)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (destination_id, name) DO NOTHING
	`
	tag, err := r.q.Exec(ctx, q, h.ID, h.DestinationID, h.Name, h.Description, h.Price, h.Rating, h.ReviewCount, h.ImageURL, amenitiesJSON)
	if err != nil {
		return nil, fmt.Errorf("inserting hotel %s: %w", h.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return &h, nil
}

// ---- restaurants ----

const restaurantCols = `id, destination_id, name, description, cuisine_type, price_range, rating, image_url`

// RestaurantsByDestination returns all restaurants stored for the given destination.
func (r *Repository) RestaurantsByDestination(ctx context.Context, destinationID string) ([]travel.Restaurant, error) {
	rows, err := r.q.Query(ctx, `SELECT `+restaurantCols+` FROM restaurants WHERE destination_id = $1`, destinationID)
	if err != nil {
		return nil, fmt.Errorf("querying restaurants for destination %s: %w", destinationID, err)
	}
	defer rows.Close()

	results := []travel.Restaurant{}
	for rows.Next() {
		var rec travel.Restaurant
		if err := rows.Scan(&rec.ID, &rec.DestinationID, &rec.Name, &rec.Description, &rec.CuisineType, &rec.PriceRange, &rec.Rating, &rec.ImageURL); err != nil {
			return nil, fmt.Errorf("scanning restaurant row: %w", err)
		}
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating restaurant rows: %w", err)
	}
	return results, nil
}

// CreateRestaurant inserts a restaurant, skipping duplicates by
// (destination_id, name) the same way CreateHotel does.
func (r *Repository) CreateRestaurant(ctx context.Context, in travel.InsertRestaurant) (*travel.Restaurant, error) {
	rec := travel.Restaurant{
		ID:            newID(),
		DestinationID: in.DestinationID,
		Name:          in.Name,
		Description:   in.Description,
		CuisineType:   in.CuisineType,
		PriceRange:    in.PriceRange,
		Rating:        in.Rating,
		ImageURL:      in.ImageURL,
	}

	const q = `
		INSERT INTO restaurants (id, destination_id, name, description, cuisine_type, price_range, rating, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (destination_id, name) DO NOTHING
	`
	tag, err := r.q.Exec(ctx, q, rec.ID, rec.DestinationID, rec.Name, rec.Description, rec.CuisineType, rec.PriceRange, rec.Rating, rec.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("inserting restaurant %s: %w", rec.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return &rec, nil
}

// ---- attractions ----

const attractionCols = `id, destination_id, name, description, category, duration, image_url, location`

// AttractionsByDestination returns all attractions stored for the given destination.
func (r *Repository) AttractionsByDestination(ctx context.Context, destinationID string) ([]travel.Attraction, error) {
	rows, err := r.q.Query(ctx, `SELECT `+attractionCols+` FROM attractions WHERE destination_id = $1`, destinationID)
	if err != nil {
		return nil, fmt.Errorf("querying attractions for destination %s: %w", destinationID, err)
	}
	defer rows.Close()

	results := []travel.Attraction{}
	for rows.Next() {
		var a travel.Attraction
		var locJSON []byte
		if err := rows.Scan(&a.ID, &a.DestinationID, &a.Name, &a.Description, &a.Category, &a.Duration, &a.ImageURL, &locJSON); err != nil {
			return nil, fmt.Errorf("scanning attraction row: %w", err)
		}
		if err := json.Unmarshal(locJSON, &a.Location); err != nil {
			return nil, fmt.Errorf("unmarshaling attraction location: %w", err)
		}
		results = append(results, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attraction rows: %w", err)
	}
	return results, nil
}

// CreateAttraction inserts an attraction, skipping duplicates by
// (destination_id, name) the same way CreateHotel does.
func (r *Repository) CreateAttraction(ctx context.Context, in travel.InsertAttraction) (*travel.Attraction, error) {
	locJSON, err := json.Marshal(in.Location)
	if err != nil {
		return nil, fmt.Errorf("marshaling attraction location: %w", err)
	}

	a := travel.Attraction{
		ID:            newID(),
		DestinationID: in.DestinationID,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Duration:      in.Duration,
		ImageURL:      in.ImageURL,
		Location:      in.Location,
	}

	const q = `
		INSERT INTO attractions (id, destination_id, name, description, category, duration, image_url, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (destination_id, name) DO NOTHING
	`
	tag, err := r.q.Exec(ctx, q, a.ID, a.DestinationID, a.Name, a.Description, a.Category, a.Duration, a.ImageURL, locJSON)
	if err != nil {
		return nil, fmt.Errorf("inserting attraction %s: %w", a.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return &a, nil
}

// ---- weather ----

// WeatherByDestination returns the current weather row for a destination.
// Returns nil, nil when no reading is stored.
func (r *Repository) WeatherByDestination(ctx context.Context, destinationID string) (*travel.Weather, error) {
	const q = `
		SELECT id, destination_id, temperature, condition, humidity, wind_speed, icon
		FROM weather
		WHERE destination_id = $1
	`
	var w travel.Weather
	err := r.q.QueryRow(ctx, q, destinationID).Scan(&w.ID, &w.DestinationID, &w.Temperature, &w.Condition, &w.Humidity, &w.WindSpeed, &w.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying weather for destination %s: %w", destinationID, err)
	}
	return &w, nil
}

// UpsertWeather inserts the destination's weather row or overwrites its
// fields in place. An existing row keeps its identity on update.
func (r *Repository) UpsertWeather(ctx context.Context, in travel.InsertWeather) (*travel.Weather, error) {
	const q = `
		INSERT INTO weather (id, destination_id, temperature, condition, humidity, wind_speed, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (destination_id) DO UPDATE
		SET temperature = EXCLUDED.temperature,
		    condition   = EXCLUDED.condition,
		    humidity    = EXCLUDED.humidity,
		    wind_speed  = EXCLUDED.wind_speed,
		    icon        = EXCLUDED.icon
		RETURNING id
	`
	var id string
	if err := r.q.QueryRow(ctx, q, newID(), in.DestinationID, in.Temperature, in.Condition, in.Humidity, in.WindSpeed, in.Icon).Scan(&id); err != nil {
		return nil, fmt.Errorf("upserting weather for destination %s: %w", in.DestinationID, err)
	}

	return &travel.Weather{
		ID:            id,
		DestinationID: in.DestinationID,
		Temperature:   in.Temperature,
		Condition:     in.Condition,
		Humidity:      in.Humidity,
		WindSpeed:     in.WindSpeed,
		Icon:          in.Icon,
	}, nil
}

// ---- itineraries ----

// Itineraries returns all saved itineraries.
func (r *Repository) Itineraries(ctx context.Context) ([]travel.Itinerary, error) {
	const q = `SELECT id, name, destination_id, items, created_at FROM itineraries`
	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying itineraries: %w", err)
	}
	defer rows.Close()

	results := []travel.Itinerary{}
	for rows.Next() {
		var it travel.Itinerary
		var itemsJSON []byte
		if err := rows.Scan(&it.ID, &it.Name, &it.DestinationID, &itemsJSON, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning itinerary row: %w", err)
		}
		if err := json.Unmarshal(itemsJSON, &it.Items); err != nil {
			return nil, fmt.Errorf("unmarshaling itinerary items: %w", err)
		}
		results = append(results, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating itinerary rows: %w", err)
	}
	return results, nil
}

// Itinerary retrieves one saved itinerary by id. Returns nil, nil when absent.
func (r *Repository) Itinerary(ctx context.Context, id string) (*travel.Itinerary, error) {
	const q = `SELECT id, name, destination_id, items, created_at FROM itineraries WHERE id = $1`
	var it travel.Itinerary
	var itemsJSON []byte
	err := r.q.QueryRow(ctx, q, id).Scan(&it.ID, &it.Name, &it.DestinationID, &itemsJSON, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying itinerary %s: %w", id, err)
	}
	if err := json.Unmarshal(itemsJSON, &it.Items); err != nil {
		return nil, fmt.Errorf("unmarshaling itinerary items: %w", err)
	}
	return &it, nil
}

// CreateItinerary persists a new itinerary with a fresh identity and a
// createdAt timestamp.
func (r *Repository) CreateItinerary(ctx context.Context, in travel.InsertItinerary) (*travel.Itinerary, error) {
	it := travel.Itinerary{
		ID:            newID(),
		Name:          in.Name,
		DestinationID: in.DestinationID,
		Items:         in.Items,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	itemsJSON, err := json.Marshal(it.Items)
	if err != nil {
		return nil, fmt.Errorf("marshaling itinerary items: %w", err)
	}

	const q = `
		INSERT INTO itineraries (id, name, destination_id, items, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.q.Exec(ctx, q, it.ID, it.Name, it.DestinationID, itemsJSON, it.CreatedAt); err != nil {
		return nil, fmt.Errorf("inserting itinerary %s: %w", it.Name, err)
	}
	return &it, nil
}

// DeleteItinerary removes a saved itinerary. Deleting an absent id is a no-op.
func (r *Repository) DeleteItinerary(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM itineraries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting itinerary %s: %w", id, err)
	}
	return nil
}
