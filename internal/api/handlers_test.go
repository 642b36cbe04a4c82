package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/neon-voyager/internal/api"
	"github.com/neexbeast/neon-voyager/internal/planner"
	"github.com/neexbeast/neon-voyager/internal/travel"
)

// ---- mock implementations ----

type mockStore struct {
	destinationsFn    func(ctx context.Context) ([]travel.Destination, error)
	destinationFn     func(ctx context.Context, id string) (*travel.Destination, error)
	searchFn          func(ctx context.Context, query string) ([]travel.Destination, error)
	itinerariesFn     func(ctx context.Context) ([]travel.Itinerary, error)
	createItineraryFn func(ctx context.Context, in travel.InsertItinerary) (*travel.Itinerary, error)
	deleteItineraryFn func(ctx context.Context, id string) error
}

func (m *mockStore) Destinations(ctx context.Context) ([]travel.Destination, error) {
	return m.destinationsFn(ctx)
}
func (m *mockStore) Destination(ctx context.Context, id string) (*travel.Destination, error) {
	return m.destinationFn(ctx, id)
}
func (m *mockStore) SearchDestinations(ctx context.Context, query string) ([]travel.Destination, error) {
	return m.searchFn(ctx, query)
}
func (m *mockStore) Itineraries(ctx context.Context) ([]travel.Itinerary, error) {
	return m.itinerariesFn(ctx)
}
func (m *mockStore) CreateItinerary(ctx context.Context, in travel.InsertItinerary) (*travel.Itinerary, error) {
	return m.createItineraryFn(ctx, in)
}
func (m *mockStore) DeleteItinerary(ctx context.Context, id string) error {
	return m.deleteItineraryFn(ctx, id)
}

type mockMerger struct {
	hotelsFn      func(ctx context.Context, id string) ([]travel.Hotel, error)
	restaurantsFn func(ctx context.Context, id string) ([]travel.Restaurant, error)
	attractionsFn func(ctx context.Context, id string) ([]travel.Attraction, error)
	weatherFn     func(ctx context.Context, id string) (*travel.Weather, error)
}

func (m *mockMerger) Hotels(ctx context.Context, id string) ([]travel.Hotel, error) {
	return m.hotelsFn(ctx, id)
}
func (m *mockMerger) Restaurants(ctx context.Context, id string) ([]travel.Restaurant, error) {
	return m.restaurantsFn(ctx, id)
}
func (m *mockMerger) Attractions(ctx context.Context, id string) ([]travel.Attraction, error) {
	return m.attractionsFn(ctx, id)
}
func (m *mockMerger) Weather(ctx context.Context, id string) (*travel.Weather, error) {
	return m.weatherFn(ctx, id)
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// memPlannerStore is an in-memory persistence port so planner endpoints run
// against the real planner service.
type memPlannerStore struct{ doc *planner.Document }

func (s *memPlannerStore) Load(_ context.Context) (*planner.Document, error) { return s.doc, nil }
func (s *memPlannerStore) Save(_ context.Context, doc *planner.Document) error {
	s.doc = doc
	return nil
}

// ---- helpers ----

func sampleDestination() travel.Destination {
	return travel.Destination{
		ID:       "dest-1",
		Name:     "Neo Tokyo",
		Category: "Cyberpunk",
		Location: travel.Location{Lat: 35.6762, Lng: 139.6503},
	}
}

func okStore() *mockStore {
	dest := sampleDestination()
	return &mockStore{
		destinationsFn: func(_ context.Context) ([]travel.Destination, error) {
			return []travel.Destination{dest}, nil
		},
		destinationFn: func(_ context.Context, id string) (*travel.Destination, error) {
			if id == dest.ID {
				return &dest, nil
			}
			return nil, nil
		},
		searchFn: func(_ context.Context, _ string) ([]travel.Destination, error) {
			return []travel.Destination{dest}, nil
		},
		itinerariesFn: func(_ context.Context) ([]travel.Itinerary, error) {
			return []travel.Itinerary{}, nil
		},
		createItineraryFn: func(_ context.Context, in travel.InsertItinerary) (*travel.Itinerary, error) {
			return &travel.Itinerary{ID: "it-1", Name: in.Name, DestinationID: in.DestinationID, Items: in.Items}, nil
		},
		deleteItineraryFn: func(_ context.Context, _ string) error { return nil },
	}
}

func okMerger() *mockMerger {
	return &mockMerger{
		hotelsFn: func(_ context.Context, _ string) ([]travel.Hotel, error) {
			return []travel.Hotel{{ID: "hotel-1", Name: "Cyber Grand Hotel"}}, nil
		},
		restaurantsFn: func(_ context.Context, _ string) ([]travel.Restaurant, error) {
			return []travel.Restaurant{}, nil
		},
		attractionsFn: func(_ context.Context, _ string) ([]travel.Attraction, error) {
			return []travel.Attraction{}, nil
		},
		weatherFn: func(_ context.Context, id string) (*travel.Weather, error) {
			if id == "dest-1" {
				return &travel.Weather{ID: "weather-1", DestinationID: id, Temperature: 23}, nil
			}
			return nil, nil
		},
	}
}

func buildRouter(store api.RecordStore, merger api.Merger, db, redis *mockPinger) http.Handler {
	if db == nil {
		db = &mockPinger{}
	}
	if redis == nil {
		redis = &mockPinger{}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	plan := planner.New(context.Background(), &memPlannerStore{}, log)
	handlers := api.NewHandlers(store, merger, plan, log)
	return api.NewRouter(handlers, db, redis, log)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- destinations ----

func TestListDestinations(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)
	w := doRequest(t, router, http.MethodGet, "/api/destinations", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got []travel.Destination
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Neo Tokyo", got[0].Name)
}

func TestListDestinations_StoreError(t *testing.T) {
	store := okStore()
	store.destinationsFn = func(_ context.Context) ([]travel.Destination, error) {
		return nil, fmt.Errorf("db down")
	}

	router := buildRouter(store, okMerger(), nil, nil)
	w := doRequest(t, router, http.MethodGet, "/api/destinations", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetDestination(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)
	w := doRequest(t, router, http.MethodGet, "/api/destinations/dest-1", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetDestination_NotFound(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)
	w := doRequest(t, router, http.MethodGet, "/api/destinations/ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Destination not found", body["error"])
}

func TestSearch(t *testing.T) {
	store := okStore()
	var gotQuery string
	store.searchFn = func(_ context.Context, q string) ([]travel.Destination, error) {
		gotQuery = q
		return []travel.Destination{sampleDestination()}, nil
	}

	router := buildRouter(store, okMerger(), nil, nil)
	w := doRequest(t, router, http.MethodGet, "/api/search?q=cyber", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cyber", gotQuery)
}

func TestSearch_MissingQuery(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)
	w := doRequest(t, router, http.MethodGet, "/api/search", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ---- merged reads ----

func TestGetHotels(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)
	w := doRequest(t, router, http.MethodGet, "/api/destinations/dest-1/hotels", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var got []travel.Hotel
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Cyber Grand Hotel", got[0].Name)
}

func TestGetHotels_MergeError(t *testing.T) {
	merger := okMerger()
	merger.hotelsFn = func(_ context.Context, _ string) ([]travel.Hotel, error) {
		return nil, fmt.Errorf("db down")
	}

	router := buildRouter(okStore(), merger, nil, nil)
	w := doRequest(t, router, http.MethodGet, "/api/destinations/dest-1/hotels", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetWeather(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)
	w := doRequest(t, router, http.MethodGet, "/api/destinations/dest-1/weather", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetWeather_NotFound(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)
	w := doRequest(t, router, http.MethodGet, "/api/destinations/ghost/weather", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ---- itineraries ----

func TestCreateItinerary(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)
	body := `{"name":"Trip","destinationId":"dest-1","items":[{"id":"a","type":"hotel","time":"9:00 AM"}]}`
	w := doRequest(t, router, http.MethodPost, "/api/itineraries", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got travel.Itinerary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "Trip", got.Name)
}

func TestCreateItinerary_InvalidShape(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)

	// Missing items.
	w := doRequest(t, router, http.MethodPost, "/api/itineraries", `{"name":"Trip","destinationId":"dest-1","items":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown item type.
	w = doRequest(t, router, http.MethodPost, "/api/itineraries", `{"name":"Trip","destinationId":"dest-1","items":[{"id":"a","type":"spaceship"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed JSON.
	w = doRequest(t, router, http.MethodPost, "/api/itineraries", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteItinerary(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)
	w := doRequest(t, router, http.MethodDelete, "/api/itineraries/it-1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// ---- planner ----

func TestPlannerFlow(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)

	// Add three items.
	for _, id := range []string{"a", "b", "c"} {
		body := fmt.Sprintf(`{"id":%q,"type":"attraction","name":"Item %s"}`, id, id)
		w := doRequest(t, router, http.MethodPost, "/api/planner/items", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Reorder 0 -> 2.
	w := doRequest(t, router, http.MethodPost, "/api/planner/reorder", `{"fromIndex":0,"toIndex":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	var current []travel.ItineraryItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&current))
	require.Len(t, current, 3)
	assert.Equal(t, "b", current[0].ID)
	assert.Equal(t, "c", current[1].ID)
	assert.Equal(t, "a", current[2].ID)

	// Save.
	w = doRequest(t, router, http.MethodPost, "/api/planner/save", `{"name":"Trip","destinationId":"dest-1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var saved travel.Itinerary
	require.NoError(t, json.NewDecoder(w.Body).Decode(&saved))
	require.Len(t, saved.Items, 3)
	assert.Equal(t, "9:00 AM", saved.Items[0].Time)
	assert.Equal(t, "11:00 AM", saved.Items[1].Time)
	assert.Equal(t, "1:00 PM", saved.Items[2].Time)

	// Remove one item, then check state.
	w = doRequest(t, router, http.MethodDelete, "/api/planner/items/b", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/planner", "")
	require.Equal(t, http.StatusOK, w.Code)
	var state struct {
		Current []travel.ItineraryItem `json:"current"`
		Saved   []travel.Itinerary     `json:"saved"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Len(t, state.Current, 2)
	assert.Len(t, state.Saved, 1)
}

func TestPlannerReorder_OutOfRange(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)

	w := doRequest(t, router, http.MethodPost, "/api/planner/items", `{"id":"a","type":"hotel","name":"Item a"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/planner/reorder", `{"fromIndex":0,"toIndex":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlannerSave_EmptySequence(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)

	w := doRequest(t, router, http.MethodPost, "/api/planner/save", `{"name":"Trip","destinationId":"dest-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlannerAddItem_MissingID(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)

	w := doRequest(t, router, http.MethodPost, "/api/planner/items", `{"type":"hotel","name":"nameless"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlannerClear(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), nil, nil)

	w := doRequest(t, router, http.MethodPost, "/api/planner/items", `{"id":"a","type":"hotel","name":"Item a"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/planner/clear", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/planner", "")
	var state struct {
		Current []travel.ItineraryItem `json:"current"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&state))
	assert.Empty(t, state.Current)
}

// ---- health ----

func TestHealth_OK(t *testing.T) {
	router := buildRouter(okStore(), okMerger(), &mockPinger{}, &mockPinger{})
	w := doRequest(t, router, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["db"])
	assert.Equal(t, "ok", body["redis"])
}

func TestHealth_DBDown(t *testing.T) {
	router := buildRouter(okStore(), okMerger(),
		&mockPinger{err: fmt.Errorf("db unreachable")},
		&mockPinger{},
	)
	w := doRequest(t, router, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "error", body["db"])
}

func TestHealth_RedisDown(t *testing.T) {
	router := buildRouter(okStore(), okMerger(),
		&mockPinger{},
		&mockPinger{err: fmt.Errorf("redis unreachable")},
	)
	w := doRequest(t, router, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
