package planner

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/neexbeast/neon-voyager/internal/travel"
)

var (
	// ErrIndexOutOfRange is returned by Reorder for invalid positions.
	ErrIndexOutOfRange = errors.New("reorder index out of range")
	// ErrEmptyName is returned by Save when the itinerary name is blank.
	ErrEmptyName = errors.New("itinerary name required")
	// ErrEmptyItinerary is returned by Save when there are no items to save.
	ErrEmptyItinerary = errors.New("itinerary has no items")
)

// Planner owns the working itinerary sequence and the saved snapshots for
// one session. Every mutation is written through the persistence port;
// write failures are logged and never surfaced to the caller.
type Planner struct {
	store Store
	log   *slog.Logger

	mu      sync.Mutex
	current []travel.ItineraryItem
	saved   []travel.Itinerary
}

// New constructs a Planner rehydrated from the store. Missing or corrupt
// state degrades to an empty planner with a warning.
func New(ctx context.Context, store Store, log *slog.Logger) *Planner {
	p := &Planner{store: store, log: log}

	doc, err := store.Load(ctx)
	if err != nil {
		log.Warn("failed to load planner state, starting empty", "err", err)
		return p
	}
	if doc != nil {
		p.current = doc.Current
		p.saved = doc.Saved
	}
	return p
}

// persist writes the current document. Callers hold p.mu.
func (p *Planner) persist(ctx context.Context) {
	doc := &Document{Current: p.current, Saved: p.saved}
	if err := p.store.Save(ctx, doc); err != nil {
		p.log.Error("failed to persist planner state", "err", err)
	}
}

// Current returns a copy of the working itinerary in order.
func (p *Planner) Current() []travel.ItineraryItem {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]travel.ItineraryItem, len(p.current))
	copy(out, p.current)
	return out
}

// Saved returns a copy of the saved itinerary collection.
func (p *Planner) Saved() []travel.Itinerary {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]travel.Itinerary, len(p.saved))
	copy(out, p.saved)
	return out
}

// AddItem appends an item to the working itinerary. The same id may be
// added more than once; each append is a distinct entry.
func (p *Planner) AddItem(ctx context.Context, item travel.ItineraryItem) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = append(p.current, item)
	p.persist(ctx)
}

// RemoveItem removes the first entry whose id matches. Removing an absent
// id is a no-op.
func (p *Planner) RemoveItem(ctx context.Context, id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, item := range p.current {
		if item.ID == id {
			p.current = append(p.current[:i], p.current[i+1:]...)
			p.persist(ctx)
			return
		}
	}
}

// Reorder removes the element at from and reinserts it at to, shifting the
// others. Out-of-range indices are an error and leave the sequence
// untouched.
func (p *Planner) Reorder(ctx context.Context, from, to int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := len(p.current)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrIndexOutOfRange
	}

	item := p.current[from]
	rest := append(p.current[:from], p.current[from+1:]...)
	p.current = make([]travel.ItineraryItem, 0, n)
	p.current = append(p.current, rest[:to]...)
	p.current = append(p.current, item)
	p.current = append(p.current, rest[to:]...)
	p.persist(ctx)
	return nil
}

// Clear empties the working itinerary.
func (p *Planner) Clear(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = nil
	p.persist(ctx)
}

// timeSlot synthesizes the schedule time for an item: 9:00 AM plus two
// hours per preceding item.
func timeSlot(index int) string {
	t := time.Date(2000, time.January, 1, 9+2*index, 0, 0, 0, time.UTC)
	return t.Format("3:04 PM")
}

// Save snapshots the working itinerary under a name. Requires a non-empty
// name and a non-empty sequence. The working itinerary is left intact.
func (p *Planner) Save(ctx context.Context, name, destinationID string) (*travel.Itinerary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if name == "" {
		return nil, ErrEmptyName
	}
	if len(p.current) == 0 {
		return nil, ErrEmptyItinerary
	}

	entries := make([]travel.ItineraryEntry, len(p.current))
	for i, item := range p.current {
		entries[i] = travel.ItineraryEntry{
			ID:   item.ID,
			Type: item.Type,
			Time: timeSlot(i),
		}
	}

	it := travel.Itinerary{
		ID:            "itinerary-" + uuid.NewString(),
		Name:          name,
		DestinationID: destinationID,
		Items:         entries,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	p.saved = append(p.saved, it)
	p.persist(ctx)
	return &it, nil
}

// DeleteSaved removes a saved itinerary by id. Deleting an absent id is a
// no-op.
func (p *Planner) DeleteSaved(ctx context.Context, id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, it := range p.saved {
		if it.ID == id {
			p.saved = append(p.saved[:i], p.saved[i+1:]...)
			p.persist(ctx)
			return
		}
	}
}
