// Package planner owns the working itinerary: an ordered item sequence plus
// the collection of saved itinerary snapshots, persisted as one JSON
// document after every mutation.
package planner

import (
	"context"

	"github.com/neexbeast/neon-voyager/internal/travel"
)

// Document is the persisted planner state.
type Document struct {
	Current []travel.ItineraryItem `json:"current"`
	Saved   []travel.Itinerary     `json:"saved"`
}

// Store is the persistence port for the planner document. Load returns
// nil, nil when nothing has been stored yet.
type Store interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}
