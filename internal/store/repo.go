package store

import (
	"context"
	"time"

	"github.com/abhisek/capitolquiz/internal/roster"
)

// RosterImport describes the roster currently held by the store.
type RosterImport struct {
	ID         int64
	Source     string // file path or "embedded"
	ImportedAt time.Time
	Entities   int
}

// RosterRepo manages the persisted roster.
type RosterRepo interface {
	// Import replaces the stored roster with entities, in order.
	Import(ctx context.Context, source string, entities []roster.Entity) (*RosterImport, error)

	// Load returns the stored roster in import order, or
	// roster.ErrEmptyRoster if nothing has been imported.
	Load(ctx context.Context) (*roster.Roster, error)

	// LastImport returns the current import, or nil if none exists.
	LastImport(ctx context.Context) (*RosterImport, error)
}
