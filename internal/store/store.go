// Package store persists semester snapshots. Every write replaces the
// whole semester document, mirroring the engine's whole-state mutation
// model: there is never a window where rosters and enrollments disagree
// in storage.
package store

import (
	"context"
	"errors"

	"github.com/KoruApps/courseboard-go/internal/enrollment"
)

// ErrNotFound is returned when no semester with the given ID exists.
var ErrNotFound = errors.New("semester not found")

// SemesterStore holds semester snapshots.
type SemesterStore interface {
	// List returns every stored semester in insertion order.
	List(ctx context.Context) ([]enrollment.Semester, error)
	// Get returns the semester with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (enrollment.Semester, error)
	// Save inserts or fully replaces a semester snapshot.
	Save(ctx context.Context, sem enrollment.Semester) error
	// Delete removes a semester. Missing IDs are not an error.
	Delete(ctx context.Context, id string) error
}
