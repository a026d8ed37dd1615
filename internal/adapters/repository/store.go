// Package repository defines read access to a ranked-record snapshot and an
// in-memory implementation of it.
package repository

import (
	"context"

	"github.com/okian/namepulse/internal/domain/model"
)

// Store provides the record access the engine needs: the full snapshot,
// single cohorts, and the ordered decade sequence. Implementations are
// read-only after load; the engine never writes through this interface.
type Store interface {
	// All returns every record in the snapshot.
	All(ctx context.Context) ([]model.NameRecord, error)

	// Cohort returns the records for one (decade, gender) pair. An unknown
	// decade yields an empty slice, not an error.
	Cohort(ctx context.Context, decade string, gender model.Gender) ([]model.NameRecord, error)

	// Timeline returns the externally supplied chronological decade sequence.
	Timeline(ctx context.Context) (*model.Timeline, error)
}
