package repository

import (
	"context"
	"sort"

	"github.com/okian/namepulse/internal/domain/model"
)

// MemStore is an in-memory Store. Records are bucketed by cohort once at
// construction; all reads return copies so callers can never mutate the
// snapshot under each other.
type MemStore struct {
	timeline *model.Timeline
	records  []model.NameRecord
	cohorts  map[model.CohortKey][]model.NameRecord
}

// NewMemStore builds a store over the given timeline and records. Records
// are sorted by (timeline index, gender, rank) for deterministic reads.
func NewMemStore(tl *model.Timeline, records []model.NameRecord) *MemStore {
	s := &MemStore{
		timeline: tl,
		records:  make([]model.NameRecord, len(records)),
	}
	copy(s.records, records)
	if tl == nil {
		s.cohorts = model.GroupByCohort(s.records)
		return s
	}
	sort.Slice(s.records, func(i, j int) bool {
		di, dj := tl.Index(s.records[i].Decade), tl.Index(s.records[j].Decade)
		if di != dj {
			return di < dj
		}
		if s.records[i].Gender != s.records[j].Gender {
			return s.records[i].Gender < s.records[j].Gender
		}
		return s.records[i].Rank < s.records[j].Rank
	})
	s.cohorts = model.GroupByCohort(s.records)
	return s
}

// All returns a copy of every record.
func (s *MemStore) All(_ context.Context) ([]model.NameRecord, error) {
	out := make([]model.NameRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Cohort returns a copy of one cohort's records, empty when unknown.
func (s *MemStore) Cohort(_ context.Context, decade string, gender model.Gender) ([]model.NameRecord, error) {
	members := s.cohorts[model.CohortKey{Decade: decade, Gender: gender}]
	out := make([]model.NameRecord, len(members))
	copy(out, members)
	return out, nil
}

// Timeline returns the decade sequence the store was built with.
func (s *MemStore) Timeline(_ context.Context) (*model.Timeline, error) {
	if s.timeline == nil {
		return nil, ErrNoTimeline
	}
	return s.timeline, nil
}

// Len returns the number of records held.
func (s *MemStore) Len() int {
	return len(s.records)
}
