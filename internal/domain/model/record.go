// Package model contains domain records passed between layers.
package model

// Gender is a closed two-value category.
type Gender string

// Gender values recognized by the engine.
const (
	Boy  Gender = "boy"
	Girl Gender = "girl"
)

// Genders returns the closed set of categories in a stable order.
func Genders() []Gender {
	return []Gender{Boy, Girl}
}

// Valid reports whether g is one of the recognized categories.
func (g Gender) Valid() bool {
	return g == Boy || g == Girl
}

// NameRecord is one row of a ranked snapshot: a name's standing within a
// single (decade, gender) cohort. Records are immutable once loaded; within
// a cohort ranks are unique positive integers and counts are non-negative.
// The engine trusts these invariants — enforcing them is ingestion's job.
type NameRecord struct {
	Decade string
	Gender Gender
	Rank   int
	Name   string
	Count  int
}

// CohortKey identifies a (decade, gender) cohort, the unit of per-period
// statistics.
type CohortKey struct {
	Decade string
	Gender Gender
}

// TrajectoryKey identifies a (name, gender) history across decades, the unit
// of lifecycle statistics.
type TrajectoryKey struct {
	Name   string
	Gender Gender
}

// GroupByCohort buckets records by (decade, gender).
func GroupByCohort(records []NameRecord) map[CohortKey][]NameRecord {
	out := make(map[CohortKey][]NameRecord)
	for _, r := range records {
		k := CohortKey{Decade: r.Decade, Gender: r.Gender}
		out[k] = append(out[k], r)
	}
	return out
}

// GroupByTrajectory buckets records by (name, gender).
func GroupByTrajectory(records []NameRecord) map[TrajectoryKey][]NameRecord {
	out := make(map[TrajectoryKey][]NameRecord)
	for _, r := range records {
		k := TrajectoryKey{Name: r.Name, Gender: r.Gender}
		out[k] = append(out[k], r)
	}
	return out
}
