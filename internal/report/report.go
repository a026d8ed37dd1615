// Package report assembles every analyzer's output into one immutable
// report value.
package report

import (
	"time"

	"github.com/okian/namepulse/internal/domain/cohort"
	"github.com/okian/namepulse/internal/domain/lifecycle"
	"github.com/okian/namepulse/internal/domain/lingual"
	"github.com/okian/namepulse/internal/domain/model"
	"github.com/okian/namepulse/internal/domain/movement"
	"github.com/okian/namepulse/internal/domain/turnover"
)

// Report is the engine's only output: every projection computed from one
// snapshot, plus global counters. It is created fresh per generation and
// never mutated afterwards; renderers consume it read-only.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Decades       []string `json:"decades"`
	TotalRecords  int      `json:"total_records"`
	DistinctNames int      `json:"distinct_names"` // distinct (name, gender) pairs

	Cohorts    []cohort.Stats        `json:"cohorts"`
	Lifecycles []lifecycle.Lifecycle `json:"lifecycles"`
	Evergreen  []lifecycle.Evergreen `json:"evergreen"`

	Climbers []movement.Change `json:"climbers"`
	Fallers  []movement.Change `json:"fallers"`

	NewEntries []turnover.NewEntry `json:"new_entries"`
	Comebacks  []turnover.Comeback `json:"comebacks"`
	Churn      []turnover.Churn    `json:"churn"`

	Letters      []lingual.LetterStats      `json:"letters"`
	Suffixes     []lingual.SuffixStats      `json:"suffixes"`
	Lengths      []lingual.LengthStats      `json:"lengths"`
	SpecialChars []lingual.SpecialCharStats `json:"special_chars"`
	Unisex       []lingual.UnisexName       `json:"unisex"`
}

// distinctNames counts distinct (name, gender) pairs.
func distinctNames(records []model.NameRecord) int {
	seen := make(map[model.TrajectoryKey]struct{}, len(records))
	for _, r := range records {
		seen[model.TrajectoryKey{Name: r.Name, Gender: r.Gender}] = struct{}{}
	}
	return len(seen)
}
