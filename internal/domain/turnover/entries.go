// Package turnover measures how cohorts change between consecutive decades:
// fresh entrants, gap-aware comebacks, and set-similarity churn.
package turnover

import (
	"sort"

	"github.com/okian/namepulse/internal/domain/model"
)

// NewEntry is a name ranked in a decade that was absent from the previous
// one, recorded with its standing at entry.
type NewEntry struct {
	Name   string       `json:"name"`
	Gender model.Gender `json:"gender"`
	Decade string       `json:"decade"`
	Rank   int          `json:"rank"`
	Count  int          `json:"count"`
}

// NewEntries joins every consecutive decade pair per gender and keeps the
// names present in the later decade but not the earlier one. Output is
// ordered by timeline index, gender, then rank.
func NewEntries(records []model.NameRecord, tl *model.Timeline) []NewEntry {
	cohorts := model.GroupByCohort(records)

	var out []NewEntry
	for _, pair := range tl.ConsecutivePairs() {
		for _, g := range model.Genders() {
			prev := nameSet(cohorts[model.CohortKey{Decade: pair.From, Gender: g}])
			for _, r := range cohorts[model.CohortKey{Decade: pair.To, Gender: g}] {
				if _, ok := prev[r.Name]; ok {
					continue
				}
				out = append(out, NewEntry{
					Name:   r.Name,
					Gender: g,
					Decade: r.Decade,
					Rank:   r.Rank,
					Count:  r.Count,
				})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		di, dj := tl.Index(out[i].Decade), tl.Index(out[j].Decade)
		if di != dj {
			return di < dj
		}
		if out[i].Gender != out[j].Gender {
			return out[i].Gender < out[j].Gender
		}
		return out[i].Rank < out[j].Rank
	})
	return out
}

func nameSet(cohort []model.NameRecord) map[string]struct{} {
	set := make(map[string]struct{}, len(cohort))
	for _, r := range cohort {
		set[r.Name] = struct{}{}
	}
	return set
}
