// Package lifecycle reconstructs per-name trajectories across the decade
// timeline: first and last appearance, longevity, rank moments, and peak.
package lifecycle

import (
	"math"
	"sort"

	"github.com/okian/namepulse/internal/domain/model"
)

// Lifecycle summarizes one (name, gender) trajectory.
type Lifecycle struct {
	Name   string       `json:"name"`
	Gender model.Gender `json:"gender"`

	FirstDecade string `json:"first_decade"`
	LastDecade  string `json:"last_decade"`

	// Longevity is the number of distinct decades the name was ranked in.
	Longevity int `json:"longevity"`

	AvgRank    float64 `json:"avg_rank"`
	RankStddev float64 `json:"rank_stddev"`

	// PeakDecade holds the numerically best (smallest) rank ever reached.
	// When several decades tie on the best rank the most recent one wins.
	PeakDecade string `json:"peak_decade"`
	PeakRank   int    `json:"peak_rank"`

	// TimeToPeak counts decades from first appearance to the peak, never
	// negative.
	TimeToPeak int `json:"time_to_peak"`

	TotalCount int `json:"total_count"`
}

// Build derives a Lifecycle for every (name, gender) trajectory in records.
// Records whose decade is not on the timeline are ignored: they carry no
// position and cannot be ordered. Output is sorted by gender, then name.
func Build(records []model.NameRecord, tl *model.Timeline) []Lifecycle {
	trajectories := model.GroupByTrajectory(records)

	out := make([]Lifecycle, 0, len(trajectories))
	for key, appearances := range trajectories {
		lc, ok := build(key, appearances, tl)
		if !ok {
			continue
		}
		out = append(out, lc)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Gender != out[j].Gender {
			return out[i].Gender < out[j].Gender
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func build(key model.TrajectoryKey, appearances []model.NameRecord, tl *model.Timeline) (Lifecycle, bool) {
	// Order by timeline position; drop records off the timeline.
	kept := make([]model.NameRecord, 0, len(appearances))
	for _, r := range appearances {
		if tl.Index(r.Decade) != model.NoDecade {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return Lifecycle{}, false
	}
	sort.Slice(kept, func(i, j int) bool {
		return tl.Index(kept[i].Decade) < tl.Index(kept[j].Decade)
	})

	lc := Lifecycle{
		Name:        key.Name,
		Gender:      key.Gender,
		FirstDecade: kept[0].Decade,
		LastDecade:  kept[len(kept)-1].Decade,
		Longevity:   countDistinctDecades(kept),
		PeakRank:    math.MaxInt,
	}

	var sum, sumSq float64
	for _, r := range kept {
		sum += float64(r.Rank)
		sumSq += float64(r.Rank) * float64(r.Rank)
		lc.TotalCount += r.Count
		// <= keeps the latest decade on a rank tie, since kept is in
		// chronological order.
		if r.Rank <= lc.PeakRank {
			lc.PeakRank = r.Rank
			lc.PeakDecade = r.Decade
		}
	}

	n := float64(len(kept))
	lc.AvgRank = sum / n
	// Variance can dip below zero from floating error; clamp before the root.
	variance := sumSq/n - lc.AvgRank*lc.AvgRank
	lc.RankStddev = math.Sqrt(math.Max(0, variance))

	lc.TimeToPeak = tl.Index(lc.PeakDecade) - tl.Index(lc.FirstDecade)
	if lc.TimeToPeak < 0 {
		lc.TimeToPeak = 0
	}
	return lc, true
}

func countDistinctDecades(appearances []model.NameRecord) int {
	seen := make(map[string]struct{}, len(appearances))
	for _, r := range appearances {
		seen[r.Decade] = struct{}{}
	}
	return len(seen)
}
