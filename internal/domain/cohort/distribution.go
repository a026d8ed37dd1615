// Package cohort computes concentration and diversity statistics for
// (decade, gender) cohorts of ranked name records.
package cohort

import (
	"math"
	"sort"

	"github.com/okian/namepulse/internal/domain/model"
)

// Thresholds for the cumulative-coverage walk.
const (
	halfCoverage = 0.5
	bulkCoverage = 0.9
)

// Stats describes how concentrated or diverse a single cohort is. All share
// fields are fractions in [0,1].
type Stats struct {
	Decade        string       `json:"decade"`
	Gender        model.Gender `json:"gender"`
	TotalBirths   int          `json:"total_births"`
	DistinctNames int          `json:"distinct_names"`

	// Share of births held by the top ranks.
	Top1Share  float64 `json:"top1_share"`
	Top5Share  float64 `json:"top5_share"`
	Top10Share float64 `json:"top10_share"`

	// Ranks needed to cover half and 90% of all births.
	NamesToHalf int `json:"names_to_half"`
	NamesToBulk int `json:"names_to_bulk"`

	// Herfindahl-Hirschman index, its reciprocal, and Shannon entropy.
	HHI            float64 `json:"hhi"`
	EffectiveNames float64 `json:"effective_names"`
	Entropy        float64 `json:"entropy"`
}

// Analyze computes Stats for every non-empty cohort in records. Cohorts whose
// counts sum to zero are skipped outright so no share is ever divided by zero.
// Output is ordered by timeline index, then gender.
func Analyze(records []model.NameRecord, tl *model.Timeline) []Stats {
	cohorts := model.GroupByCohort(records)

	out := make([]Stats, 0, len(cohorts))
	for key, members := range cohorts {
		s, ok := analyzeOne(key, members)
		if !ok {
			continue
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		di, dj := tl.Index(out[i].Decade), tl.Index(out[j].Decade)
		if di != dj {
			return di < dj
		}
		return out[i].Gender < out[j].Gender
	})
	return out
}

func analyzeOne(key model.CohortKey, members []model.NameRecord) (Stats, bool) {
	total := 0
	for _, r := range members {
		total += r.Count
	}
	if total == 0 {
		return Stats{}, false
	}

	byRank := make([]model.NameRecord, len(members))
	copy(byRank, members)
	sort.Slice(byRank, func(i, j int) bool { return byRank[i].Rank < byRank[j].Rank })

	s := Stats{
		Decade:        key.Decade,
		Gender:        key.Gender,
		TotalBirths:   total,
		DistinctNames: len(members),
		Top1Share:     TopNShare(byRank, total, 1),
		Top5Share:     TopNShare(byRank, total, 5),
		Top10Share:    TopNShare(byRank, total, 10),
		NamesToHalf:   NamesToReach(byRank, total, halfCoverage),
		NamesToBulk:   NamesToReach(byRank, total, bulkCoverage),
	}

	for _, r := range byRank {
		share := float64(r.Count) / float64(total)
		s.HHI += share * share
		if share > 0 {
			s.Entropy -= share * math.Log(share)
		}
	}
	// Non-empty cohort guarantees HHI > 0.
	s.EffectiveNames = 1 / s.HHI
	return s, true
}

// TopNShare returns the fraction of total births held by records with
// rank <= n. byRank must be sorted ascending by rank and total must be > 0.
func TopNShare(byRank []model.NameRecord, total, n int) float64 {
	sum := 0
	for _, r := range byRank {
		if r.Rank > n {
			break
		}
		sum += r.Count
	}
	return float64(sum) / float64(total)
}

// NamesToReach walks ranks in ascending order accumulating counts and returns
// the position of the first record where the running sum covers pct of total.
// If the walk completes without reaching the threshold — floating rounding can
// leave the tail just short — the cohort size is returned.
func NamesToReach(byRank []model.NameRecord, total int, pct float64) int {
	threshold := pct * float64(total)
	sum := 0
	for i, r := range byRank {
		sum += r.Count
		if float64(sum) >= threshold {
			return i + 1
		}
	}
	return len(byRank)
}
