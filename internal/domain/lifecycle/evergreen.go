package lifecycle

import (
	"sort"

	"github.com/okian/namepulse/internal/domain/model"
)

// DefaultEvergreenMinDecades is the longevity threshold for a name to count
// as evergreen.
const DefaultEvergreenMinDecades = 10

// Evergreen is a long-lived name: ranked in at least minDecades distinct
// decades.
type Evergreen struct {
	Name           string       `json:"name"`
	Gender         model.Gender `json:"gender"`
	DecadesPresent int          `json:"decades_present"`
	AvgRank        float64      `json:"avg_rank"`
	TotalCount     int          `json:"total_count"`
}

// EvergreenNames filters lifecycles down to those with longevity of at least
// minDecades, sorted by decades present descending, then average rank
// ascending.
func EvergreenNames(lifecycles []Lifecycle, minDecades int) []Evergreen {
	if minDecades <= 0 {
		minDecades = DefaultEvergreenMinDecades
	}

	out := make([]Evergreen, 0)
	for _, lc := range lifecycles {
		if lc.Longevity < minDecades {
			continue
		}
		out = append(out, Evergreen{
			Name:           lc.Name,
			Gender:         lc.Gender,
			DecadesPresent: lc.Longevity,
			AvgRank:        lc.AvgRank,
			TotalCount:     lc.TotalCount,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].DecadesPresent != out[j].DecadesPresent {
			return out[i].DecadesPresent > out[j].DecadesPresent
		}
		return out[i].AvgRank < out[j].AvgRank
	})
	return out
}
