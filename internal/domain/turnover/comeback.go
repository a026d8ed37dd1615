package turnover

import (
	"sort"

	"github.com/okian/namepulse/internal/domain/model"
)

// Comeback records a name's return to the rankings after at least one full
// decade of absence.
type Comeback struct {
	Name           string       `json:"name"`
	Gender         model.Gender `json:"gender"`
	PreviousDecade string       `json:"previous_decade"`
	ComebackDecade string       `json:"comeback_decade"`
	GapDecades     int          `json:"gap_decades"`
	ComebackRank   int          `json:"comeback_rank"`
}

// Comebacks scans each (name, gender) trajectory in timeline order and emits
// one record per absence gap. The whole non-contiguous history is walked, not
// just adjacent cohort joins, since absence may span several decades and a
// single name can come back more than once. Output is sorted by gap length
// descending.
func Comebacks(records []model.NameRecord, tl *model.Timeline) []Comeback {
	trajectories := model.GroupByTrajectory(records)

	var out []Comeback
	for key, appearances := range trajectories {
		kept := make([]model.NameRecord, 0, len(appearances))
		for _, r := range appearances {
			if tl.Index(r.Decade) != model.NoDecade {
				kept = append(kept, r)
			}
		}
		sort.Slice(kept, func(i, j int) bool {
			return tl.Index(kept[i].Decade) < tl.Index(kept[j].Decade)
		})

		for i := 1; i < len(kept); i++ {
			gap := tl.Index(kept[i].Decade) - tl.Index(kept[i-1].Decade)
			if gap <= 1 {
				continue
			}
			out = append(out, Comeback{
				Name:           key.Name,
				Gender:         key.Gender,
				PreviousDecade: kept[i-1].Decade,
				ComebackDecade: kept[i].Decade,
				GapDecades:     gap - 1,
				ComebackRank:   kept[i].Rank,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].GapDecades != out[j].GapDecades {
			return out[i].GapDecades > out[j].GapDecades
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return tl.Index(out[i].ComebackDecade) < tl.Index(out[j].ComebackDecade)
	})
	return out
}
