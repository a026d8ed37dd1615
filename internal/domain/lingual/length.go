package lingual

import (
	"sort"
	"unicode/utf8"

	"github.com/okian/namepulse/internal/domain/model"
)

// LengthStats summarizes name lengths (in runes, not bytes) for one cohort.
// The average is unweighted: each distinct name counts once regardless of
// its birth count.
type LengthStats struct {
	Decade    string       `json:"decade"`
	Gender    model.Gender `json:"gender"`
	AvgLength float64      `json:"avg_length"`
	MinLength int          `json:"min_length"`
	MaxLength int          `json:"max_length"`
}

// Lengths computes per-cohort length statistics. Output is ordered by
// timeline index, then gender.
func Lengths(records []model.NameRecord, tl *model.Timeline) []LengthStats {
	cohorts := model.GroupByCohort(records)

	var out []LengthStats
	for key, members := range cohorts {
		if len(members) == 0 {
			continue
		}
		s := LengthStats{Decade: key.Decade, Gender: key.Gender}
		sum := 0
		for i, r := range members {
			n := utf8.RuneCountInString(r.Name)
			sum += n
			if i == 0 || n < s.MinLength {
				s.MinLength = n
			}
			if n > s.MaxLength {
				s.MaxLength = n
			}
		}
		s.AvgLength = float64(sum) / float64(len(members))
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
