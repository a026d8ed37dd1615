package lingual

import (
	"sort"
	"strings"

	"github.com/okian/namepulse/internal/domain/model"
)

// DefaultSpecialChars are the diacritics tracked when no override is
// configured.
var DefaultSpecialChars = []string{"é", "á"}

// SpecialCharStats is the fraction of a cohort's distinct names containing a
// designated character, matched case-insensitively.
type SpecialCharStats struct {
	Decade string       `json:"decade"`
	Gender model.Gender `json:"gender"`
	Char   string       `json:"char"`
	Share  float64      `json:"share"`
}

// SpecialChars reports, per cohort and designated character, the fraction of
// names containing it. Output is ordered by timeline index, gender, then the
// character order given.
func SpecialChars(records []model.NameRecord, tl *model.Timeline, chars []string) []SpecialCharStats {
	if len(chars) == 0 {
		chars = DefaultSpecialChars
	}
	order := make(map[string]int, len(chars))
	lowered := make([]string, len(chars))
	for i, c := range chars {
		order[c] = i
		lowered[i] = strings.ToLower(c)
	}

	cohorts := model.GroupByCohort(records)

	var out []SpecialCharStats
	for key, members := range cohorts {
		if len(members) == 0 {
			continue
		}
		for i, c := range chars {
			hits := 0
			for _, r := range members {
				if strings.Contains(strings.ToLower(r.Name), lowered[i]) {
					hits++
				}
			}
			out = append(out, SpecialCharStats{
				Decade: key.Decade,
				Gender: key.Gender,
				Char:   c,
				Share:  float64(hits) / float64(len(members)),
			})
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
		return order[out[i].Char] < order[out[j].Char]
	})
	return out
}
