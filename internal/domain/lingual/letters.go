// Package lingual derives orthographic statistics from cohorts: initials,
// suffix classes, name lengths, diacritics, and cross-gender overlap.
package lingual

import (
	"sort"
	"unicode"

	"github.com/okian/namepulse/internal/domain/model"
)

// LetterStats is the weight of one initial letter within a cohort: how many
// distinct names start with it and what fraction of the cohort's births they
// carry.
type LetterStats struct {
	Decade string       `json:"decade"`
	Gender model.Gender `json:"gender"`
	Letter string       `json:"letter"`
	Names  int          `json:"names"`
	Share  float64      `json:"share"`
}

// Letters groups each cohort's names by upper-cased first rune. Cohorts with
// zero total births are skipped. Output is ordered by timeline index, gender,
// then letter.
func Letters(records []model.NameRecord, tl *model.Timeline) []LetterStats {
	cohorts := model.GroupByCohort(records)

	var out []LetterStats
	for key, members := range cohorts {
		total := 0
		for _, r := range members {
			total += r.Count
		}
		if total == 0 {
			continue
		}

		names := make(map[string]int)
		births := make(map[string]int)
		for _, r := range members {
			l := firstLetter(r.Name)
			if l == "" {
				continue
			}
			names[l]++
			births[l] += r.Count
		}

		for l, n := range names {
			out = append(out, LetterStats{
				Decade: key.Decade,
				Gender: key.Gender,
				Letter: l,
				Names:  n,
				Share:  float64(births[l]) / float64(total),
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
		return out[i].Letter < out[j].Letter
	})
	return out
}

func firstLetter(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return ""
}
