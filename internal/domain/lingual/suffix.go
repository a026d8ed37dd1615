package lingual

import (
	"sort"
	"strings"

	"github.com/okian/namepulse/internal/domain/model"
)

// OtherSuffix is the catch-all bucket for names matching no pattern.
const OtherSuffix = "other"

// DefaultSuffixPatterns is the ordered match list. Longer patterns come
// before their single-letter prefixes so "ie" is not swallowed by "e".
// First match wins; anything left falls into OtherSuffix.
var DefaultSuffixPatterns = []string{"ie", "ah", "a", "e", "y", "n", "o"}

// SuffixStats is the weight of one suffix class within a cohort.
type SuffixStats struct {
	Decade string       `json:"decade"`
	Gender model.Gender `json:"gender"`
	Suffix string       `json:"suffix"`
	Names  int          `json:"names"`
	Share  float64      `json:"share"`
}

// Suffixes classifies each cohort's names into the ordered pattern list,
// case-insensitively, with a final "other" bucket. Cohorts with zero total
// births are skipped. Output is ordered by timeline index, gender, then
// pattern order.
func Suffixes(records []model.NameRecord, tl *model.Timeline, patterns []string) []SuffixStats {
	if len(patterns) == 0 {
		patterns = DefaultSuffixPatterns
	}
	order := make(map[string]int, len(patterns)+1)
	for i, p := range patterns {
		order[p] = i
	}
	order[OtherSuffix] = len(patterns)

	cohorts := model.GroupByCohort(records)

	var out []SuffixStats
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
			s := classify(r.Name, patterns)
			names[s]++
			births[s] += r.Count
		}

		for s, n := range names {
			out = append(out, SuffixStats{
				Decade: key.Decade,
				Gender: key.Gender,
				Suffix: s,
				Names:  n,
				Share:  float64(births[s]) / float64(total),
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
		return order[out[i].Suffix] < order[out[j].Suffix]
	})
	return out
}

func classify(name string, patterns []string) string {
	lower := strings.ToLower(name)
	for _, p := range patterns {
		if strings.HasSuffix(lower, p) {
			return p
		}
	}
	return OtherSuffix
}
