package turnover

import (
	"sort"

	"github.com/okian/namepulse/internal/domain/model"
)

// Churn compares the distinct-name sets of two consecutive cohorts.
// ChurnRate and Jaccard are fractions in [0,1].
type Churn struct {
	FromDecade  string       `json:"from_decade"`
	ToDecade    string       `json:"to_decade"`
	Gender      model.Gender `json:"gender"`
	NewNames    int          `json:"new_names"`
	ExitedNames int          `json:"exited_names"`
	ChurnRate   float64      `json:"churn_rate"`
	Jaccard     float64      `json:"jaccard"`
}

// ChurnRates computes set-similarity metrics for every consecutive decade
// pair and gender. Empty sides degrade to zero rates rather than dividing by
// zero. Output is ordered by timeline index, then gender.
func ChurnRates(records []model.NameRecord, tl *model.Timeline) []Churn {
	cohorts := model.GroupByCohort(records)

	var out []Churn
	for _, pair := range tl.ConsecutivePairs() {
		for _, g := range model.Genders() {
			from := nameSet(cohorts[model.CohortKey{Decade: pair.From, Gender: g}])
			to := nameSet(cohorts[model.CohortKey{Decade: pair.To, Gender: g}])

			c := Churn{FromDecade: pair.From, ToDecade: pair.To, Gender: g}
			shared := 0
			for name := range to {
				if _, ok := from[name]; ok {
					shared++
				} else {
					c.NewNames++
				}
			}
			for name := range from {
				if _, ok := to[name]; !ok {
					c.ExitedNames++
				}
			}

			if len(to) > 0 {
				c.ChurnRate = float64(c.NewNames) / float64(len(to))
			}
			if union := len(from) + len(to) - shared; union > 0 {
				c.Jaccard = float64(shared) / float64(union)
			}
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		di, dj := tl.Index(out[i].ToDecade), tl.Index(out[j].ToDecade)
		if di != dj {
			return di < dj
		}
		return out[i].Gender < out[j].Gender
	})
	return out
}
