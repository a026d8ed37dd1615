// Package movement tracks rank deltas between chronologically consecutive
// decades and surfaces the strongest climbers and fallers.
package movement

import (
	"sort"

	"github.com/okian/namepulse/internal/domain/model"
)

// DefaultListSize caps the climber and faller lists.
const DefaultListSize = 20

// Change is one name's rank delta across a consecutive decade pair.
// Change > 0 means the name climbed (numerically smaller rank).
type Change struct {
	Name       string       `json:"name"`
	Gender     model.Gender `json:"gender"`
	FromDecade string       `json:"from_decade"`
	ToDecade   string       `json:"to_decade"`
	FromRank   int          `json:"from_rank"`
	ToRank     int          `json:"to_rank"`
	Change     int          `json:"change"`
}

// Movement holds the pooled extremes across all decade pairs.
type Movement struct {
	// Climbers is sorted by change descending; Fallers by severity of the
	// decline, worst first.
	Climbers []Change `json:"climbers"`
	Fallers  []Change `json:"fallers"`
}

// Analyze hash-joins every consecutive decade pair on (name, gender) and
// pools the deltas. Names missing from either side of a pair are excluded;
// absence gaps are never interpolated. listSize bounds both output lists.
func Analyze(records []model.NameRecord, tl *model.Timeline, listSize int) Movement {
	if listSize <= 0 {
		listSize = DefaultListSize
	}

	ranks := rankIndex(records)

	var pooled []Change
	for _, pair := range tl.ConsecutivePairs() {
		for _, g := range model.Genders() {
			from := ranks[model.CohortKey{Decade: pair.From, Gender: g}]
			to := ranks[model.CohortKey{Decade: pair.To, Gender: g}]
			for name, toRank := range to {
				fromRank, ok := from[name]
				if !ok {
					continue
				}
				pooled = append(pooled, Change{
					Name:       name,
					Gender:     g,
					FromDecade: pair.From,
					ToDecade:   pair.To,
					FromRank:   fromRank,
					ToRank:     toRank,
					Change:     fromRank - toRank,
				})
			}
		}
	}

	sort.Slice(pooled, func(i, j int) bool {
		if pooled[i].Change != pooled[j].Change {
			return pooled[i].Change > pooled[j].Change
		}
		if pooled[i].Name != pooled[j].Name {
			return pooled[i].Name < pooled[j].Name
		}
		return tl.Index(pooled[i].ToDecade) < tl.Index(pooled[j].ToDecade)
	})

	m := Movement{}
	if len(pooled) == 0 {
		return m
	}

	nc := listSize
	if nc > len(pooled) {
		nc = len(pooled)
	}
	m.Climbers = append(m.Climbers, pooled[:nc]...)

	// Last listSize entries, reversed so the most severe decline comes first.
	start := len(pooled) - listSize
	if start < 0 {
		start = 0
	}
	for i := len(pooled) - 1; i >= start; i-- {
		m.Fallers = append(m.Fallers, pooled[i])
	}
	return m
}

// rankIndex maps each cohort to its name -> rank lookup table.
func rankIndex(records []model.NameRecord) map[model.CohortKey]map[string]int {
	out := make(map[model.CohortKey]map[string]int)
	for _, r := range records {
		k := model.CohortKey{Decade: r.Decade, Gender: r.Gender}
		if out[k] == nil {
			out[k] = make(map[string]int)
		}
		out[k][r.Name] = r.Rank
	}
	return out
}
