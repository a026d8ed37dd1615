package lingual

import (
	"sort"

	"github.com/okian/namepulse/internal/domain/model"
)

// UnisexName is a name ranked under both genders within the same decade,
// with both standings paired.
type UnisexName struct {
	Name      string `json:"name"`
	Decade    string `json:"decade"`
	BoyRank   int    `json:"boy_rank"`
	GirlRank  int    `json:"girl_rank"`
	BoyCount  int    `json:"boy_count"`
	GirlCount int    `json:"girl_count"`
}

// Unisex hash-joins each decade's boy and girl cohorts on name. Output is
// ordered by timeline index, then name.
func Unisex(records []model.NameRecord, tl *model.Timeline) []UnisexName {
	type decadeName struct {
		decade string
		name   string
	}
	boys := make(map[decadeName]model.NameRecord)
	girls := make(map[decadeName]model.NameRecord)
	for _, r := range records {
		k := decadeName{decade: r.Decade, name: r.Name}
		switch r.Gender {
		case model.Boy:
			boys[k] = r
		case model.Girl:
			girls[k] = r
		}
	}

	var out []UnisexName
	for k, b := range boys {
		g, ok := girls[k]
		if !ok {
			continue
		}
		out = append(out, UnisexName{
			Name:      k.name,
			Decade:    k.decade,
			BoyRank:   b.Rank,
			GirlRank:  g.Rank,
			BoyCount:  b.Count,
			GirlCount: g.Count,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		di, dj := tl.Index(out[i].Decade), tl.Index(out[j].Decade)
		if di != dj {
			return di < dj
		}
		return out[i].Name < out[j].Name
	})
	return out
}
