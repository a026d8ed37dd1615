// Package render turns a computed report into output formats. All renderers
// consume the report read-only.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/okian/namepulse/internal/domain/movement"
	"github.com/okian/namepulse/internal/report"
)

const pct = 100 // shares are stored in [0,1]; render as percentages

// Markdown writes the full report as a markdown document.
func Markdown(w io.Writer, rep *report.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Name cohort report\n\n")
	fmt.Fprintf(&b, "Generated %s (id %s)\n\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 MST"), rep.ID)
	fmt.Fprintf(&b, "- Decades: %s\n", strings.Join(rep.Decades, ", "))
	fmt.Fprintf(&b, "- Records: %d\n", rep.TotalRecords)
	fmt.Fprintf(&b, "- Distinct names: %d\n\n", rep.DistinctNames)

	b.WriteString("## Concentration and diversity\n\n")
	b.WriteString("| Decade | Gender | Births | Names | Top1 | Top5 | Top10 | To 50% | To 90% | HHI | Effective | Entropy |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|---|---|---|\n")
	for _, c := range rep.Cohorts {
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %.1f%% | %.1f%% | %.1f%% | %d | %d | %.4f | %.1f | %.3f |\n",
			c.Decade, c.Gender, c.TotalBirths, c.DistinctNames,
			c.Top1Share*pct, c.Top5Share*pct, c.Top10Share*pct,
			c.NamesToHalf, c.NamesToBulk, c.HHI, c.EffectiveNames, c.Entropy)
	}
	b.WriteString("\n")

	b.WriteString("## Climbers\n\n")
	writeChanges(&b, rep.Climbers)
	b.WriteString("## Fallers\n\n")
	writeChanges(&b, rep.Fallers)

	b.WriteString("## Comebacks\n\n")
	b.WriteString("| Name | Gender | Last seen | Returned | Gap | Rank at return |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, c := range rep.Comebacks {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %d |\n",
			c.Name, c.Gender, c.PreviousDecade, c.ComebackDecade, c.GapDecades, c.ComebackRank)
	}
	b.WriteString("\n")

	b.WriteString("## Churn\n\n")
	b.WriteString("| From | To | Gender | New | Exited | Churn | Jaccard |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, c := range rep.Churn {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %d | %.1f%% | %.3f |\n",
			c.FromDecade, c.ToDecade, c.Gender, c.NewNames, c.ExitedNames, c.ChurnRate*pct, c.Jaccard)
	}
	b.WriteString("\n")

	b.WriteString("## Evergreen names\n\n")
	b.WriteString("| Name | Gender | Decades | Avg rank | Total count |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, e := range rep.Evergreen {
		fmt.Fprintf(&b, "| %s | %s | %d | %.1f | %d |\n",
			e.Name, e.Gender, e.DecadesPresent, e.AvgRank, e.TotalCount)
	}
	b.WriteString("\n")

	b.WriteString("## Unisex names\n\n")
	b.WriteString("| Name | Decade | Boy rank | Girl rank | Boy count | Girl count |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, u := range rep.Unisex {
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %d |\n",
			u.Name, u.Decade, u.BoyRank, u.GirlRank, u.BoyCount, u.GirlCount)
	}
	b.WriteString("\n")

	b.WriteString("## Name lengths\n\n")
	b.WriteString("| Decade | Gender | Avg | Min | Max |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, l := range rep.Lengths {
		fmt.Fprintf(&b, "| %s | %s | %.2f | %d | %d |\n",
			l.Decade, l.Gender, l.AvgLength, l.MinLength, l.MaxLength)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

func writeChanges(b *strings.Builder, changes []movement.Change) {
	b.WriteString("| Name | Gender | From | To | Rank | Change |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, c := range changes {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %d to %d | %+d |\n",
			c.Name, c.Gender, c.FromDecade, c.ToDecade, c.FromRank, c.ToRank, c.Change)
	}
	b.WriteString("\n")
}
