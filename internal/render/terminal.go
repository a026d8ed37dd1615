package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/okian/namepulse/internal/report"
)

// How many rows of each highlight list the summary shows.
const summaryRows = 5

// Summary writes a short colored digest of the report for terminal use.
func Summary(w io.Writer, rep *report.Report) error {
	title := color.New(color.FgCyan, color.Bold).FprintfFunc()
	label := color.New(color.FgYellow).FprintfFunc()
	up := color.New(color.FgGreen).FprintfFunc()
	down := color.New(color.FgRed).FprintfFunc()

	title(w, "namepulse report %s\n", rep.ID)
	fmt.Fprintf(w, "decades %d, records %d, distinct names %d\n\n",
		len(rep.Decades), rep.TotalRecords, rep.DistinctNames)

	label(w, "Top climbers\n")
	for i, c := range rep.Climbers {
		if i == summaryRows {
			break
		}
		up(w, "  %s (%s) %s: %d to %d (%+d)\n",
			c.Name, c.Gender, c.ToDecade, c.FromRank, c.ToRank, c.Change)
	}

	label(w, "Top fallers\n")
	for i, c := range rep.Fallers {
		if i == summaryRows {
			break
		}
		down(w, "  %s (%s) %s: %d to %d (%+d)\n",
			c.Name, c.Gender, c.ToDecade, c.FromRank, c.ToRank, c.Change)
	}

	label(w, "Longest comebacks\n")
	for i, c := range rep.Comebacks {
		if i == summaryRows {
			break
		}
		fmt.Fprintf(w, "  %s (%s) returned in %s after %d decades away, at rank %d\n",
			c.Name, c.Gender, c.ComebackDecade, c.GapDecades, c.ComebackRank)
	}

	label(w, "Evergreen\n")
	for i, e := range rep.Evergreen {
		if i == summaryRows {
			break
		}
		fmt.Fprintf(w, "  %s (%s): %d decades, avg rank %.1f\n",
			e.Name, e.Gender, e.DecadesPresent, e.AvgRank)
	}
	return nil
}
