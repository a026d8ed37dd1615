package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/okian/namepulse/internal/report"
)

// JSON writes the report as indented JSON. Shares stay as fractions in
// [0,1]; consumers decide their own presentation.
func JSON(w io.Writer, rep *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
