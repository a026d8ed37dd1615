// Package ingest loads ranked-record snapshots from CSV files into a store.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/okian/namepulse/internal/domain/model"
)

// Expected CSV layout: a header row, then decade,gender,rank,name,count.
const expectedFields = 5

var header = []string{"decade", "gender", "rank", "name", "count"}

// LoadFile reads a snapshot CSV from disk.
func LoadFile(path string) ([]model.NameRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads snapshot records from r. Only shape is validated — field
// count, integer parsing, and the gender enumeration. Cohort invariants
// (unique ranks and so on) are trusted, matching the engine's contract that
// malformed data is the producer's defect.
func Parse(r io.Reader) ([]model.NameRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = expectedFields

	first, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptySnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !isHeader(first) {
		return nil, fmt.Errorf("%w: got %v", ErrMissingHeader, first)
	}

	var out []model.NameRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseRow(row []string) (model.NameRecord, error) {
	gender := model.Gender(strings.ToLower(strings.TrimSpace(row[1])))
	if !gender.Valid() {
		return model.NameRecord{}, fmt.Errorf("%w: %q", ErrUnknownGender, row[1])
	}

	rank, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return model.NameRecord{}, fmt.Errorf("parsing rank %q: %w", row[2], err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil {
		return model.NameRecord{}, fmt.Errorf("parsing count %q: %w", row[4], err)
	}

	return model.NameRecord{
		Decade: strings.TrimSpace(row[0]),
		Gender: gender,
		Rank:   rank,
		Name:   strings.TrimSpace(row[3]),
		Count:  count,
	}, nil
}

func isHeader(row []string) bool {
	if len(row) != len(header) {
		return false
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(row[i]), h) {
			return false
		}
	}
	return true
}
