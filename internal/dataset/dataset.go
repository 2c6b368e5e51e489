// Package dataset loads the country adjacency file and checks it for
// consistency. Each row is comma-separated: the first field names a
// country, the remaining fields list its neighbors.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads comma-separated adjacency rows. Rows may list any number
// of neighbors, blank rows are skipped, and repeated rows for the same
// country merge with earlier ones. Country names keep their internal
// spaces; only surrounding whitespace is trimmed.
func Parse(r io.Reader) (map[string][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	adjacency := make(map[string][]string)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read adjacency row: %w", err)
		}

		fields := make([]string, 0, len(record))
		for _, f := range record {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
		if len(fields) == 0 {
			continue
		}

		country := fields[0]
		if _, ok := adjacency[country]; !ok {
			adjacency[country] = []string{}
		}
		adjacency[country] = append(adjacency[country], fields[1:]...)
	}

	if len(adjacency) == 0 {
		return nil, errors.New("dataset has no rows")
	}
	return adjacency, nil
}

// Load reads the adjacency file at path.
func Load(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	adjacency, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return adjacency, nil
}
