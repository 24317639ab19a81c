package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("dataset: missing column")

// Columns maps export headers to canonical field names. Other columns are dropped.
var Columns = map[string]string{
	"Company":      "company",
	"Job Position": "role",
	"Max. Salary":  "salary",
	"Location":     "locations",
	"Status":       "status",
	"Date saved":   "date_saved",
	"Date applied": "date_applied",
}

var required = []string{"company", "role", "status"}

var bom = []byte{0xEF, 0xBB, 0xBF}

// Row is one data row keyed by canonical field name.
type Row struct {
	// Line is the 1-based line the row starts on.
	Line   int
	Fields map[string]string
}

// Open reads a dataset file.
func Open(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a CSV export. The first record is the header. A leading UTF-8 byte
// order mark is ignored. Rows may have fewer or more fields than the header.
func Read(r io.Reader) ([]Row, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		if name, ok := Columns[strings.TrimSpace(h)]; ok {
			names[i] = name
			seen[name] = true
		}
	}
	for _, name := range required {
		if !seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := cr.FieldPos(0)
		fields := make(map[string]string, len(Columns))
		for i, v := range record {
			if i < len(names) && names[i] != "" {
				fields[names[i]] = v
			}
		}
		rows = append(rows, Row{Line: line, Fields: fields})
	}
	return rows, nil
}
