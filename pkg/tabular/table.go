// Package tabular holds the row/column table type charts upload to and
// download from the Datawrapper API as CSV.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Table is an ordered set of named columns with row-major values.
type Table struct {
	Columns []string
	Rows    [][]any
}

// FromRecords builds a Table from a list of field-named records. Columns
// appear in the order of the record that introduces them, alphabetical
// within each record; missing fields are empty cells.
func FromRecords(records []map[string]any) *Table {
	t := &Table{}
	seen := map[string]int{}
	for _, rec := range records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, ok := seen[k]; !ok {
				seen[k] = len(t.Columns)
				t.Columns = append(t.Columns, k)
			}
		}
	}
	// Two passes so late-appearing columns still get a stable slot.
	for _, rec := range records {
		row := make([]any, len(t.Columns))
		for k, v := range rec {
			row[seen[k]] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// CSV renders the table as UTF-8 CSV with a header row.
func (t *Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = formatCell(v)
		}
		if err := w.Write(cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}

// Parse reads CSV text returned by the API, auto-detecting comma vs tab
// delimiting from the header line. Numeric-looking cells stay strings;
// the chart models do not reinterpret data values.
func Parse(text string) (*Table, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	if strings.TrimSpace(text) == "" {
		return &Table{}, nil
	}
	header := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		header = text[:i]
	}
	r := csv.NewReader(strings.NewReader(text))
	if strings.Count(header, "\t") > strings.Count(header, ",") {
		r.Comma = '\t'
	}
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	t := &Table{Columns: records[0]}
	for _, rec := range records[1:] {
		row := make([]any, len(t.Columns))
		for j := range t.Columns {
			if j < len(rec) {
				row[j] = rec[j]
			} else {
				row[j] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Records converts the table back to field-named records.
func (t *Table) Records() []map[string]any {
	out := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for j, col := range t.Columns {
			if j < len(row) {
				rec[col] = row[j]
			}
		}
		out = append(out, rec)
	}
	return out
}
