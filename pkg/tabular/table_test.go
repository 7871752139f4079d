package tabular

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromRecordsColumnOrder(t *testing.T) {
	tbl := FromRecords([]map[string]any{
		{"date": "2024-01-01", "value": 5},
		{"date": "2024-01-02", "value": 7, "note": "peak"},
	})
	if diff := cmp.Diff([]string{"date", "value", "note"}, tbl.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if got := tbl.Rows[0][2]; got != nil {
		t.Errorf("missing field should be nil cell, got %v", got)
	}
}

func TestFromRecordsDeterministicOrder(t *testing.T) {
	records := []map[string]any{
		{"gamma": 1, "alpha": 2, "beta": 3},
	}
	want := FromRecords(records).Columns
	if diff := cmp.Diff([]string{"alpha", "beta", "gamma"}, want); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(want, FromRecords(records).Columns); diff != "" {
			t.Fatalf("column order varies between calls (-first +now):\n%s", diff)
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	tbl := &Table{
		Columns: []string{"city", "pop"},
		Rows: [][]any{
			{"Berlin", 3.7},
			{"Köln, Nord", 1.1},
		},
	}
	b, err := tbl.CSV()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(string(b))
	if err != nil {
		t.Fatal(err)
	}
	want := &Table{
		Columns: []string{"city", "pop"},
		Rows: [][]any{
			{"Berlin", "3.7"},
			{"Köln, Nord", "1.1"},
		},
	}
	if diff := cmp.Diff(want, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStripsByteOrderMark(t *testing.T) {
	tbl, err := Parse("\ufeffa,b\n1,2\n")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tbl.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDetectsTabs(t *testing.T) {
	tbl, err := Parse("a\tb\n1\t2\n")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, tbl.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if tbl.Rows[0][1] != "2" {
		t.Errorf("cell = %v", tbl.Rows[0][1])
	}
}

func TestParseRaggedRows(t *testing.T) {
	tbl, err := Parse("a,b,c\n1,2\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(tbl.Rows[0]) != 3 || tbl.Rows[0][2] != "" {
		t.Errorf("short row should pad with empty cells: %v", tbl.Rows[0])
	}
}

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"", "  \n "} {
		tbl, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if !tbl.Empty() {
			t.Errorf("Parse(%q) should be empty", text)
		}
	}
}

func TestRecords(t *testing.T) {
	tbl := &Table{
		Columns: []string{"k", "v"},
		Rows:    [][]any{{"x", "1"}, {"y", "2"}},
	}
	want := []map[string]any{
		{"k": "x", "v": "1"},
		{"k": "y", "v": "2"},
	}
	if diff := cmp.Diff(want, tbl.Records()); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyNilSafe(t *testing.T) {
	var tbl *Table
	if !tbl.Empty() {
		t.Error("nil table should be empty")
	}
}
