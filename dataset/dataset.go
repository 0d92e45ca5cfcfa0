// Package dataset holds flat tabular data as a header plus string records, with
// the few column operations the enrichment needs.
package dataset

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Record is one row, aligned with Dataset.Columns. Rows may be shorter than
// the header; missing cells read as empty.
type Record []string

// Dataset is a header and its records.
type Dataset struct {
	Columns []string
	Records []Record
}

// ExtraFieldsError reports a record with more cells than the header.
type ExtraFieldsError struct {
	Row      int // 1-based, header excluded
	Expected int
	Got      int
}

func (e *ExtraFieldsError) Error() string {
	return fmt.Sprintf("row %d: expected %d fields, saw %d", e.Row, e.Expected, e.Got)
}

// MissingColumnError reports required columns absent from a dataset.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// New returns an empty dataset with the given header. Header text is kept as
// given and written back unchanged.
func New(columns ...string) *Dataset {
	return &Dataset{Columns: append([]string(nil), columns...)}
}

// Len returns the number of records.
func (ds *Dataset) Len() int {
	return len(ds.Records)
}

// Column returns the index of the named column. Names are compared trimmed and
// in Unicode NFC form so composed and decomposed diacritics match.
func (ds *Dataset) Column(name string) (int, bool) {
	name = normalizeHeader(name)
	for i, c := range ds.Columns {
		if normalizeHeader(c) == name {
			return i, true
		}
	}
	return -1, false
}

// Require checks that every named column exists.
func (ds *Dataset) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := ds.Column(n); !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{Columns: missing}
	}
	return nil
}

// Value returns the cell at row for column index col, or "" when the record is
// too short.
func (ds *Dataset) Value(row, col int) string {
	rec := ds.Records[row]
	if col < 0 || col >= len(rec) {
		return ""
	}
	return rec[col]
}

// Get returns the cell of rec in the named column.
func (ds *Dataset) Get(rec Record, name string) string {
	col, ok := ds.Column(name)
	if !ok || col >= len(rec) {
		return ""
	}
	return rec[col]
}

// DropColumn removes the named column from the header and every record. It
// reports whether the column existed; a missing column is not an error.
func (ds *Dataset) DropColumn(name string) bool {
	col, ok := ds.Column(name)
	if !ok {
		return false
	}

	ds.Columns = append(ds.Columns[:col:col], ds.Columns[col+1:]...)
	for i, rec := range ds.Records {
		if col < len(rec) {
			ds.Records[i] = append(rec[:col:col], rec[col+1:]...)
		}
	}
	return true
}

// AppendColumn adds a column at the end, computing its value from each record.
// Short records are padded so the new cell lands under its header.
func (ds *Dataset) AppendColumn(name string, fn func(Record) string) {
	width := len(ds.Columns)
	ds.Columns = append(ds.Columns, name)

	for i, rec := range ds.Records {
		value := fn(rec)
		if len(rec) < width {
			padded := make(Record, width, width+1)
			copy(padded, rec)
			rec = padded
		}
		ds.Records[i] = append(rec[:width:width], value)
	}
}

// Clone returns a deep copy.
func (ds *Dataset) Clone() *Dataset {
	out := &Dataset{
		Columns: append([]string(nil), ds.Columns...),
		Records: make([]Record, len(ds.Records)),
	}
	for i, rec := range ds.Records {
		out.Records[i] = append(Record(nil), rec...)
	}
	return out
}

func normalizeHeader(h string) string {
	return norm.NFC.String(strings.TrimSpace(h))
}
