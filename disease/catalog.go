// Package disease loads the disease reference table used to label resolved
// disease codes.
package disease

import (
	"slices"
	"strconv"
	"strings"

	"github.com/emi03-byte/MedAI/dataset"
	"github.com/emi03-byte/MedAI/logging"
)

// Disease is one reference entry.
type Disease struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// Catalog maps disease codes to names.
type Catalog struct {
	names map[int]string
	codes []int
}

// NewCatalog builds a catalog from entries. The first entry of a duplicated
// code wins.
func NewCatalog(entries ...Disease) *Catalog {
	c := &Catalog{names: make(map[int]string, len(entries))}
	for _, d := range entries {
		if _, seen := c.names[d.Code]; seen {
			continue
		}
		c.names[d.Code] = d.Name
	}
	c.codes = make([]int, 0, len(c.names))
	for code := range c.names {
		c.codes = append(c.codes, code)
	}
	slices.Sort(c.codes)
	return c
}

// FromDataset reads a catalog from the id and name columns of ds. Rows whose
// id is not an integer are skipped.
func FromDataset(ds *dataset.Dataset, idColumn, nameColumn string) (*Catalog, error) {
	if err := ds.Require(idColumn, nameColumn); err != nil {
		return nil, err
	}
	idCol, _ := ds.Column(idColumn)
	nameCol, _ := ds.Column(nameColumn)

	entries := make([]Disease, 0, ds.Len())
	skippedEmpty := 0
	skippedFormat := 0

	for i := range ds.Records {
		raw := strings.TrimSpace(ds.Value(i, idCol))
		if raw == "" {
			skippedEmpty++
			continue
		}
		code, err := strconv.Atoi(raw)
		if err != nil {
			skippedFormat++
			continue
		}
		entries = append(entries, Disease{
			Code: code,
			Name: strings.TrimSpace(ds.Value(i, nameCol)),
		})
	}

	if skippedEmpty > 0 || skippedFormat > 0 {
		logging.Info("Disease reference skip statistics",
			"empty_ids", skippedEmpty,
			"format_errors", skippedFormat,
			"total_rows", ds.Len(),
			"records_parsed", len(entries))
	}

	return NewCatalog(entries...), nil
}

// Name returns the name of code.
func (c *Catalog) Name(code int) (string, bool) {
	name, ok := c.names[code]
	return name, ok
}

// Len returns the number of distinct codes.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Codes returns every code in ascending order.
func (c *Catalog) Codes() []int {
	return slices.Clone(c.codes)
}

// Label returns the diseases for codes, keeping the order of codes. Codes
// missing from the catalog get an empty name.
func (c *Catalog) Label(codes []int) []Disease {
	out := make([]Disease, len(codes))
	for i, code := range codes {
		out[i] = Disease{Code: code, Name: c.names[code]}
	}
	return out
}
