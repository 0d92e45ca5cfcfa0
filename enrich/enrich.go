// Package enrich adds the resolved disease codes column to a medication
// dataset.
package enrich

import (
	"fmt"
	"slices"

	"github.com/emi03-byte/MedAI/atc"
	"github.com/emi03-byte/MedAI/dataset"
)

// Stats summarizes one enrichment pass.
type Stats struct {
	Total    int   `json:"total"`
	Mapped   int   `json:"mapped"`
	Unmapped int   `json:"unmapped"`
	Codes    []int `json:"codes"` // distinct disease codes assigned, ascending
}

// Coverage returns the mapped share of records as a percentage.
func (s Stats) Coverage() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Mapped) * 100 / float64(s.Total)
}

// Enricher writes the resolution of codeColumn into outputColumn.
type Enricher struct {
	resolver     *atc.Resolver
	codeColumn   string
	outputColumn string
}

func New(resolver *atc.Resolver, codeColumn, outputColumn string) *Enricher {
	return &Enricher{
		resolver:     resolver,
		codeColumn:   codeColumn,
		outputColumn: outputColumn,
	}
}

// Apply replaces outputColumn in ds with freshly resolved codes. Any column of
// that name already present is dropped first, so applying twice gives the
// same result. Records whose code does not resolve get an empty cell.
func (e *Enricher) Apply(ds *dataset.Dataset) (Stats, error) {
	if err := ds.Require(e.codeColumn); err != nil {
		return Stats{}, fmt.Errorf("enrich: %w", err)
	}

	ds.DropColumn(e.outputColumn)
	col, _ := ds.Column(e.codeColumn)

	acc := newAccumulator()
	ds.AppendColumn(e.outputColumn, func(rec dataset.Record) string {
		code := ""
		if col < len(rec) {
			code = rec[col]
		}
		codes, ok := e.resolver.Resolve(code)
		acc.add(codes, ok)
		if !ok {
			return ""
		}
		return atc.FormatCodes(codes)
	})

	return acc.stats(), nil
}

// Collect recomputes Stats from an already enriched column.
func Collect(ds *dataset.Dataset, outputColumn string) (Stats, error) {
	if err := ds.Require(outputColumn); err != nil {
		return Stats{}, fmt.Errorf("collect: %w", err)
	}
	col, _ := ds.Column(outputColumn)

	acc := newAccumulator()
	for i := range ds.Records {
		codes, err := atc.ParseCodes(ds.Value(i, col))
		if err != nil {
			return Stats{}, fmt.Errorf("collect row %d: %w", i+1, err)
		}
		acc.add(codes, len(codes) > 0)
	}
	return acc.stats(), nil
}

type accumulator struct {
	total, mapped int
	seen          map[int]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{seen: make(map[int]struct{})}
}

func (a *accumulator) add(codes []int, ok bool) {
	a.total++
	if !ok {
		return
	}
	a.mapped++
	for _, c := range codes {
		a.seen[c] = struct{}{}
	}
}

func (a *accumulator) stats() Stats {
	codes := make([]int, 0, len(a.seen))
	for c := range a.seen {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return Stats{
		Total:    a.total,
		Mapped:   a.mapped,
		Unmapped: a.total - a.mapped,
		Codes:    codes,
	}
}

// Medication is one enriched record as served by the lookup service.
type Medication struct {
	Name         string `json:"name"`
	ATCCode      string `json:"atc_code"`
	DiseaseCodes []int  `json:"disease_codes"`
}

// Medications reads the enriched rows of ds. Rows without a mapping have no
// disease codes.
func Medications(ds *dataset.Dataset, nameColumn, codeColumn, outputColumn string) ([]Medication, error) {
	if err := ds.Require(nameColumn, codeColumn, outputColumn); err != nil {
		return nil, fmt.Errorf("medications: %w", err)
	}
	nameCol, _ := ds.Column(nameColumn)
	codeCol, _ := ds.Column(codeColumn)
	outCol, _ := ds.Column(outputColumn)

	meds := make([]Medication, ds.Len())
	for i := range ds.Records {
		codes, err := atc.ParseCodes(ds.Value(i, outCol))
		if err != nil {
			return nil, fmt.Errorf("medications row %d: %w", i+1, err)
		}
		meds[i] = Medication{
			Name:         ds.Value(i, nameCol),
			ATCCode:      ds.Value(i, codeCol),
			DiseaseCodes: codes,
		}
	}
	return meds, nil
}
