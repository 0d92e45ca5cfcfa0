// Package report renders the human readable summary printed after an
// enrichment run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/emi03-byte/MedAI/atc"
	"github.com/emi03-byte/MedAI/dataset"
	"github.com/emi03-byte/MedAI/disease"
	"github.com/emi03-byte/MedAI/enrich"
)

// maxSampleDiseases is how many codes of a sample record are spelled out.
const maxSampleDiseases = 3

// Sample is one example mapping shown in the summary.
type Sample struct {
	Name     string            `json:"name"`
	Code     string            `json:"code"`
	Diseases []disease.Disease `json:"diseases"`
	More     int               `json:"more"` // codes beyond the first maxSampleDiseases
}

// Summary is everything Write prints.
type Summary struct {
	enrich.Stats
	DiseaseTotal int      `json:"disease_total"`
	Samples      []Sample `json:"samples"`
}

// Columns names the dataset columns Build reads.
type Columns struct {
	Name   string
	Code   string
	Output string
}

// Build collects the summary for an enriched dataset. Samples are taken from
// the mapped records among the first sampleRows records.
func Build(ds *dataset.Dataset, stats enrich.Stats, catalog *disease.Catalog, cols Columns, sampleRows int) (Summary, error) {
	if err := ds.Require(cols.Name, cols.Code, cols.Output); err != nil {
		return Summary{}, fmt.Errorf("build report: %w", err)
	}
	nameCol, _ := ds.Column(cols.Name)
	codeCol, _ := ds.Column(cols.Code)
	outCol, _ := ds.Column(cols.Output)

	s := Summary{Stats: stats, DiseaseTotal: catalog.Len()}

	for i := 0; i < sampleRows && i < ds.Len(); i++ {
		codes, err := atc.ParseCodes(ds.Value(i, outCol))
		if err != nil {
			return Summary{}, fmt.Errorf("build report: row %d: %w", i+1, err)
		}
		if len(codes) == 0 {
			continue
		}

		sample := Sample{
			Name: ds.Value(i, nameCol),
			Code: ds.Value(i, codeCol),
		}
		shown := codes[:min(len(codes), maxSampleDiseases)]
		for _, d := range catalog.Label(shown) {
			if d.Name != "" {
				sample.Diseases = append(sample.Diseases, d)
			}
		}
		sample.More = len(codes) - len(shown)
		s.Samples = append(s.Samples, sample)
	}

	return s, nil
}

// Write prints s in the console format.
func Write(w io.Writer, s Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Total medications: %d\n", s.Total)
	fmt.Fprintf(&b, "Medications with diseases: %d (%.1f%%)\n", s.Mapped, s.Coverage())
	fmt.Fprintf(&b, "Medications without diseases: %d\n", s.Unmapped)
	fmt.Fprintf(&b, "Unique disease codes mapped: %d of %d\n", len(s.Codes), s.DiseaseTotal)

	if len(s.Samples) > 0 {
		b.WriteString("\n--- Sample mappings ---\n")
	}
	for _, sample := range s.Samples {
		labels := make([]string, len(sample.Diseases))
		for i, d := range sample.Diseases {
			labels[i] = fmt.Sprintf("%d:%s", d.Code, d.Name)
		}

		fmt.Fprintf(&b, "\n%s\n", sample.Name)
		fmt.Fprintf(&b, "  ATC code: %s\n", sample.Code)
		fmt.Fprintf(&b, "  Diseases: %s\n", strings.Join(labels, ", "))
		if sample.More > 0 {
			fmt.Fprintf(&b, "  ... and %d more\n", sample.More)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
