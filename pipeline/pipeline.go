// Package pipeline runs one enrichment: read the medication and disease
// tables, resolve every ATC code, and write the enriched table back out.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emi03-byte/MedAI/atc"
	"github.com/emi03-byte/MedAI/config"
	"github.com/emi03-byte/MedAI/dataset"
	"github.com/emi03-byte/MedAI/disease"
	"github.com/emi03-byte/MedAI/enrich"
	"github.com/emi03-byte/MedAI/interfaces"
	"github.com/emi03-byte/MedAI/logging"
	"github.com/emi03-byte/MedAI/metrics"
	"github.com/emi03-byte/MedAI/report"
	"github.com/emi03-byte/MedAI/validation"
	"github.com/google/uuid"
)

// Compile-time check to ensure Pipeline implements Pipeline interface
var _ interfaces.Pipeline = (*Pipeline)(nil)

// Result is the outcome of a successful run.
type Result struct {
	RunID    string
	Dataset  *dataset.Dataset
	Catalog  *disease.Catalog
	Stats    enrich.Stats
	Quality  *interfaces.DataQualityReport
	Duration time.Duration
}

type Pipeline struct {
	cfg       *config.Config
	resolver  *atc.Resolver
	validator interfaces.DataValidator
	now       func() time.Time
}

func New(cfg *config.Config, resolver *atc.Resolver) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		resolver:  resolver,
		validator: validation.NewDataValidator(),
		now:       time.Now,
	}
}

// Run performs one enrichment. Any read or write failure aborts the run; the
// output file is replaced atomically, so a failed run leaves it untouched.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := p.now()
	runID := uuid.NewString()
	log := logging.With("run_id", runID)

	log.Info("Starting enrichment run",
		"medications", p.cfg.MedicationsCSV,
		"diseases", p.cfg.DiseasesCSV,
		"output", p.cfg.OutputCSV)

	opts := dataset.ReadOptions{Encoding: p.cfg.InputEncoding}

	meds, err := dataset.ReadFile(p.cfg.MedicationsCSV, opts)
	if err != nil {
		return nil, fmt.Errorf("read medications: %w", err)
	}
	log.Info("Medications loaded", "rows", meds.Len(), "columns", meds.Columns)
	if err := meds.Require(p.cfg.ATCColumn, p.cfg.NameColumn); err != nil {
		return nil, fmt.Errorf("medications: %w", err)
	}

	diseases, err := dataset.ReadFile(p.cfg.DiseasesCSV, opts)
	if err != nil {
		return nil, fmt.Errorf("read diseases: %w", err)
	}
	catalog, err := disease.FromDataset(diseases, p.cfg.DiseaseIDColumn, p.cfg.DiseaseNameColumn)
	if err != nil {
		return nil, fmt.Errorf("load disease reference: %w", err)
	}
	log.Info("Disease reference loaded", "rows", diseases.Len(), "diseases", catalog.Len())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	quality := p.validator.ReportDataQuality(meds, p.cfg.ATCColumn, p.cfg.NameColumn)
	logQuality(log, quality)

	if _, exists := meds.Column(p.cfg.OutputColumn); exists {
		log.Info("Dropping existing output column for regeneration", "column", p.cfg.OutputColumn)
	}
	stats, err := enrich.New(p.resolver, p.cfg.ATCColumn, p.cfg.OutputColumn).Apply(meds)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := meds.WriteFile(p.cfg.OutputCSV); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	duration := p.now().Sub(start)
	metrics.ObserveRun(stats.Mapped, stats.Unmapped, len(stats.Codes), duration, p.now())
	if err := metrics.WriteTextfile(p.cfg.MetricsTextfile); err != nil {
		log.Warn("Failed to write metrics textfile", "error", err)
	}

	log.Info("Enrichment run completed",
		"duration", duration.String(),
		"total", stats.Total,
		"mapped", stats.Mapped,
		"unmapped", stats.Unmapped,
		"unique_codes", len(stats.Codes))

	return &Result{
		RunID:    runID,
		Dataset:  meds,
		Catalog:  catalog,
		Stats:    stats,
		Quality:  quality,
		Duration: duration,
	}, nil
}

// Refresh runs the pipeline and converts the result into a publishable
// snapshot for the lookup service.
func (p *Pipeline) Refresh(ctx context.Context) (*interfaces.Snapshot, error) {
	res, err := p.Run(ctx)
	if err != nil {
		return nil, err
	}

	medications, err := enrich.Medications(res.Dataset, p.cfg.NameColumn, p.cfg.ATCColumn, p.cfg.OutputColumn)
	if err != nil {
		return nil, err
	}

	return &interfaces.Snapshot{
		RunID:       res.RunID,
		Medications: medications,
		Catalog:     res.Catalog,
		Stats:       res.Stats,
		Quality:     res.Quality,
	}, nil
}

// Summarize builds the console summary for res.
func (p *Pipeline) Summarize(res *Result) (report.Summary, error) {
	cols := report.Columns{
		Name:   p.cfg.NameColumn,
		Code:   p.cfg.ATCColumn,
		Output: p.cfg.OutputColumn,
	}
	return report.Build(res.Dataset, res.Stats, res.Catalog, cols, p.cfg.SampleRows)
}

func logQuality(log *slog.Logger, q *interfaces.DataQualityReport) {
	if q.RowsWithoutCode > 0 {
		log.Warn("Medications without ATC code", "count", q.RowsWithoutCode)
	}
	if q.RowsWithoutName > 0 {
		log.Warn("Medications without name", "count", q.RowsWithoutName)
	}
	if q.MalformedCodes > 0 {
		log.Warn("Malformed ATC codes",
			"count", q.MalformedCodes,
			"samples", q.MalformedCodeSamples)
	}
	if q.DuplicateNames > 0 {
		log.Debug("Repeated medication names", "count", q.DuplicateNames)
	}
}
