// Package interfaces defines the contracts between the lookup service
// components so each one can be tested against hand-written mocks.
package interfaces

import (
	"context"
	"net/http"
	"time"

	"github.com/emi03-byte/MedAI/dataset"
	"github.com/emi03-byte/MedAI/disease"
	"github.com/emi03-byte/MedAI/enrich"
)

// DataQualityReport summarizes problems found in a medication dataset.
// Problems are reported, never fatal.
type DataQualityReport struct {
	TotalRows            int      `json:"total_rows"`
	RowsWithoutCode      int      `json:"rows_without_code"`
	RowsWithoutName      int      `json:"rows_without_name"`
	MalformedCodes       int      `json:"malformed_codes"`
	MalformedCodeSamples []string `json:"malformed_code_samples,omitempty"`
	DuplicateNames       int      `json:"duplicate_names"`
}

// Snapshot is the published result of one enrichment run.
type Snapshot struct {
	RunID       string
	Medications []enrich.Medication
	Catalog     *disease.Catalog
	Stats       enrich.Stats
	Quality     *DataQualityReport
}

// DataStore holds the current snapshot and swaps it atomically so readers
// never see a half updated state.
type DataStore interface {
	GetMedications() []enrich.Medication
	GetCatalog() *disease.Catalog
	GetStats() enrich.Stats
	GetQualityReport() *DataQualityReport
	GetRunID() string
	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time

	UpdateData(snapshot *Snapshot)
	BeginUpdate() bool
	EndUpdate()
}

// Pipeline produces a fresh snapshot from the configured inputs.
type Pipeline interface {
	Refresh(ctx context.Context) (*Snapshot, error)
}

// Scheduler re-runs the pipeline on a timetable.
type Scheduler interface {
	Start() error
	Stop()
	// NextRun is the next scheduled refresh, zero when nothing is scheduled.
	NextRun() time.Time
}

// HTTPHandler serves the lookup API.
type HTTPHandler interface {
	ResolveATC(w http.ResponseWriter, r *http.Request)
	ServeMedications(w http.ResponseWriter, r *http.Request)
	ServeStats(w http.ResponseWriter, r *http.Request)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// HealthChecker reports service health from the state of the data store.
type HealthChecker interface {
	HealthCheck() (status string, details map[string]any, httpStatus int)
	CalculateNextUpdate() time.Time
}

// DataValidator checks user input and dataset quality.
type DataValidator interface {
	// ValidateATCCode checks the shape of an ATC code, not whether it is known.
	ValidateATCCode(code string) error

	// ValidateInput validates free text search input
	ValidateInput(input string) error

	ReportDataQuality(ds *dataset.Dataset, codeColumn, nameColumn string) *DataQualityReport
}
