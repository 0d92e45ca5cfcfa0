// Package data holds the snapshot served by the lookup service and swaps it
// atomically when a refresh completes.
package data

import (
	"sync/atomic"
	"time"

	"github.com/emi03-byte/MedAI/disease"
	"github.com/emi03-byte/MedAI/enrich"
	"github.com/emi03-byte/MedAI/interfaces"
	"github.com/emi03-byte/MedAI/logging"
)

// Compile-time check to ensure DataContainer implements DataStore
var _ interfaces.DataStore = (*DataContainer)(nil)

// DataContainer publishes one snapshot at a time. All getters read from the
// same snapshot pointer, so a reader never mixes two runs.
type DataContainer struct {
	snapshot        atomic.Pointer[interfaces.Snapshot]
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time
}

var emptySnapshot = &interfaces.Snapshot{
	Medications: []enrich.Medication{},
	Catalog:     disease.NewCatalog(),
	Quality:     &interfaces.DataQualityReport{},
}

// NewDataContainer creates a container holding an empty snapshot.
func NewDataContainer() *DataContainer {
	dc := &DataContainer{}
	dc.snapshot.Store(emptySnapshot)
	dc.lastUpdated.Store(time.Time{})
	dc.serverStartTime.Store(time.Time{})
	return dc
}

func (dc *DataContainer) current() *interfaces.Snapshot {
	if s := dc.snapshot.Load(); s != nil {
		return s
	}
	return emptySnapshot
}

// GetMedications returns the enriched medication list.
func (dc *DataContainer) GetMedications() []enrich.Medication {
	return dc.current().Medications
}

// GetCatalog returns the disease reference of the current snapshot.
func (dc *DataContainer) GetCatalog() *disease.Catalog {
	return dc.current().Catalog
}

func (dc *DataContainer) GetStats() enrich.Stats {
	return dc.current().Stats
}

func (dc *DataContainer) GetQualityReport() *interfaces.DataQualityReport {
	return dc.current().Quality
}

func (dc *DataContainer) GetRunID() string {
	return dc.current().RunID
}

// GetLastUpdated returns the timestamp of the last data update
func (dc *DataContainer) GetLastUpdated() time.Time {
	if t, ok := dc.lastUpdated.Load().(time.Time); ok {
		return t
	}
	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a data update is currently in progress
func (dc *DataContainer) IsUpdating() bool {
	return dc.updating.Load()
}

// SetServerStartTime sets the server start time
func (dc *DataContainer) SetServerStartTime(startTime time.Time) {
	dc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (dc *DataContainer) GetServerStartTime() time.Time {
	if t, ok := dc.serverStartTime.Load().(time.Time); ok {
		return t
	}
	return time.Time{}
}

// UpdateData publishes s. Missing parts are filled with empty values so
// getters never return nil.
func (dc *DataContainer) UpdateData(s *interfaces.Snapshot) {
	if s == nil {
		logging.Warn("Ignoring nil snapshot")
		return
	}

	next := *s
	if next.Medications == nil {
		next.Medications = []enrich.Medication{}
	}
	if next.Catalog == nil {
		next.Catalog = disease.NewCatalog()
	}
	if next.Quality == nil {
		next.Quality = &interfaces.DataQualityReport{}
	}

	dc.snapshot.Store(&next)
	dc.lastUpdated.Store(time.Now())
}

// BeginUpdate marks the start of a data update operation
// Returns true if update can proceed, false if another update is in progress
func (dc *DataContainer) BeginUpdate() bool {
	return dc.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a data update operation
func (dc *DataContainer) EndUpdate() {
	dc.updating.Store(false)
}
