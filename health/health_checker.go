// Package health reports the lookup service status from the age and size of
// the published snapshot.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/emi03-byte/MedAI/interfaces"
)

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Compile-time check to ensure HealthCheckerImpl implements HealthChecker interface
var _ interfaces.HealthChecker = (*HealthCheckerImpl)(nil)

type HealthCheckerImpl struct {
	dataStore interfaces.DataStore
	scheduler interfaces.Scheduler
	now       func() time.Time
}

// NewHealthChecker creates a health checker. scheduler may be nil when no
// refresh is scheduled.
func NewHealthChecker(dataStore interfaces.DataStore, scheduler interfaces.Scheduler) *HealthCheckerImpl {
	return &HealthCheckerImpl{
		dataStore: dataStore,
		scheduler: scheduler,
		now:       time.Now,
	}
}

// HealthCheck classifies the service:
//   - unhealthy: no medications loaded, or data older than 48h
//   - degraded: data older than 24h, or an update stuck for more than 6h
//   - healthy otherwise
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	medications := h.dataStore.GetMedications()
	stats := h.dataStore.GetStats()
	lastUpdate := h.dataStore.GetLastUpdated()
	isUpdating := h.dataStore.IsUpdating()

	dataAge := h.now().Sub(lastUpdate)

	switch {
	case len(medications) == 0 || dataAge > 48*time.Hour:
		status = StatusUnhealthy
		httpStatus = http.StatusServiceUnavailable
	case dataAge > 24*time.Hour, isUpdating && dataAge > 6*time.Hour:
		status = StatusDegraded
		httpStatus = http.StatusServiceUnavailable
	default:
		status = StatusHealthy
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"last_update":    lastUpdate.Format(time.RFC3339),
		"data_age_hours": math.Round(dataAge.Hours()*10) / 10,
		"medications":    len(medications),
		"mapped":         stats.Mapped,
		"diseases":       h.dataStore.GetCatalog().Len(),
		"run_id":         h.dataStore.GetRunID(),
		"is_updating":    isUpdating,
	}
	if next := h.CalculateNextUpdate(); !next.IsZero() {
		data["next_update"] = next.Format(time.RFC3339)
	}

	return status, data, httpStatus
}

// CalculateNextUpdate returns the next scheduled refresh, or the zero time
// when nothing is scheduled.
func (h *HealthCheckerImpl) CalculateNextUpdate() time.Time {
	if h.scheduler == nil {
		return time.Time{}
	}
	return h.scheduler.NextRun()
}
