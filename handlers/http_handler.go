// Package handlers serves the ATC lookup API.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/emi03-byte/MedAI/atc"
	"github.com/emi03-byte/MedAI/disease"
	"github.com/emi03-byte/MedAI/enrich"
	"github.com/emi03-byte/MedAI/interfaces"
	"github.com/emi03-byte/MedAI/logging"
	"github.com/go-chi/chi/v5"
)

// pageSize is the number of medications per page.
const pageSize = 10

// Compile-time check to ensure HTTPHandlerImpl implements HTTPHandler interface
var _ interfaces.HTTPHandler = (*HTTPHandlerImpl)(nil)

type HTTPHandlerImpl struct {
	dataStore     interfaces.DataStore
	validator     interfaces.DataValidator
	healthChecker interfaces.HealthChecker
	resolver      *atc.Resolver
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(dataStore interfaces.DataStore, validator interfaces.DataValidator,
	healthChecker interfaces.HealthChecker, resolver *atc.Resolver) *HTTPHandlerImpl {
	return &HTTPHandlerImpl{
		dataStore:     dataStore,
		validator:     validator,
		healthChecker: healthChecker,
		resolver:      resolver,
	}
}

// ATCResponse is the body of GET /v1/atc/{code}.
type ATCResponse struct {
	Code         string            `json:"code"`
	DiseaseCodes []int             `json:"disease_codes"`
	Diseases     []disease.Disease `json:"diseases"`
}

// PagedMedications is the body of GET /v1/medications.
type PagedMedications struct {
	Data       []enrich.Medication `json:"data"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalItems int                 `json:"totalItems"`
	MaxPage    int                 `json:"maxPage"`
}

// StatsResponse is the body of GET /v1/stats.
type StatsResponse struct {
	RunID      string                        `json:"run_id"`
	LastUpdate string                        `json:"last_update"`
	Stats      enrich.Stats                  `json:"stats"`
	Coverage   float64                       `json:"coverage_percent"`
	Quality    *interfaces.DataQualityReport `json:"quality"`
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
	System map[string]any `json:"system"`
}

// RespondWithJSON writes payload as JSON with status code.
func (h *HTTPHandlerImpl) RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if last := h.dataStore.GetLastUpdated(); !last.IsZero() {
		w.Header().Set("Last-Modified", last.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response
func (h *HTTPHandlerImpl) RespondWithError(w http.ResponseWriter, code int, message string) {
	h.RespondWithJSON(w, code, map[string]any{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	})
}

// ResolveATC returns the disease codes of an ATC code with their names.
func (h *HTTPHandlerImpl) ResolveATC(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.validator.ValidateATCCode(code); err != nil {
		logging.Warn("Unusual user input", "code", code)
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	codes, ok := h.resolver.Resolve(code)
	if !ok {
		h.RespondWithError(w, http.StatusNotFound, fmt.Sprintf("No diseases mapped for ATC code %s", code))
		return
	}

	h.RespondWithJSON(w, http.StatusOK, ATCResponse{
		Code:         code,
		DiseaseCodes: codes,
		Diseases:     h.dataStore.GetCatalog().Label(codes),
	})
}

// ServeMedications pages through the enriched medications, optionally
// filtered by a case insensitive name fragment.
func (h *HTTPHandlerImpl) ServeMedications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := 1
	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			logging.Warn("Unusual user input", "page", raw)
			h.RespondWithError(w, http.StatusBadRequest, "Invalid page number")
			return
		}
		page = n
	}

	medications := h.dataStore.GetMedications()
	if name := query.Get("name"); name != "" {
		if err := h.validator.ValidateInput(name); err != nil {
			h.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		medications = filterByName(medications, name)
	}

	total := len(medications)
	start := (page - 1) * pageSize
	if start >= total && page > 1 {
		h.RespondWithError(w, http.StatusNotFound, "Page not found")
		return
	}
	end := min(start+pageSize, total)

	h.RespondWithJSON(w, http.StatusOK, PagedMedications{
		Data:       medications[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		MaxPage:    (total + pageSize - 1) / pageSize,
	})
}

func filterByName(medications []enrich.Medication, name string) []enrich.Medication {
	needle := strings.ToLower(name)
	results := []enrich.Medication{}
	for _, med := range medications {
		if strings.Contains(strings.ToLower(med.Name), needle) {
			results = append(results, med)
		}
	}
	return results
}

// ServeStats returns the statistics and data quality report of the last run.
func (h *HTTPHandlerImpl) ServeStats(w http.ResponseWriter, r *http.Request) {
	stats := h.dataStore.GetStats()
	h.RespondWithJSON(w, http.StatusOK, StatsResponse{
		RunID:      h.dataStore.GetRunID(),
		LastUpdate: h.dataStore.GetLastUpdated().Format(time.RFC3339),
		Stats:      stats,
		Coverage:   stats.Coverage(),
		Quality:    h.dataStore.GetQualityReport(),
	})
}

// HealthCheck returns the health status with process statistics.
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, data, httpStatus := h.healthChecker.HealthCheck()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	system := map[string]any{
		"goroutines": runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb": int(m.Alloc / 1024 / 1024),
			"sys_mb":   int(m.Sys / 1024 / 1024),
			"num_gc":   m.NumGC,
		},
	}
	if start := h.dataStore.GetServerStartTime(); !start.IsZero() {
		uptime := time.Since(start)
		system["uptime_seconds"] = int(uptime.Seconds())
		system["uptime"] = formatUptimeHuman(uptime)
	}

	h.RespondWithJSON(w, httpStatus, HealthResponse{
		Status: status,
		Data:   data,
		System: system,
	})
}

// formatUptimeHuman formats d as e.g. "2d 3h 4m 5s".
func formatUptimeHuman(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}
