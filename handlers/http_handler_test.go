package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/emi03-byte/MedAI/atc"
	"github.com/emi03-byte/MedAI/data"
	"github.com/emi03-byte/MedAI/disease"
	"github.com/emi03-byte/MedAI/enrich"
	"github.com/emi03-byte/MedAI/interfaces"
	"github.com/emi03-byte/MedAI/validation"
	"github.com/go-chi/chi/v5"
)

type mockHealthChecker struct {
	status     string
	httpStatus int
}

func (m *mockHealthChecker) HealthCheck() (string, map[string]any, int) {
	return m.status, map[string]any{"medications": 3}, m.httpStatus
}

func (m *mockHealthChecker) CalculateNextUpdate() time.Time { return time.Time{} }

func newTestHandler(t *testing.T, medications []enrich.Medication) *HTTPHandlerImpl {
	t.Helper()

	store := data.NewDataContainer()
	store.UpdateData(&interfaces.Snapshot{
		RunID:       "run-1",
		Medications: medications,
		Catalog: disease.NewCatalog(
			disease.Disease{Code: 552, Name: "Ulcer gastric"},
			disease.Disease{Code: 868, Name: "Reflux gastroesofagian"},
		),
		Stats:   enrich.Stats{Total: 4, Mapped: 3, Unmapped: 1, Codes: []int{552, 868}},
		Quality: &interfaces.DataQualityReport{TotalRows: 4, RowsWithoutCode: 1},
	})
	store.SetServerStartTime(time.Now().Add(-90 * time.Minute))

	resolver := atc.NewResolver(atc.MustTable([]atc.Entry{
		{Prefix: "A02B", Codes: atc.Codes(552)},
		{Prefix: "A02BC", Codes: atc.Codes(552, 868)},
	}))

	return NewHTTPHandler(store, validation.NewDataValidator(),
		&mockHealthChecker{status: "healthy", httpStatus: http.StatusOK}, resolver)
}

func testMedications() []enrich.Medication {
	return []enrich.Medication{
		{Name: "OMEPRAZOL 20mg", ATCCode: "A02BC01", DiseaseCodes: []int{552, 868}},
		{Name: "RANITIDINA 150mg", ATCCode: "A02BA02", DiseaseCodes: []int{552}},
		{Name: "Omeprazol Sandoz", ATCCode: "A02BC01", DiseaseCodes: []int{552, 868}},
		{Name: "APA DISTILATA", ATCCode: "", DiseaseCodes: nil},
	}
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestResolveATC(t *testing.T) {
	h := newTestHandler(t, testMedications())

	tests := []struct {
		name           string
		code           string
		expectedStatus int
		expectedCodes  []int
	}{
		{"cumulative prefixes", "A02BC01", http.StatusOK, []int{552, 868}},
		{"shorter code", "A02B", http.StatusOK, []int{552}},
		{"no prefix matches", "Z99ZZ", http.StatusNotFound, nil},
		{"lowercase is rejected", "a02bc01", http.StatusBadRequest, nil},
		{"too long", "A02BC01A02BC01", http.StatusBadRequest, nil},
		{"symbols", "A02-BC", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest("GET", "/v1/atc/"+tt.code, nil), "code", tt.code)
			rr := httptest.NewRecorder()

			h.ResolveATC(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				var body map[string]any
				if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
					t.Fatalf("Failed to decode error body: %v", err)
				}
				if body["code"] != float64(tt.expectedStatus) {
					t.Errorf("Expected error code %d, got %v", tt.expectedStatus, body["code"])
				}
				return
			}

			var resp ATCResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if fmt.Sprint(resp.DiseaseCodes) != fmt.Sprint(tt.expectedCodes) {
				t.Errorf("Expected codes %v, got %v", tt.expectedCodes, resp.DiseaseCodes)
			}
			if len(resp.Diseases) != len(tt.expectedCodes) {
				t.Fatalf("Expected %d labelled diseases, got %d", len(tt.expectedCodes), len(resp.Diseases))
			}
			if resp.Diseases[0].Name != "Ulcer gastric" {
				t.Errorf("Expected first disease name Ulcer gastric, got %q", resp.Diseases[0].Name)
			}
		})
	}
}

func TestResolveATC_Headers(t *testing.T) {
	h := newTestHandler(t, testMedications())

	req := withURLParam(httptest.NewRequest("GET", "/v1/atc/A02BC01", nil), "code", "A02BC01")
	rr := httptest.NewRecorder()
	h.ResolveATC(rr, req)

	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	if rr.Header().Get("Last-Modified") == "" {
		t.Error("Expected Last-Modified header")
	}
}

func TestServeMedications(t *testing.T) {
	h := newTestHandler(t, testMedications())

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedTotal  int
	}{
		{"all", "", http.StatusOK, 4},
		{"case insensitive name", "?name=omeprazol", http.StatusOK, 2},
		{"no match", "?name=paracetamol", http.StatusOK, 0},
		{"name too short", "?name=om", http.StatusBadRequest, 0},
		{"dangerous name", "?name=<script>", http.StatusBadRequest, 0},
		{"invalid page", "?page=abc", http.StatusBadRequest, 0},
		{"zero page", "?page=0", http.StatusBadRequest, 0},
		{"page out of range", "?page=2", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/medications"+tt.query, nil)
			rr := httptest.NewRecorder()

			h.ServeMedications(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
			if rr.Code != http.StatusOK {
				return
			}

			var resp PagedMedications
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.TotalItems != tt.expectedTotal {
				t.Errorf("Expected %d items, got %d", tt.expectedTotal, resp.TotalItems)
			}
			if len(resp.Data) != tt.expectedTotal {
				t.Errorf("Expected %d medications on page, got %d", tt.expectedTotal, len(resp.Data))
			}
			if resp.Data == nil {
				t.Error("Expected empty array, got null")
			}
		})
	}
}

func TestServeMedications_Paging(t *testing.T) {
	var medications []enrich.Medication
	for i := 0; i < 25; i++ {
		medications = append(medications, enrich.Medication{Name: fmt.Sprintf("MED %02d", i), ATCCode: "A02BC01"})
	}
	h := newTestHandler(t, medications)

	tests := []struct {
		page     int
		expected int
		first    string
	}{
		{1, 10, "MED 00"},
		{2, 10, "MED 10"},
		{3, 5, "MED 20"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			req := httptest.NewRequest("GET", fmt.Sprintf("/v1/medications?page=%d", tt.page), nil)
			rr := httptest.NewRecorder()
			h.ServeMedications(rr, req)

			var resp PagedMedications
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.MaxPage != 3 {
				t.Errorf("Expected maxPage 3, got %d", resp.MaxPage)
			}
			if len(resp.Data) != tt.expected {
				t.Errorf("Expected %d items, got %d", tt.expected, len(resp.Data))
			}
			if resp.Data[0].Name != tt.first {
				t.Errorf("Expected first item %s, got %s", tt.first, resp.Data[0].Name)
			}
		})
	}
}

func TestServeStats(t *testing.T) {
	h := newTestHandler(t, testMedications())

	rr := httptest.NewRecorder()
	h.ServeStats(rr, httptest.NewRequest("GET", "/v1/stats", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp StatsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.RunID != "run-1" {
		t.Errorf("Expected run id run-1, got %s", resp.RunID)
	}
	if resp.Stats.Mapped != 3 || resp.Stats.Unmapped != 1 {
		t.Errorf("Unexpected stats: %+v", resp.Stats)
	}
	if resp.Coverage != 75 {
		t.Errorf("Expected coverage 75, got %v", resp.Coverage)
	}
	if resp.Quality == nil || resp.Quality.RowsWithoutCode != 1 {
		t.Errorf("Unexpected quality report: %+v", resp.Quality)
	}
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(t, testMedications())

	rr := httptest.NewRecorder()
	h.HealthCheck(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Expected healthy, got %s", resp.Status)
	}
	if _, ok := resp.System["goroutines"]; !ok {
		t.Error("Expected goroutines in system section")
	}
	if uptime, _ := resp.System["uptime"].(string); !strings.HasPrefix(uptime, "1h 30m") {
		t.Errorf("Expected uptime 1h 30m..., got %q", uptime)
	}
}

func TestHealthCheck_PropagatesStatus(t *testing.T) {
	h := newTestHandler(t, testMedications())
	h.healthChecker = &mockHealthChecker{status: "unhealthy", httpStatus: http.StatusServiceUnavailable}

	rr := httptest.NewRecorder()
	h.HealthCheck(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", rr.Code)
	}
}

func TestFormatUptimeHuman(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{5 * time.Second, "5s"},
		{2*time.Minute + 3*time.Second, "2m 3s"},
		{time.Hour, "1h 0m 0s"},
		{49*time.Hour + 61*time.Second, "2d 1h 1m 1s"},
	}

	for _, tt := range tests {
		if got := formatUptimeHuman(tt.d); got != tt.expected {
			t.Errorf("formatUptimeHuman(%v): expected %q, got %q", tt.d, tt.expected, got)
		}
	}
}
