package metrics

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRun(t *testing.T) {
	mappedBefore := testutil.ToFloat64(RecordsTotal.WithLabelValues("mapped"))
	unmappedBefore := testutil.ToFloat64(RecordsTotal.WithLabelValues("unmapped"))

	finished := time.Unix(1760000000, 0)
	ObserveRun(7, 3, 42, 250*time.Millisecond, finished)

	if got := testutil.ToFloat64(RecordsTotal.WithLabelValues("mapped")) - mappedBefore; got != 7 {
		t.Errorf("Expected 7 mapped records, got %v", got)
	}
	if got := testutil.ToFloat64(RecordsTotal.WithLabelValues("unmapped")) - unmappedBefore; got != 3 {
		t.Errorf("Expected 3 unmapped records, got %v", got)
	}
	if got := testutil.ToFloat64(DiseaseCodesUnique); got != 42 {
		t.Errorf("Expected 42 unique codes, got %v", got)
	}
	if got := testutil.ToFloat64(LastRunTimestamp); got != 1760000000 {
		t.Errorf("Expected last run timestamp, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	if err := WriteTextfile(""); err != nil {
		t.Errorf("Empty path should be a no-op, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "atcmap.prom")
	ObserveRun(1, 0, 1, time.Second, time.Now())
	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read textfile: %v", err)
	}
	for _, name := range []string{"atcmap_records_total", "atcmap_enrichment_duration_seconds", "atcmap_last_run_timestamp_seconds"} {
		if !strings.Contains(string(content), name) {
			t.Errorf("Expected %s in textfile", name)
		}
	}
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/v1/atc/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues("GET", "/v1/atc/{code}", "404"))
	for _, code := range []string{"A01", "B02", "C03"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/atc/"+code, nil))
	}

	after := testutil.ToFloat64(HTTPRequestTotals.WithLabelValues("GET", "/v1/atc/{code}", "404"))
	if after-before != 3 {
		t.Errorf("Expected 3 requests under one route pattern, got %v", after-before)
	}
	if got := testutil.ToFloat64(HTTPRequestInFlight); got != 0 {
		t.Errorf("Expected no in-flight requests, got %v", got)
	}
}
