package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_RecordHTTPStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(200)
	c.RecordHTTPStatus(404)

	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("200")); got != 2 {
		t.Errorf("status 200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.httpStatus.WithLabelValues("404")); got != 1 {
		t.Errorf("status 404 count = %v, want 1", got)
	}
}

func TestCollector_RecordAuthAttempt(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAuthAttempt(AuthOutcomeSuccess)
	c.RecordAuthAttempt(AuthOutcomeFailure)
	c.RecordAuthAttempt(AuthOutcomeFailure)

	if got := testutil.ToFloat64(c.authAttempts.WithLabelValues(AuthOutcomeSuccess)); got != 1 {
		t.Errorf("success count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.authAttempts.WithLabelValues(AuthOutcomeFailure)); got != 2 {
		t.Errorf("failure count = %v, want 2", got)
	}
}

func TestCollector_RecordTaskCreated(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordTaskCreated()
	c.RecordTaskCreated()

	if got := testutil.ToFloat64(c.tasksCreated); got != 2 {
		t.Errorf("tasks created count = %v, want 2", got)
	}
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPStatus(200)
	c.RecordRequestLatency(50 * time.Millisecond)
	c.RecordTaskCreated()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	for _, name := range []string{
		"taskman_http_status_total",
		"taskman_request_latency_seconds",
		"taskman_tasks_created_total",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output does not contain %q", name)
		}
	}
}
