package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"anarchyauth/internal/metrics"
)

func TestHandler_ExposesCounters(t *testing.T) {
	active := 3
	m := metrics.New(func() int { return active })
	m.ObserveRequest("/sign", 200, 5*time.Millisecond)
	m.Derived("iris_biometric")
	m.Signed()
	m.Verified(false)
	m.Failed("session_not_found")
	m.RateLimited()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	out := string(body)

	for _, want := range []string{
		`anarchyauth_http_requests_total{code="200",route="/sign"} 1`,
		`anarchyauth_derivations_total{method="iris_biometric"} 1`,
		`anarchyauth_signatures_total 1`,
		`anarchyauth_verifications_total{valid="false"} 1`,
		`anarchyauth_errors_total{kind="session_not_found"} 1`,
		`anarchyauth_rate_limited_total 1`,
		`anarchyauth_active_sessions 3`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in exposition:\n%s", want, out)
		}
	}
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *metrics.Metrics
	m.ObserveRequest("/", 200, time.Millisecond)
	m.Derived("image_hash")
	m.Signed()
	m.Verified(true)
	m.Failed("internal")
	m.RateLimited()
}
