// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) Ping(_ context.Context) error {
	return s.err
}

func decodeProbe(t *testing.T, rr *httptest.ResponseRecorder) ProbeResponse {
	t.Helper()
	var resp ProbeResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp
}

func TestReadinessGateClosedUntilSetReady(t *testing.T) {
	h := NewHandler(&stubChecker{}, &stubChecker{})

	rr := httptest.NewRecorder()
	h.Readiness(rr, httptest.NewRequest("GET", "/readyz", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before SetReady, got %d", rr.Code)
	}
	resp := decodeProbe(t, rr)
	if resp.State != "not_ready" || resp.Success {
		t.Errorf("unexpected envelope %+v", resp)
	}

	h.SetReady(true)
	rr = httptest.NewRecorder()
	h.Readiness(rr, httptest.NewRequest("GET", "/readyz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 after SetReady, got %d", rr.Code)
	}
	resp = decodeProbe(t, rr)
	if resp.State != "ok" || !resp.Success || resp.Status != http.StatusOK {
		t.Errorf("unexpected envelope %+v", resp)
	}
	if len(resp.Checks) != 2 {
		t.Errorf("expected 2 dependency checks, got %d", len(resp.Checks))
	}
}

func TestReadinessDegradedWhenDependencyDown(t *testing.T) {
	h := NewHandler(&stubChecker{}, &stubChecker{err: errors.New("down")})
	h.SetReady(true)

	rr := httptest.NewRecorder()
	h.Readiness(rr, httptest.NewRequest("GET", "/readyz", nil))

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when redis is down, got %d", rr.Code)
	}
	resp := decodeProbe(t, rr)
	if resp.State != "degraded" {
		t.Errorf("expected degraded state, got %q", resp.State)
	}
}

func TestProbesReportShutdown(t *testing.T) {
	h := NewHandler(&stubChecker{}, &stubChecker{})
	h.SetReady(true)
	h.SetShutdown(true)

	for _, probe := range []http.HandlerFunc{h.Liveness, h.Readiness} {
		rr := httptest.NewRecorder()
		probe(rr, httptest.NewRequest("GET", "/", nil))

		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503 during shutdown, got %d", rr.Code)
		}
		if resp := decodeProbe(t, rr); resp.State != "shutting_down" {
			t.Errorf("expected shutting_down, got %q", resp.State)
		}
	}
}

func TestLivenessOK(t *testing.T) {
	h := NewHandler(nil, nil)

	rr := httptest.NewRecorder()
	h.Liveness(rr, httptest.NewRequest("GET", "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if resp := decodeProbe(t, rr); !resp.Success || resp.State != "ok" {
		t.Errorf("unexpected envelope %+v", resp)
	}
}
