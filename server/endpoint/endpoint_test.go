package endpoint

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/voicetext/observability"
)

type staticChecker observability.Health

func (s staticChecker) CheckHealth(context.Context) observability.Health {
	return observability.Health(s)
}

func serve(t *testing.T, h gin.HandlerFunc) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/", h)

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return rr.Code, body
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		checkers []observability.HealthChecker
		code     int
		status   string
	}{
		{"no components", nil, http.StatusOK, "up"},
		{
			"degraded credential",
			[]observability.HealthChecker{staticChecker{Name: "deepgram", Status: observability.HealthStatusDegraded}},
			http.StatusOK, "degraded",
		},
		{
			"down component",
			[]observability.HealthChecker{
				staticChecker{Name: "deepgram", Status: observability.HealthStatusUp},
				staticChecker{Name: "disk", Status: observability.HealthStatusDown},
			},
			http.StatusServiceUnavailable, "down",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, body := serve(t, Health("voicetext", tc.checkers...))
			if code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, code)
			}
			if body["status"] != tc.status {
				t.Errorf("expected status %q, got %v", tc.status, body["status"])
			}
			if body["service"] != "voicetext" {
				t.Errorf("unexpected service %v", body["service"])
			}
		})
	}
}

func TestInfo(t *testing.T) {
	code, body := serve(t, Info("voicetext"))
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["service"] != "voicetext" || body["version"] == "" {
		t.Errorf("unexpected body %v", body)
	}
	if _, ok := body["uptime"]; !ok {
		t.Error("expected uptime")
	}
}
