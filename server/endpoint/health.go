// Package endpoint holds the built-in probe handlers of the voicetext server.
package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/voicetext/observability"
	"github.com/kbukum/voicetext/version"
)

// Health reports the health of the service and its components. A down
// component turns the response into 503; degraded stays 200.
//
// Checks are local only. The transcription provider is never called.
func Health(serviceName string, checkers ...observability.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		sh := observability.NewServiceHealth(serviceName, version.Get().Short()).
			Check(c.Request.Context(), checkers...)

		status := http.StatusOK
		if sh.Status == observability.HealthStatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":     sh.Status,
			"service":    sh.Service,
			"version":    sh.Version,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": sh.Components,
		})
	}
}
