package middleware

import (
	"net/http"
	"time"

	"github.com/kbukum/voicetext/logger"
)

var quietPaths = map[string]bool{
	"/health": true,
	"/info":   true,
}

// RequestLogger logs every request with method, path, status and duration.
// Health and info probes are not logged.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if quietPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			fields := map[string]interface{}{
				"method":               r.Method,
				"path":                 r.URL.Path,
				logger.FieldStatusCode: sw.status,
				logger.FieldDuration:   time.Since(start).Milliseconds(),
			}
			if r.ContentLength >= 0 {
				fields[logger.FieldPayloadBytes] = r.ContentLength
			}

			l := log.WithContext(r.Context())
			switch {
			case sw.status >= 500:
				l.Error("request completed", fields)
			case sw.status >= 400:
				l.Warn("request completed", fields)
			default:
				l.Info("request completed", fields)
			}
		})
	}
}
