package middleware

import (
	"net/http"

	"github.com/kbukum/voicetext/util"
)

// DefaultMaxBodySize bounds uploaded audio when no limit is configured.
const DefaultMaxBodySize = 25 * 1024 * 1024

// BodySizeLimit restricts the request body to maxSize (e.g. "25MB").
// Reading past the limit fails with *http.MaxBytesError.
func BodySizeLimit(maxSize string) Middleware {
	size := util.ParseSize(maxSize, DefaultMaxBodySize)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, size)
			next.ServeHTTP(w, r)
		})
	}
}
