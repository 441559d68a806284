package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/kbukum/voicetext/errors"
	"github.com/kbukum/voicetext/logger"
)

// Recovery turns a panic into a 500 INTERNAL_ERROR envelope and logs the
// stack.
func Recovery(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err := errors.Internal(fmt.Errorf("panic: %v", rec))
				log.WithContext(r.Context()).Error("panic recovered", map[string]interface{}{
					logger.FieldError: err.Error(),
					"stack":           string(debug.Stack()),
					"path":            r.URL.Path,
					"method":          r.Method,
				})
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(err.ToResponse())
			}()
			next.ServeHTTP(w, r)
		})
	}
}
