package middlewares

import (
	"encoding/json"
	"net/http"
)

type tooLargeResponse struct {
	Error      string `json:"error"`
	LimitBytes int64  `json:"limit_bytes"`
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes. A declared
// Content-Length over the cap is refused with 413 before the handler runs;
// an undeclared or understated body fails when the handler reads past the cap.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}
			if r.ContentLength > maxBytes {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_ = json.NewEncoder(w).Encode(tooLargeResponse{
					Error:      "request body too large",
					LimitBytes: maxBytes,
				})
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
