package middlewares

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

var standardMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodHead,
}

// CORSMiddleware creates a CORS middleware for the given origins.
// A "*" entry allows every origin. Any method and any header is allowed.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: standardMethods,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         3600,
	}
	// Credentials cannot be combined with a wildcard origin.
	if !slices.Contains(allowedOrigins, "*") {
		opts.AllowCredentials = true
	}
	standard := cors.New(opts)

	return func(next http.Handler) http.Handler {
		handler := standard.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method := corsMethod(r)
			if slices.Contains(standardMethods, method) {
				handler.ServeHTTP(w, r)
				return
			}

			// rs/cors only matches listed methods
			custom := opts
			custom.AllowedMethods = append(slices.Clone(standardMethods), method)
			cors.New(custom).Handler(next).ServeHTTP(w, r)
		})
	}
}

// corsMethod is the method a request is checked against: the announced
// method for a preflight, the request method otherwise
func corsMethod(r *http.Request) string {
	if r.Method == http.MethodOptions {
		if requested := r.Header.Get("Access-Control-Request-Method"); requested != "" {
			return requested
		}
	}
	return r.Method
}
