package middleware

import "net/http"

// CORSMiddleware applies the API-wide CORS policy. Authentication is
// bearer-token only, so credentialed requests are never allowed and the
// origin stays a wildcard.
type CORSMiddleware struct {
	allowedMethods string
	allowedHeaders string
}

func NewCORSMiddleware() *CORSMiddleware {
	return &CORSMiddleware{
		allowedMethods: "GET, POST, PUT, DELETE, OPTIONS",
		allowedHeaders: "Content-Type, Authorization",
	}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", m.allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", m.allowedHeaders)
		w.Header().Set("Access-Control-Max-Age", "300")

		// Preflight ends here.
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}
