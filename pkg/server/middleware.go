package server

import "net/http"

// corsMiddleware sets the CORS headers on every response and answers
// preflight requests directly with 200 and an empty body, for any path.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// fallbackHandler serves static assets from the public directory when the
// requested file exists, and answers everything else with the JSON 404.
func (s *Server) fallbackHandler() http.Handler {
	var (
		root   http.FileSystem
		static http.Handler
	)
	if s.publicDir != "" {
		root = http.Dir(s.publicDir)
		static = http.FileServer(root)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if static != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
			if f, err := root.Open(r.URL.Path); err == nil {
				f.Close()
				static.ServeHTTP(w, r)
				return
			}
		}
		respondMessage(w, http.StatusNotFound, "Not found")
	})
}
