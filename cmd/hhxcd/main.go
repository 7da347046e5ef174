// Command hhxcd serves the heavy-hex circuit compiler as an HTTP API.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/chamberlandlab/heavyhex/internal/compilesvc"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mux := http.NewServeMux()

	manager := compilesvc.NewManager()
	handler := compilesvc.NewHandler(manager)

	mux.HandleFunc("/api/v1/health", handler.HealthCheckHandler)
	mux.HandleFunc("/api/v1/circuits", handler.CreateCircuitHandler)
	mux.HandleFunc("/api/v1/circuits/", handler.GetCircuitHandler)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      loggingMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("hhxcd starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server failed to start: %v", err)
	}
}

// loggingMiddleware logs all incoming requests.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("request completed in %v", time.Since(start))
	})
}
