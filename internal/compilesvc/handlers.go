package compilesvc

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Handler serves the circuit-compiler job API over HTTP.
type Handler struct {
	manager *Manager
}

// NewHandler wraps a Manager in an HTTP handler.
func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// CreateCircuitHandler handles POST /api/v1/circuits: decodes a
// CircuitCreateRequest, compiles it, and returns the resulting job
// whether compilation succeeded or failed.
func (h *Handler) CreateCircuitHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CircuitCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	compilerReq, err := req.toCompilerRequest()
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	job := h.manager.CreateJob(compilerReq)

	status := http.StatusCreated
	if job.Status == JobFailed {
		status = http.StatusUnprocessableEntity
	}
	respondWithJSON(w, status, CircuitResponse{Job: job})
}

// GetCircuitHandler handles GET /api/v1/circuits/{id}: looks up a
// previously compiled job by its UUID.
func (h *Handler) GetCircuitHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 5 {
		respondWithError(w, http.StatusBadRequest, "Invalid URL format")
		return
	}

	jobID, err := uuid.Parse(pathParts[4])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, ok := h.manager.GetJob(jobID)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Job not found")
		return
	}

	respondWithJSON(w, http.StatusOK, CircuitResponse{Job: job})
}

// HealthCheckHandler handles GET /api/v1/health.
func (h *Handler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "heavy-hex circuit compiler",
		"jobs":    h.manager.Len(),
	})
}

func respondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{"error": message})
}
