package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/legalaid-ng/legalaid-api/models"
)

// New creates a new mux router with the health route. Segment routes are mounted by
// the handlers package.
func New() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)

	return r
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.HealthCheckResponse{Alive: true})
}
