package http

import (
	"net/http"
	"time"

	"github.com/newrest-ops/attendance-backend-go/internal/handler/http/response"
)

type healthPayload struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Health reports liveness. No dependencies are touched; a sheet outage
// must not make the process look dead.
func Health(service, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, healthPayload{
			Status:    "healthy",
			Service:   service,
			Version:   version,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
