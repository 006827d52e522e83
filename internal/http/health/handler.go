package health

import (
	"encoding/json"
	"net/http"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Transport string `json:"transport"`
}

// Handler reports liveness. It does not contact the mail transport.
func Handler(service, version, transport string) http.HandlerFunc {
	body := Response{Status: "healthy", Service: service, Version: version, Transport: transport}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		_ = json.NewEncoder(w).Encode(body)
	}
}
