package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

const maxBodyBytes = 10 << 20

// decodeJSON reads r's body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Debug("failed to decode request body", "path", r.URL.Path, "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// queryPtr returns nil for an absent or empty query parameter.
func queryPtr(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}
