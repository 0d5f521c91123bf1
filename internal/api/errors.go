package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"omd-facade/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps a domain error onto the wire error shape. Catalog faults
// surface as 500 with the upstream detail in the message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var (
		nf *domain.NotFoundError
		ve *domain.ValidationError
		ce *domain.ConflictError
	)
	switch {
	case errors.As(err, &nf):
		status = http.StatusNotFound
	case errors.As(err, &ve):
		status = http.StatusBadRequest
	case errors.As(err, &ce):
		status = http.StatusConflict
	}

	writeJSON(w, status, map[string]any{
		"code":    status,
		"message": err.Error(),
	})
}
