package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) HandleImageJSON(w http.ResponseWriter, r *http.Request) {
	image, err := h.imageService.RandomImage(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch image")
		writeJSON(w, statusForFetchError(err), ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, image)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	responseJSON, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(responseJSON)
}

// statusForFetchError maps an upstream failure to the status returned to our caller.
func statusForFetchError(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}
