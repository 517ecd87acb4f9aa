package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"propertypulse-backend/internal/logger"
	"propertypulse-backend/internal/security"
	"propertypulse-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses. The
// review endpoint reports wrong-state conflicts as 400 with the current
// status in the message; provisioning failures keep their fixed wording so
// operators can grep for them.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProvisioningFailed):
		writeError(w, http.StatusInternalServerError, "Failed to create user account. Join request remains pending.")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("unexpected error handling request", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
