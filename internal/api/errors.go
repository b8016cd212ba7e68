package api

import (
	"encoding/json"
	"net/http"

	"freshcart/internal/domain"
)

// serverMessage extracts the backend's human-readable message from an error
// body, falling back when the body is not the expected shape.
func serverMessage(raw []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return fallback
}

// statusError maps a non-2xx backend verdict onto a domain error, keeping
// the backend's own message where it provided one.
func statusError(op string, status int, raw []byte) error {
	switch status {
	case http.StatusBadRequest:
		return domain.Errorf(domain.EINVALID, op, "%s", serverMessage(raw, "Invalid request."))
	case http.StatusUnauthorized:
		return domain.Errorf(domain.EUNAUTHORIZED, op, "%s", serverMessage(raw, "Invalid credentials."))
	case http.StatusForbidden:
		return domain.Errorf(domain.EFORBIDDEN, op, "%s", serverMessage(raw, "You do not have permission to do that."))
	case http.StatusNotFound:
		return domain.Errorf(domain.ENOTFOUND, op, "%s", serverMessage(raw, "Not found."))
	case http.StatusConflict:
		return domain.Errorf(domain.ECONFLICT, op, "%s", serverMessage(raw, "Conflict."))
	default:
		return domain.Errorf(domain.EUNAVAILABLE, op, "%s", serverMessage(raw, "The backend service returned an error. Please try again."))
	}
}
