package utils

import (
	"encoding/json"
	"net/http"

	"WANDERINDIA_BACK-END/internal/dto"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a JSON error envelope to the HTTP response writer
func WriteErrorResponse(w http.ResponseWriter, status int, message, details string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// DecodeJSONRequest decodes a JSON request body into dst, writing a 400
// response and returning the error when the body is malformed
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}
