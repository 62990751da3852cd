package response

import (
	"encoding/json"
	"net/http"

	"shopledger/internal/errors"
)

// APIResponse is the uniform envelope of every endpoint:
// {success, data?, error?} with the error as a plain string.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	response := APIResponse{
		Success: true,
		Data:    data,
	}

	WriteJson(w, statusCode, response)
}

func Error(w http.ResponseWriter, err error) {

	statusCode := http.StatusInternalServerError
	message := "An unexpected error occurred"

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		message = appErr.Message
	}

	WriteJson(w, statusCode, APIResponse{
		Success: false,
		Error:   message,
	})
}
