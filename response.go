package login

import "net/http"

// Response is the uniform envelope API handlers return.
type Response struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    any    `json:"data,omitempty"`
}

// NewResponse wraps a payload with a message and status code.
func NewResponse(message string, status int, data any) Response {
	return Response{
		Message: message,
		Status:  status,
		Data:    data,
	}
}

// NewAPIResponse maps an operation outcome to the envelope. Success maps
// to 200 OK, failure to 404 Not Found; the optional messages override the
// standard status descriptions.
func NewAPIResponse(success bool, result any, successMessage, failureMessage string) Response {
	if success {
		if successMessage == "" {
			successMessage = http.StatusText(http.StatusOK)
		}
		return NewResponse(successMessage, http.StatusOK, result)
	}

	if failureMessage == "" {
		failureMessage = http.StatusText(http.StatusNotFound)
	}
	return NewResponse(failureMessage, http.StatusNotFound, result)
}
