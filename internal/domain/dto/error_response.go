package dto

import "time"

// ErrorResponse is the standardized error payload returned by all API
// endpoints.
//
// Fields:
//   - Message: human-readable summary of what went wrong.
//   - ErrorDetails: underlying error text, omitted when there is none.
//   - Timestamp: when the error response was produced.
//
// It implements the error interface so handlers and middleware can pass it
// around as a regular error.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to fetch aggregates"`
	ErrorDetails string    `json:"error,omitempty" example:"connection refused"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error returns the message, with the underlying detail appended when present.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
//
// Parameters:
//   - message: summary shown to the client.
//   - err: wrapped cause; nil leaves ErrorDetails empty.
//
// Returns:
//   - ErrorResponse: a timestamped error payload ready for serialization.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
