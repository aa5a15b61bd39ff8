package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DefaultErrorMessage is used when neither the backend nor the transport
// said anything useful.
const DefaultErrorMessage = "An error occurred"

// Error is the single failure shape produced by the HTTP layer.
//
// Status is the HTTP status code, or 0 when no response arrived (network
// failure, timeout, cancelled context). Data holds the response body as
// received; a body that is not JSON is kept as a JSON string.
type Error struct {
	Message string          `json:"message"`
	Status  int             `json:"status,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	err error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.err }

// Unauthorized reports whether the backend rejected the credentials.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Normalize turns any error into an *Error. An *Error in the chain keeps its
// status and data; an empty message is replaced by fallback. Other errors
// use their own text, or fallback when that is empty. Nil stays nil.
func Normalize(err error, fallback string) *Error {
	if err == nil {
		return nil
	}
	if fallback == "" {
		fallback = DefaultErrorMessage
	}
	if apiErr, ok := AsError(err); ok {
		if apiErr.Message != "" {
			return apiErr
		}
		return &Error{Message: fallback, Status: apiErr.Status, Data: apiErr.Data, err: apiErr.err}
	}
	msg := err.Error()
	if msg == "" {
		msg = fallback
	}
	return &Error{Message: msg, err: err}
}

// newResponseError builds the error for a non-2xx response. The message is
// taken from the body's "message" field, then its "error" field, then a
// generic "Request failed with status code N".
func newResponseError(status int, body []byte) *Error {
	e := &Error{Status: status, Data: rawData(body)}

	var envelope map[string]any
	if json.Unmarshal(body, &envelope) == nil {
		for _, key := range []string{"message", "error"} {
			if s, ok := envelope[key].(string); ok && s != "" {
				e.Message = s
				return e
			}
		}
	}
	e.Message = fmt.Sprintf("Request failed with status code %d", status)
	return e
}

func rawData(body []byte) json.RawMessage {
	if len(body) == 0 {
		return nil
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
