package googleads

import (
	"encoding/json"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the Ads API.
type APIError struct {
	StatusCode int
	// Status is the google.rpc code name, e.g. RESOURCE_EXHAUSTED.
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return e.Status + ": " + e.Message
	}
	return e.Message
}

// Temporary reports whether the request may succeed if repeated later.
func (e *APIError) Temporary() bool {
	switch e.Status {
	case "RESOURCE_EXHAUSTED", "UNAVAILABLE", "DEADLINE_EXCEEDED", "ABORTED":
		return true
	}
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var env errorResponse
	if err := json.Unmarshal(body, &env); err != nil || env.Error.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(statusCode)
		}
		return apiErr
	}

	apiErr.Status = env.Error.Status
	apiErr.Message = env.Error.Message
	var details []string
	for _, d := range env.Error.Details {
		for _, e := range d.Errors {
			if e.Message != "" {
				details = append(details, e.Message)
			}
		}
	}
	if len(details) > 0 {
		apiErr.Message += " (" + strings.Join(details, "; ") + ")"
	}
	return apiErr
}
