package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError is the error of any request to the backend.
//
// Status is nil when no response is received (network failure, timeout).
// Body is the parsed response body: a JSON value (map[string]any, []any, ...),
// or a trimmed string if it is not JSON. It is nil for empty bodies.
type APIError struct {
	Method string
	URL    string
	Status *int
	Body   any
	Cause  error
}

func (e *APIError) Error() string {
	return MessageOf(e.Body, e.fallback())
}

func (e *APIError) fallback() string {
	if e.Status == nil {
		if e.Cause != nil {
			return fmt.Sprintf("cannot reach server: %s", e.Cause)
		}
		return "cannot reach server"
	}
	return fmt.Sprintf("request failed: %s (status code = %d)", StatusCodeRangeFor(*e.Status), *e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func (e *APIError) Verbose() string {
	lines := []string{e.Error(), fmt.Sprintf("(%s %s)", e.Method, e.URL)}
	if e.Status != nil {
		lines = append(lines, fmt.Sprintf("status: %d", *e.Status))
	}
	if e.Body != nil {
		if buf, err := json.MarshalIndent(e.Body, "", "    "); err == nil {
			lines = append(lines, "body:", string(buf))
		}
	}
	if e.Cause != nil {
		lines = append(lines, "caused by: ", e.Cause.Error())
	}
	return strings.Join(lines, "\n")
}

// StatusCode returns HTTP status of err, if err is an APIError with response.
func StatusCode(err error) (int, bool) {
	var apierr *APIError
	if !errors.As(err, &apierr) || apierr.Status == nil {
		return 0, false
	}
	return *apierr.Status, true
}

// MessageOf extracts a human readable message from an error response body.
//
// The message is the first one found in this order:
//
// - the body itself, if it is a string
//
// - "detail" field of a JSON object
//
// - "non_field_errors" field of a JSON object (first string, if it is an array)
//
// Otherwise, it returns fallback.
func MessageOf(body any, fallback string) string {
	switch b := body.(type) {
	case string:
		return b
	case map[string]any:
		if detail, ok := b["detail"].(string); ok {
			return detail
		}
		switch nfe := b["non_field_errors"].(type) {
		case string:
			return nfe
		case []any:
			for _, item := range nfe {
				if s, ok := item.(string); ok {
					return s
				}
			}
		case []string:
			if len(nfe) != 0 {
				return nfe[0]
			}
		}
	}
	return fallback
}

// IsLoginRequired tells whether err means the session is missing or expired.
//
// It is true for 401, and for 403 which complains about credentials.
func IsLoginRequired(err error) bool {
	var apierr *APIError
	if !errors.As(err, &apierr) || apierr.Status == nil {
		return false
	}
	switch *apierr.Status {
	case 401:
		return true
	case 403:
		message := strings.ToLower(MessageOf(apierr.Body, ""))
		return strings.Contains(message, "credentials") ||
			strings.Contains(message, "자격 인증")
	default:
		return false
	}
}
