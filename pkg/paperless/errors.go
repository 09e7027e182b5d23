package paperless

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/paperstack-io/paperless-client/internal/constants"
)

// ErrorCode identifies one member of the closed error taxonomy. Every
// failed call surfaces exactly one *Error carrying one of these codes.
type ErrorCode string

const (
	// ErrorCodeTransport covers connection failures, timeouts, TLS
	// failures, and stream interruption before a response was obtained.
	ErrorCodeTransport ErrorCode = "transport"

	// ErrorCodeUnauthorized maps HTTP 401.
	ErrorCodeUnauthorized ErrorCode = "unauthorized"

	// ErrorCodeForbidden maps HTTP 403.
	ErrorCodeForbidden ErrorCode = "forbidden"

	// ErrorCodeNotFound maps HTTP 404.
	ErrorCodeNotFound ErrorCode = "not_found"

	// ErrorCodeConflict maps HTTP 409.
	ErrorCodeConflict ErrorCode = "conflict"

	// ErrorCodeValidation maps a 400/422 whose body is a field→messages
	// object, preserved verbatim in Fields.
	ErrorCodeValidation ErrorCode = "validation"

	// ErrorCodeRateLimited maps HTTP 429, with the Retry-After hint when
	// the server sent one.
	ErrorCodeRateLimited ErrorCode = "rate_limited"

	// ErrorCodeServer maps 5xx and any otherwise-unclassified non-2xx
	// status, carrying a bounded excerpt of the body.
	ErrorCodeServer ErrorCode = "server_error"

	// ErrorCodeDecode covers a 2xx body that fails to parse into the
	// expected shape, including enum values outside their domain.
	ErrorCodeDecode ErrorCode = "decode"

	// ErrorCodeCredentialMissing is returned when a request requires
	// authorization but the credential store is empty.
	ErrorCodeCredentialMissing ErrorCode = "credential_missing"

	// ErrorCodeInvalidRequest is returned when a request is malformed
	// before it is sent, e.g. both a JSON and a multipart body set.
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
)

// Error is the single error type surfaced by this client. Code is always
// set; the remaining fields are populated per taxonomy member.
type Error struct {
	Code       ErrorCode
	Status     int
	Detail     string
	Fields     map[string][]string
	RetryAfter time.Duration
	Target     string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Code {
	case ErrorCodeTransport:
		return fmt.Sprintf("transport error: %v", e.Err)
	case ErrorCodeValidation:
		return fmt.Sprintf("validation failed: %s", e.fieldSummary())
	case ErrorCodeRateLimited:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("rate limited (retry after %s)", e.RetryAfter)
		}

		return "rate limited"
	case ErrorCodeDecode:
		return fmt.Sprintf("decoding %s: %v", e.Target, e.Err)
	case ErrorCodeCredentialMissing:
		return "no credentials configured"
	case ErrorCodeInvalidRequest:
		return fmt.Sprintf("invalid request: %s", e.Detail)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Detail)
		}

		return fmt.Sprintf("%s (status %d)", e.Code, e.Status)
	}
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) fieldSummary() string {
	if len(e.Fields) == 0 {
		return "no field details"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}

	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}

	return strings.Join(parts, ", ")
}

// NewTransportError wraps a failure that occurred before any HTTP
// response was obtained.
func NewTransportError(err error) *Error {
	return &Error{Code: ErrorCodeTransport, Err: err}
}

// NewDecodeError wraps a parse failure for a 2xx body, naming the
// expected shape.
func NewDecodeError(target string, err error) *Error {
	return &Error{Code: ErrorCodeDecode, Target: target, Err: err}
}

// NewInvalidRequestError reports a request that cannot be built.
func NewInvalidRequestError(detail string) *Error {
	return &Error{Code: ErrorCodeInvalidRequest, Detail: detail}
}

// ErrCredentialMissing is surfaced when authorization is required but
// the credential store was constructed empty.
var ErrCredentialMissing = &Error{Code: ErrorCodeCredentialMissing}

// MapResponse classifies a non-2xx response into the taxonomy. It is a
// pure function of status, headers, and the (already bounded) body
// prefix, so the full mapping is table-testable.
func MapResponse(status int, header http.Header, body []byte) *Error {
	switch status {
	case http.StatusUnauthorized:
		return &Error{Code: ErrorCodeUnauthorized, Status: status, Detail: excerpt(body)}
	case http.StatusForbidden:
		return &Error{Code: ErrorCodeForbidden, Status: status, Detail: excerpt(body)}
	case http.StatusNotFound:
		return &Error{Code: ErrorCodeNotFound, Status: status, Detail: excerpt(body)}
	case http.StatusConflict:
		return &Error{Code: ErrorCodeConflict, Status: status, Detail: excerpt(body)}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if fields, ok := parseFieldErrors(body); ok {
			return &Error{Code: ErrorCodeValidation, Status: status, Fields: fields}
		}

		return &Error{Code: ErrorCodeServer, Status: status, Detail: excerpt(body)}
	case http.StatusTooManyRequests:
		return &Error{
			Code:       ErrorCodeRateLimited,
			Status:     status,
			RetryAfter: parseRetryAfter(header.Get("Retry-After")),
		}
	default:
		return &Error{Code: ErrorCodeServer, Status: status, Detail: excerpt(body)}
	}
}

// parseFieldErrors reports whether the body is the DRF-style
// field→message(s) object and returns it with every message coerced to
// a string slice, order and content preserved.
func parseFieldErrors(body []byte) (map[string][]string, bool) {
	var raw map[string]json.RawMessage

	err := json.Unmarshal(body, &raw)
	if err != nil || len(raw) == 0 {
		return nil, false
	}

	fields := make(map[string][]string, len(raw))

	for name, msg := range raw {
		var single string
		if json.Unmarshal(msg, &single) == nil {
			fields[name] = []string{single}

			continue
		}

		var many []string
		if json.Unmarshal(msg, &many) == nil {
			fields[name] = many

			continue
		}

		// Any other value shape means this is not a validation body.
		return nil, false
	}

	return fields, true
}

// parseRetryAfter accepts both delta-seconds and HTTP-date forms. A
// missing or garbled header yields zero; the hint is advisory only.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	if when, err := http.ParseTime(value); err == nil {
		if wait := time.Until(when); wait > 0 {
			return wait
		}
	}

	return 0
}

// excerpt bounds how much of a response body is carried in an error so
// a pathological response cannot balloon memory.
func excerpt(body []byte) string {
	if len(body) > constants.ErrorBodyExcerptLimit {
		body = body[:constants.ErrorBodyExcerptLimit]
	}

	return strings.TrimSpace(string(body))
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrorCodeNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasCode(err, ErrorCodeUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasCode(err, ErrorCodeForbidden)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return hasCode(err, ErrorCodeConflict)
}

// IsValidation checks if the error carries field validation failures.
func IsValidation(err error) bool {
	return hasCode(err, ErrorCodeValidation)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return hasCode(err, ErrorCodeRateLimited)
}

// IsTransient reports whether a retry could plausibly succeed: transport
// failures, rate limiting, and server errors.
func IsTransient(err error) bool {
	return hasCode(err, ErrorCodeTransport) ||
		hasCode(err, ErrorCodeRateLimited) ||
		hasCode(err, ErrorCodeServer)
}

func hasCode(err error, code ErrorCode) bool {
	clientErr := &Error{}
	if errors.As(err, &clientErr) {
		return clientErr.Code == code
	}

	return false
}
