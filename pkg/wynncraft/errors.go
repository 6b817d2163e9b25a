package wynncraft

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnexpectedStatus is wrapped by TransportError when the API answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("wynncraft: unexpected status")

// TransportError reports a request that could not be sent or a response that was not received.
// StatusCode is set when the API answered but not with a 2xx status.
type TransportError struct {
	URL        string
	StatusCode int
	RetryAfter time.Duration
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		if e.Body != "" {
			return fmt.Sprintf("wynncraft: GET %s: status %d: %s", e.URL, e.StatusCode, e.Body)
		}
		return fmt.Sprintf("wynncraft: GET %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("wynncraft: GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FormatError reports a response body that is not a parseable JSON document.
type FormatError struct {
	URL string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("wynncraft: GET %s: malformed body: %v", e.URL, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// SchemaError reports a required field that is missing or a field holding the wrong kind of value.
// Field is the dotted path from the document root.
type SchemaError struct {
	Field    string
	Expected Kind
	Err      error
}

func (e *SchemaError) Error() string {
	field := e.Field
	if field == "" {
		field = "<root>"
	}
	if e.Err != nil {
		return fmt.Sprintf("wynncraft: field %q: expected %s: %v", field, e.Expected, e.Err)
	}
	return fmt.Sprintf("wynncraft: field %q: expected %s", field, e.Expected)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// MissingNestedError reports a required nested object that is absent from the document.
type MissingNestedError struct {
	Field string
}

func (e *MissingNestedError) Error() string {
	return fmt.Sprintf("wynncraft: missing nested object %q", e.Field)
}

// AsTransportError unwraps err into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// AsSchemaError unwraps err into a SchemaError.
func AsSchemaError(err error) (*SchemaError, bool) {
	var sErr *SchemaError
	if errors.As(err, &sErr) {
		return sErr, true
	}
	return nil, false
}

// IsNotFound reports whether the API answered 404 for the requested resource.
func IsNotFound(err error) bool {
	tErr, ok := AsTransportError(err)
	return ok && tErr.StatusCode == http.StatusNotFound
}

// IsRateLimited reports whether the API answered 429.
func IsRateLimited(err error) bool {
	tErr, ok := AsTransportError(err)
	return ok && tErr.StatusCode == http.StatusTooManyRequests
}

// IsContractError reports whether err means the response did not match the expected document shape.
func IsContractError(err error) bool {
	var (
		fErr *FormatError
		sErr *SchemaError
		mErr *MissingNestedError
	)
	return errors.As(err, &fErr) || errors.As(err, &sErr) || errors.As(err, &mErr)
}
