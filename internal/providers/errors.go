package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

// ErrProviderUnavailable is returned when no upstream client is configured.
var ErrProviderUnavailable = errors.New("upstream provider unavailable")

// RateLimitError captures rate limit responses from the Wynncraft API.
type RateLimitError struct {
	Endpoint   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
	Err        error
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "upstream rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// classify turns a 429 from the client into a RateLimitError and leaves everything else untouched.
func classify(endpoint string, err error) error {
	if err == nil || !wynncraft.IsRateLimited(err) {
		return err
	}
	tErr, _ := wynncraft.AsTransportError(err)
	return &RateLimitError{
		Endpoint:   endpoint,
		StatusCode: tErr.StatusCode,
		RetryAfter: tErr.RetryAfter,
		Message:    "wynncraft rate limited " + endpoint,
		Err:        err,
	}
}

// isPermanent reports errors a retry cannot fix: contract violations, client-side statuses and cancellation.
func isPermanent(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrProviderUnavailable) {
		return true
	}
	if wynncraft.IsContractError(err) {
		return true
	}
	if _, ok := AsRateLimitError(err); ok {
		return false
	}
	if tErr, ok := wynncraft.AsTransportError(err); ok {
		code := tErr.StatusCode
		return code >= 400 && code < 500 && code != http.StatusRequestTimeout
	}
	return false
}
