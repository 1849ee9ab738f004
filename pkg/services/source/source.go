// Package source defines where asset sets come from. Implementations live in
// the opencost (live HTTP) and fixture (static catalogue) subpackages.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
)

var (
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrMalformedResponse is wrapped by transport errors for bodies that
	// could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")
)

type Query struct {
	Window     domain.Window
	Aggregate  string
	Accumulate *bool
	Filter     string
}

// Source fetches the full asset set of a window. Each call returns a fresh set.
type Source interface {
	FetchAssets(ctx context.Context, q Query) (*domain.AssetSet, error)
	FetchTotals(ctx context.Context, window domain.Window, filter string) (float64, error)
}

type Settings struct {
	BaseURL string
	Timeout time.Duration
}

// UnavailableError is returned when the API answered without data and explained
// why in its message field.
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("data unavailable: %s", e.Message)
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrDataUnavailable
}

// TransportError is returned when the request itself failed: network errors,
// timeouts, non-2xx responses and undecodable bodies.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: server returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsUnreachable reports whether err means the API could not be reached at all:
// a network failure or a 404. Other statuses, undecodable bodies and
// cancellation do not count.
func IsUnreachable(err error) bool {
	var te *TransportError
	if !errors.As(err, &te) {
		return false
	}
	if te.StatusCode != 0 {
		return te.StatusCode == http.StatusNotFound
	}
	return !errors.Is(te.Err, ErrMalformedResponse) &&
		!errors.Is(te.Err, context.Canceled) &&
		!errors.Is(te.Err, context.DeadlineExceeded)
}

func Accumulate(v bool) *bool {
	return &v
}
