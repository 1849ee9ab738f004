package source

import (
	"context"
	"errors"
	"time"

	"github.com/de-tools/asset-atlas/pkg/metrics"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
)

type instrumentedSource struct {
	name string
	next Source
}

// Instrumented records fetch outcomes and durations for next under name.
func Instrumented(name string, next Source) Source {
	return &instrumentedSource{name: name, next: next}
}

func (s *instrumentedSource) FetchAssets(ctx context.Context, q Query) (*domain.AssetSet, error) {
	start := time.Now()
	set, err := s.next.FetchAssets(ctx, q)
	s.observe(start, err)
	return set, err
}

func (s *instrumentedSource) FetchTotals(ctx context.Context, window domain.Window, filter string) (float64, error) {
	start := time.Now()
	total, err := s.next.FetchTotals(ctx, window, filter)
	s.observe(start, err)
	return total, err
}

func (s *instrumentedSource) observe(start time.Time, err error) {
	metrics.FetchDuration.WithLabelValues(s.name).Observe(time.Since(start).Seconds())
	metrics.FetchTotal.WithLabelValues(s.name, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrDataUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "transport_error"
	}
}
