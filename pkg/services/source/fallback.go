package source

import (
	"context"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

type fallbackSource struct {
	primary  Source
	fallback Source
}

// WithFallback serves from fallback when primary cannot be reached (network
// failure or 404). Other transport errors and data-unavailable answers are
// passed through unchanged.
func WithFallback(primary, fallback Source) Source {
	return &fallbackSource{primary: primary, fallback: fallback}
}

func (f *fallbackSource) FetchAssets(ctx context.Context, q Query) (*domain.AssetSet, error) {
	set, err := f.primary.FetchAssets(ctx, q)
	if IsUnreachable(err) {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("window", string(q.Window)).
			Msg("assets API not available, using fixture data")
		return f.fallback.FetchAssets(ctx, q)
	}
	return set, err
}

func (f *fallbackSource) FetchTotals(ctx context.Context, window domain.Window, filter string) (float64, error) {
	total, err := f.primary.FetchTotals(ctx, window, filter)
	if IsUnreachable(err) {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("window", string(window)).
			Msg("assets totals API not available, using fixture data")
		return f.fallback.FetchTotals(ctx, window, filter)
	}
	return total, err
}
