package source

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/de-tools/asset-atlas/pkg/metrics"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{&UnavailableError{Message: "m"}, "unavailable"},
		{fmt.Errorf("wrapped: %w", context.Canceled), "canceled"},
		{&TransportError{Op: "fetch assets", StatusCode: 500}, "transport_error"},
		{errors.New("other"), "transport_error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, outcome(tt.err))
		})
	}
}

func TestInstrumented_CountsOutcomes(t *testing.T) {
	const name = "instrumented-test"
	q := Query{Window: domain.Window24h}

	next := &mockSource{}
	next.On("FetchAssets", mock.Anything, q).Return(oneAsset("a"), nil).Once()
	next.On("FetchAssets", mock.Anything, q).Return(nil, &UnavailableError{Message: "m"}).Once()

	src := Instrumented(name, next)

	set, err := src.FetchAssets(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())

	_, err = src.FetchAssets(context.Background(), q)
	assert.ErrorIs(t, err, ErrDataUnavailable)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.FetchTotal.WithLabelValues(name, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.FetchTotal.WithLabelValues(name, "unavailable")))
	next.AssertExpectations(t)
}
