package source

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIsUnreachable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil},
		{name: "connection refused", err: &TransportError{Op: "fetch assets", Err: errors.New("dial tcp: connection refused")}, want: true},
		{name: "not found", err: &TransportError{Op: "fetch assets", StatusCode: 404}, want: true},
		{name: "server error", err: &TransportError{Op: "fetch assets", StatusCode: 502}},
		{name: "malformed body", err: &TransportError{Op: "fetch assets", Err: fmt.Errorf("%w: eof", ErrMalformedResponse)}},
		{name: "cancelled", err: &TransportError{Op: "fetch assets", Err: fmt.Errorf("get: %w", context.Canceled)}},
		{name: "unavailable", err: &UnavailableError{Message: "no data"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnreachable(tt.err))
		})
	}
}

func TestWithFallback_FetchAssets(t *testing.T) {
	q := Query{Window: domain.Window7d}

	tests := []struct {
		name         string
		primaryErr   error
		wantFallback bool
		wantErr      error
	}{
		{name: "primary ok"},
		{
			name:         "network error falls back",
			primaryErr:   &TransportError{Op: "fetch assets", Err: errors.New("connection refused")},
			wantFallback: true,
		},
		{
			name:         "not found falls back",
			primaryErr:   &TransportError{Op: "fetch assets", StatusCode: 404},
			wantFallback: true,
		},
		{
			name:       "server error is passed through",
			primaryErr: &TransportError{Op: "fetch assets", StatusCode: 502},
		},
		{
			name:       "malformed body is passed through",
			primaryErr: &TransportError{Op: "fetch assets", Err: fmt.Errorf("%w: eof", ErrMalformedResponse)},
			wantErr:    ErrMalformedResponse,
		},
		{
			name:       "unavailable is passed through",
			primaryErr: &UnavailableError{Message: "no data yet"},
			wantErr:    ErrDataUnavailable,
		},
		{
			name:       "cancellation is passed through",
			primaryErr: context.Canceled,
			wantErr:    context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockSource{}
			fallback := &mockSource{}

			if tt.primaryErr != nil {
				primary.On("FetchAssets", mock.Anything, q).Return(nil, tt.primaryErr)
			} else {
				primary.On("FetchAssets", mock.Anything, q).Return(oneAsset("live"), nil)
			}
			if tt.wantFallback {
				fallback.On("FetchAssets", mock.Anything, q).Return(oneAsset("fixture"), nil)
			}

			set, err := WithFallback(primary, fallback).FetchAssets(context.Background(), q)

			switch {
			case tt.wantFallback:
				require.NoError(t, err)
				assert.Equal(t, []string{"fixture"}, set.Keys())
			case tt.primaryErr != nil:
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.True(t, errors.Is(err, tt.wantErr))
				}
				assert.Nil(t, set)
			default:
				require.NoError(t, err)
				assert.Equal(t, []string{"live"}, set.Keys())
			}
			primary.AssertExpectations(t)
			fallback.AssertExpectations(t)
		})
	}
}

func TestWithFallback_FetchTotals(t *testing.T) {
	primary := &mockSource{}
	fallback := &mockSource{}
	primary.On("FetchTotals", mock.Anything, domain.Window30d, "").
		Return(0.0, &TransportError{Op: "fetch totals", Err: errors.New("connection refused")})
	fallback.On("FetchTotals", mock.Anything, domain.Window30d, "").Return(42.5, nil)

	total, err := WithFallback(primary, fallback).FetchTotals(context.Background(), domain.Window30d, "")
	require.NoError(t, err)
	assert.Equal(t, 42.5, total)
}
