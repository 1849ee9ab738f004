package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/de-tools/asset-atlas/pkg/models/api"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/de-tools/asset-atlas/pkg/services/source"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTotals struct {
	mock.Mock
}

func (m *mockTotals) FetchTotals(ctx context.Context, window domain.Window, filter string) (float64, error) {
	args := m.Called(ctx, window, filter)
	return args.Get(0).(float64), args.Error(1)
}

func serveTotals(h *TotalsHandler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get("/assets/totals", h.GetTotals)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestTotalsHandler_GetTotals(t *testing.T) {
	m := new(mockTotals)
	m.On("FetchTotals", mock.Anything, domain.Window30d, `cluster:"cluster-1"`).Return(1234.5, nil).Once()

	path := "/assets/totals?window=30d&filter=" + url.QueryEscape(`cluster:"cluster-1"`)
	rec := serveTotals(NewTotalsHandler(m, "EUR"), path)

	require.Equal(t, http.StatusOK, rec.Code)
	env, totals := decodeEnvelope[api.Totals](t, rec)
	assert.Equal(t, "30d", env.Window)
	assert.Equal(t, "EUR", env.Currency)
	assert.Nil(t, env.Notification)
	assert.Equal(t, 1234.5, totals.TotalCost)
	m.AssertExpectations(t)
}

func TestTotalsHandler_DefaultWindow(t *testing.T) {
	m := new(mockTotals)
	m.On("FetchTotals", mock.Anything, domain.DefaultViewConfig().Window, "").Return(10.0, nil).Once()

	rec := serveTotals(NewTotalsHandler(m, ""), "/assets/totals")

	require.Equal(t, http.StatusOK, rec.Code)
	env, _ := decodeEnvelope[api.Totals](t, rec)
	assert.Equal(t, string(domain.DefaultViewConfig().Window), env.Window)
	assert.Equal(t, domain.DefaultCurrency, env.Currency)
	m.AssertExpectations(t)
}

func TestTotalsHandler_Errors(t *testing.T) {
	t.Run("unavailable", func(t *testing.T) {
		m := new(mockTotals)
		m.On("FetchTotals", mock.Anything, domain.Window7d, "").
			Return(0.0, &source.UnavailableError{Message: "still warming up"})

		rec := serveTotals(NewTotalsHandler(m, ""), "/assets/totals?window=7d")

		require.Equal(t, http.StatusOK, rec.Code)
		env, totals := decodeEnvelope[api.Totals](t, rec)
		require.NotNil(t, env.Notification)
		assert.Equal(t, "Data unavailable", env.Notification.Title)
		assert.Equal(t, "still warming up", env.Notification.Subtitle)
		assert.Zero(t, totals.TotalCost)
	})

	t.Run("transport", func(t *testing.T) {
		m := new(mockTotals)
		m.On("FetchTotals", mock.Anything, domain.Window7d, "").
			Return(0.0, &source.TransportError{Op: "fetch totals", StatusCode: 500})

		rec := serveTotals(NewTotalsHandler(m, ""), "/assets/totals?window=7d")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("invalid window", func(t *testing.T) {
		m := new(mockTotals)

		rec := serveTotals(NewTotalsHandler(m, ""), "/assets/totals?window=90d")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		m.AssertNotCalled(t, "FetchTotals", mock.Anything, mock.Anything, mock.Anything)
	})
}
