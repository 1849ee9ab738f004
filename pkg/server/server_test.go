package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/de-tools/asset-atlas/pkg/models/api"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/de-tools/asset-atlas/pkg/services/loader"
	"github.com/de-tools/asset-atlas/pkg/services/source/fixture"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	src := fixture.NewSource(fixedClock)

	config := Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Loader:   loader.New(src, domain.Window7d, loader.WithClock(fixedClock)),
			Totals:   src,
			Currency: "USD",
			Logger:   logger,
		},
	}
	router := ConfigureRouter(config)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "KPIs",
			path:           "/api/v1/assets/kpis",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				env, kpis := decode[api.KPIs](t, body)
				assert.Equal(t, "7d", env.Window)
				assert.Equal(t, "USD", env.Currency)
				assert.InDelta(t, 14712.02, kpis.TotalCost, 1e-6)
				assert.Equal(t, 5, kpis.NodeCount)
				assert.Equal(t, 3, kpis.DiskCount)
			},
		},
		{
			name:           "Rows",
			path:           "/api/v1/assets/rows?type=Disk&search=redis",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				_, rows := decode[[]api.AssetRow](t, body)
				require.Len(t, rows, 1)
				assert.Equal(t, "pvc-production-redis-data", rows[0].Name)
			},
		},
		{
			name:           "Trend",
			path:           "/api/v1/assets/trend?window=14d",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				env, series := decode[[]api.SeriesPoint](t, body)
				assert.Equal(t, "14d", env.Window)
				assert.Len(t, series, 14*4)
			},
		},
		{
			name:           "Totals",
			path:           "/api/v1/assets/totals?window=30d",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				env, totals := decode[api.Totals](t, body)
				assert.Equal(t, "30d", env.Window)
				assert.Nil(t, env.Notification)
				assert.InDelta(t, 14712.02, totals.TotalCost, 1e-6)
			},
		},
		{
			name:           "AssetDetail",
			path:           "/api/v1/assets/" + url.PathEscape("cluster-1/Node/gke-gpu-pool-node-01"),
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				_, detail := decode[api.AssetDetail](t, body)
				assert.Equal(t, "gke-gpu-pool-node-01", detail.Name)
				assert.Len(t, detail.CostBreakdown, 3)
			},
		},
		{
			name:           "InvalidWindow",
			path:           "/api/v1/assets/categories?window=90d",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Refresh",
			method:         http.MethodPost,
			path:           "/api/v1/assets/refresh",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				_, result := decode[api.RefreshResult](t, body)
				assert.Equal(t, 11, result.Assets)
			},
		},
		{
			name:           "DismissNotification",
			method:         http.MethodDelete,
			path:           "/api/v1/notification",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Metrics",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), "asset_atlas_assets_loaded")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			method := tc.method
			if method == "" {
				method = http.MethodGet
			}
			req, err := http.NewRequest(method, testServer.URL+tc.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			if tc.check != nil {
				tc.check(t, body)
			}
		})
	}
}

func decode[T any](t *testing.T, body []byte) (api.Envelope, T) {
	t.Helper()
	var raw struct {
		api.Envelope
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &raw))
	var data T
	require.NoError(t, json.Unmarshal(raw.Data, &data))
	return raw.Envelope, data
}
