// Package opencost reads asset sets from an OpenCost compatible cost API.
package opencost

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/asset-atlas/pkg/adapters"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	wire "github.com/de-tools/asset-atlas/pkg/models/opencost"
	"github.com/de-tools/asset-atlas/pkg/services/source"
	"github.com/rs/zerolog"
)

const (
	assetsPath       = "/model/assets"
	assetsTotalsPath = "/model/assets/totals"

	defaultTimeout = 30 * time.Second
)

type Source struct {
	baseURL    string
	httpClient *http.Client
}

// SourceFactory builds a live source for the registry.
func SourceFactory(settings source.Settings) (source.Source, error) {
	src, err := NewSource(settings, nil)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// NewSource creates a source for the API at settings.BaseURL. A nil client gets
// a default one with settings.Timeout.
func NewSource(settings source.Settings, client *http.Client) (*Source, error) {
	if settings.BaseURL == "" {
		return nil, fmt.Errorf("opencost base url is required")
	}
	if _, err := url.Parse(settings.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid opencost base url: %w", err)
	}

	if client == nil {
		timeout := settings.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &Source{
		baseURL:    strings.TrimRight(settings.BaseURL, "/"),
		httpClient: client,
	}, nil
}

func (s *Source) FetchAssets(ctx context.Context, q source.Query) (*domain.AssetSet, error) {
	params := url.Values{}
	params.Set("window", string(q.Window))
	if q.Aggregate != "" {
		params.Set("aggregate", q.Aggregate)
	}
	if q.Accumulate != nil {
		params.Set("accumulate", strconv.FormatBool(*q.Accumulate))
	}
	if q.Filter != "" {
		params.Set("filter", q.Filter)
	}

	var resp wire.AssetsResponse
	if err := s.get(ctx, "fetch assets", assetsPath, params, &resp); err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 {
		if resp.Message != "" {
			return nil, &source.UnavailableError{Message: resp.Message}
		}
		return domain.NewAssetSet(), nil
	}

	set := adapters.MapAssetMapToDomain(resp.Data[0])
	zerolog.Ctx(ctx).Debug().
		Str("window", string(q.Window)).
		Int("assets", set.Len()).
		Msg("fetched assets")
	return set, nil
}

func (s *Source) FetchTotals(ctx context.Context, window domain.Window, filter string) (float64, error) {
	params := url.Values{}
	params.Set("window", string(window))
	if filter != "" {
		params.Set("filter", filter)
	}

	var resp wire.TotalsResponse
	if err := s.get(ctx, "fetch assets totals", assetsTotalsPath, params, &resp); err != nil {
		return 0, err
	}

	if resp.Data == nil {
		if resp.Message != "" {
			return 0, &source.UnavailableError{Message: resp.Message}
		}
		return 0, nil
	}
	return resp.Data.TotalCost, nil
}

func (s *Source) get(ctx context.Context, op, path string, params url.Values, out interface{}) error {
	endpoint := fmt.Sprintf("%s%s?%s", s.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &source.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return &source.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &source.TransportError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &source.TransportError{Op: op, Err: fmt.Errorf("%w: %v", source.ErrMalformedResponse, err)}
	}
	return nil
}
