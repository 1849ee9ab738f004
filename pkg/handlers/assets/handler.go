package assets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/de-tools/asset-atlas/pkg/adapters"
	"github.com/de-tools/asset-atlas/pkg/models/api"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/de-tools/asset-atlas/pkg/services/assets"
	"github.com/de-tools/asset-atlas/pkg/services/loader"
	"github.com/de-tools/asset-atlas/pkg/services/source"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Loader is the part of loader.Loader the handlers need.
type Loader interface {
	Load(ctx context.Context, window domain.Window) (loader.Snapshot, error)
	Refresh(ctx context.Context) (loader.Snapshot, error)
	Snapshot() loader.Snapshot
	Dismiss()
}

type Handler struct {
	loader   Loader
	currency string
	limiter  *rate.Limiter
}

// NewHandler serves views of the loader's asset set. currency is used when a
// request does not name one; limiter bounds manual refreshes.
func NewHandler(l Loader, currency string, limiter *rate.Limiter) *Handler {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &Handler{loader: l, currency: currency, limiter: limiter}
}

func (h *Handler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, func(set *domain.AssetSet, _ domain.ViewConfig) interface{} {
		return adapters.MapKPIsDomainToApi(assets.ComputeKPIs(set))
	})
}

func (h *Handler) ListRows(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, func(set *domain.AssetSet, cfg domain.ViewConfig) interface{} {
		return adapters.MapViewRowsDomainToApi(assets.TableRows(set, cfg))
	})
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, func(set *domain.AssetSet, _ domain.ViewConfig) interface{} {
		return adapters.MapCategoriesDomainToApi(assets.ByCategory(set))
	})
}

func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, func(set *domain.AssetSet, _ domain.ViewConfig) interface{} {
		return adapters.MapSeriesDomainToApi(assets.ByTypeAndDate(set))
	})
}

func (h *Handler) GetTreemap(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, func(set *domain.AssetSet, _ domain.ViewConfig) interface{} {
		return adapters.MapTreemapDomainToApi(assets.ByAsset(set))
	})
}

func (h *Handler) GetTabs(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, func(set *domain.AssetSet, _ domain.ViewConfig) interface{} {
		return adapters.MapTabsDomainToApi(assets.CountByTab(set))
	})
}

// GetAsset serves the detail panel of one asset. Keys contain slashes and must
// be path-escaped by the client.
func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	key, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil {
		http.Error(w, "invalid asset key", http.StatusBadRequest)
		return
	}

	cfg, snap, ok := h.load(w, r)
	if !ok {
		return
	}

	asset, found := snap.Assets.Get(key)
	if !found {
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	}
	h.writeEnvelope(w, r, cfg, snap,
		adapters.MapAssetDetailDomainToApi(key, asset, assets.DefaultMaxLabels))
}

func (h *Handler) ListWindows(w http.ResponseWriter, r *http.Request) {
	options := make([]api.WindowOption, 0, len(domain.Windows))
	for _, win := range domain.Windows {
		options = append(options, api.WindowOption{ID: string(win), Label: win.Label()})
	}
	writeJSON(w, r, http.StatusOK, options)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if h.limiter != nil && !h.limiter.Allow() {
		logger.Warn().Msg("refresh rate limit exceeded")
		http.Error(w, "too many refresh requests", http.StatusTooManyRequests)
		return
	}

	snap, err := h.loader.Refresh(ctx)
	if !h.handleLoadError(w, r, err) {
		return
	}

	cfg := domain.ViewConfig{Window: snap.Window, Currency: h.currency}
	h.writeEnvelope(w, r, cfg, snap, api.RefreshResult{Assets: snap.Assets.Len()})
}

func (h *Handler) DismissNotification(w http.ResponseWriter, _ *http.Request) {
	h.loader.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}

type projection func(set *domain.AssetSet, cfg domain.ViewConfig) interface{}

func (h *Handler) serveView(w http.ResponseWriter, r *http.Request, project projection) {
	cfg, snap, ok := h.load(w, r)
	if !ok {
		return
	}
	h.writeEnvelope(w, r, cfg, snap, project(snap.Assets, cfg))
}

// load resolves the view config of the request and makes sure the loader
// holds its window, loading it when needed. A load overtaken by a request for
// another window answers 409 rather than serving that window's assets.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (domain.ViewConfig, loader.Snapshot, bool) {
	cfg, err := h.viewConfig(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return cfg, loader.Snapshot{}, false
	}

	snap := h.loader.Snapshot()
	if snap.Seq != 0 && snap.Window == cfg.Window {
		return cfg, snap, true
	}

	snap, err = h.loader.Load(r.Context(), cfg.Window)
	if errors.Is(err, loader.ErrStale) && snap.Window != cfg.Window {
		zerolog.Ctx(r.Context()).Debug().
			Str("window", string(cfg.Window)).
			Str("current", string(snap.Window)).
			Msg("load superseded by another window")
		http.Error(w, "window changed by a newer request", http.StatusConflict)
		return cfg, snap, false
	}
	if !h.handleLoadError(w, r, err) {
		return cfg, snap, false
	}
	return cfg, snap, true
}

// handleLoadError reports whether the request can still be served. Data
// unavailable answers are served with their notification.
func (h *Handler) handleLoadError(w http.ResponseWriter, r *http.Request, err error) bool {
	logger := zerolog.Ctx(r.Context())

	switch {
	case err == nil, errors.Is(err, loader.ErrStale), errors.Is(err, source.ErrDataUnavailable):
		return true
	case errors.Is(err, context.Canceled):
		logger.Debug().Err(err).Msg("request cancelled while loading assets")
		return false
	case source.IsTransportError(err):
		logger.Error().Err(err).Msg("assets source failed")
		http.Error(w, "failed to load assets data", http.StatusBadGateway)
		return false
	default:
		logger.Error().Err(err).Msg("failed to load assets")
		http.Error(w, "failed to load assets data", http.StatusInternalServerError)
		return false
	}
}

func (h *Handler) viewConfig(r *http.Request) (domain.ViewConfig, error) {
	q := r.URL.Query()
	cfg := domain.DefaultViewConfig()
	cfg.Currency = h.currency

	if v := q.Get("window"); v != "" {
		win, err := domain.ParseWindow(v)
		if err != nil {
			return cfg, err
		}
		cfg.Window = win
	} else if snap := h.loader.Snapshot(); snap.Window != "" {
		cfg.Window = snap.Window
	}
	if v := q.Get("currency"); v != "" {
		cfg.Currency = strings.ToUpper(v)
	}
	if v := q.Get("type"); v != "" {
		cfg.SelectedFilter = v
	}
	cfg.SearchText = q.Get("search")
	return cfg, nil
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, r *http.Request, cfg domain.ViewConfig, snap loader.Snapshot, data interface{}) {
	envelope := api.Envelope{
		Window:       string(cfg.Window),
		Currency:     cfg.Currency,
		Notification: adapters.MapNotificationDomainToApi(snap.Notification),
		Data:         data,
	}
	if !snap.LoadedAt.IsZero() {
		loadedAt := snap.LoadedAt
		envelope.LoadedAt = &loadedAt
	}
	writeJSON(w, r, http.StatusOK, envelope)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
