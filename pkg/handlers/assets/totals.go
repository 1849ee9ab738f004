package assets

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/de-tools/asset-atlas/pkg/adapters"
	"github.com/de-tools/asset-atlas/pkg/models/api"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/de-tools/asset-atlas/pkg/services/loader"
	"github.com/de-tools/asset-atlas/pkg/services/source"
	"github.com/rs/zerolog"
)

// Totals is the part of source.Source the totals endpoint needs.
type Totals interface {
	FetchTotals(ctx context.Context, window domain.Window, filter string) (float64, error)
}

type TotalsHandler struct {
	totals   Totals
	currency string
}

func NewTotalsHandler(t Totals, currency string) *TotalsHandler {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &TotalsHandler{totals: t, currency: currency}
}

// GetTotals asks the source for the total cost of a window. It does not touch
// the loaded asset set.
func (h *TotalsHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	q := r.URL.Query()

	window := domain.DefaultViewConfig().Window
	if v := q.Get("window"); v != "" {
		win, err := domain.ParseWindow(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		window = win
	}
	currency := h.currency
	if v := q.Get("currency"); v != "" {
		currency = strings.ToUpper(v)
	}

	envelope := api.Envelope{Window: string(window), Currency: currency}

	total, err := h.totals.FetchTotals(ctx, window, q.Get("filter"))
	switch {
	case err == nil:
	case errors.Is(err, source.ErrDataUnavailable):
		envelope.Notification = adapters.MapNotificationDomainToApi(loader.FailureNotification(err))
	case errors.Is(err, context.Canceled):
		logger.Debug().Err(err).Msg("request cancelled while fetching totals")
		return
	case source.IsTransportError(err):
		logger.Error().Err(err).Str("window", string(window)).Msg("totals source failed")
		http.Error(w, "failed to load asset totals", http.StatusBadGateway)
		return
	default:
		logger.Error().Err(err).Str("window", string(window)).Msg("failed to fetch totals")
		http.Error(w, "failed to load asset totals", http.StatusInternalServerError)
		return
	}

	envelope.Data = api.Totals{TotalCost: total}
	writeJSON(w, r, http.StatusOK, envelope)
}
