package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/asset-atlas/pkg/handlers/assets"
	assetmiddleware "github.com/de-tools/asset-atlas/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Loader   handlers.Loader
	Totals   handlers.Totals
	Currency string
	Logger   zerolog.Logger
}

// RefreshLimit bounds POST /assets/refresh to Rate requests per second with
// bursts of Burst. A zero Rate disables the limit.
type RefreshLimit struct {
	Rate  float64
	Burst int
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Refresh         RefreshLimit
	Dependencies    Dependencies
}

func ConfigureRouter(config Config) *chi.Mux {
	var limiter *rate.Limiter
	if config.Refresh.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.Refresh.Rate), max(config.Refresh.Burst, 1))
	}
	assetsHandler := handlers.NewHandler(config.Dependencies.Loader, config.Dependencies.Currency, limiter)
	totalsHandler := handlers.NewTotalsHandler(config.Dependencies.Totals, config.Dependencies.Currency)

	router := chi.NewRouter()

	router.Use(assetmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/windows", assetsHandler.ListWindows)
		r.Delete("/notification", assetsHandler.DismissNotification)

		r.Route("/assets", func(r chi.Router) {
			r.Get("/kpis", assetsHandler.GetKPIs)
			r.Get("/rows", assetsHandler.ListRows)
			r.Get("/categories", assetsHandler.GetCategories)
			r.Get("/trend", assetsHandler.GetTrend)
			r.Get("/treemap", assetsHandler.GetTreemap)
			r.Get("/tabs", assetsHandler.GetTabs)
			r.Get("/totals", totalsHandler.GetTotals)
			r.Post("/refresh", assetsHandler.Refresh)
			r.Get("/{key}", assetsHandler.GetAsset)
		})
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
