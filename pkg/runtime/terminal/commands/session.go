package commands

import (
	"context"

	"github.com/de-tools/asset-atlas/pkg/adapters"
	"github.com/de-tools/asset-atlas/pkg/models/api"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/de-tools/asset-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/asset-atlas/pkg/services/config"
	"github.com/de-tools/asset-atlas/pkg/services/loader"
)

// View is a loaded asset set together with the view state it was loaded for.
type View struct {
	Config   domain.ViewConfig
	Snapshot loader.Snapshot
	// ReportedTotal is the source's own total for the window, nil when it
	// could not be fetched.
	ReportedTotal *float64
}

// Session resolves configuration, loads assets and renders reports for the
// subcommands.
type Session interface {
	View(ctx context.Context) (View, error)
	Profiles(ctx context.Context) ([]config.Profile, error)
	Reporter() (*export.Reporter, error)
}

func envelope(v View, data interface{}) api.Envelope {
	env := api.Envelope{
		Window:       string(v.Config.Window),
		Currency:     v.Config.Currency,
		Notification: adapters.MapNotificationDomainToApi(v.Snapshot.Notification),
		Data:         data,
	}
	if !v.Snapshot.LoadedAt.IsZero() {
		loadedAt := v.Snapshot.LoadedAt
		env.LoadedAt = &loadedAt
	}
	return env
}

func render(ctx context.Context, s Session, build func(v View) *export.Report) error {
	v, err := s.View(ctx)
	if err != nil {
		return err
	}
	reporter, err := s.Reporter()
	if err != nil {
		return err
	}
	return reporter.Handle(build(v))
}
