// Package loader owns the current asset set of a view and sequences the loads
// that replace it.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/de-tools/asset-atlas/pkg/metrics"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/de-tools/asset-atlas/pkg/services/source"
	"github.com/rs/zerolog"
)

// ErrStale is returned by Load when a newer load started before this one
// finished. The result has been discarded.
var ErrStale = errors.New("stale load discarded")

const (
	NotificationError = "error"

	titleUnavailable = "Data unavailable"
	titleFailed      = "Failed to load assets data"
)

// Snapshot is a consistent copy of the loader state.
type Snapshot struct {
	Window       domain.Window
	Assets       *domain.AssetSet
	Notification *domain.Notification
	LoadedAt     time.Time
	Seq          uint64
}

type Loader struct {
	src source.Source
	now func() time.Time

	mu           sync.Mutex
	seq          uint64
	cancel       context.CancelFunc
	window       domain.Window
	assets       *domain.AssetSet
	notification *domain.Notification
	loadedAt     time.Time
	appliedSeq   uint64
}

type Option func(*Loader)

// WithClock overrides the clock used for LoadedAt.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.now = now
	}
}

func New(src source.Source, window domain.Window, opts ...Option) *Loader {
	l := &Loader{
		src:    src,
		now:    time.Now,
		window: window,
		assets: domain.NewAssetSet(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches the assets of window and makes them current. Starting a load
// cancels the one in flight. Data-unavailable and transport failures reset
// the set to empty, record a notification and are returned to the caller.
func (l *Loader) Load(ctx context.Context, window domain.Window) (Snapshot, error) {
	logger := zerolog.Ctx(ctx)

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.seq++
	seq := l.seq
	loadCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()
	defer cancel()

	logger.Debug().Uint64("seq", seq).Str("window", string(window)).Msg("loading assets")

	set, err := l.src.FetchAssets(loadCtx, source.Query{
		Window:     window,
		Accumulate: source.Accumulate(true),
	})

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.seq {
		metrics.StaleResponsesTotal.Inc()
		logger.Debug().Uint64("seq", seq).Uint64("latest", l.seq).Msg("discarding stale assets load")
		return l.snapshot(), ErrStale
	}
	l.cancel = nil

	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return l.snapshot(), err
		}
		l.apply(seq, window, domain.NewAssetSet(), FailureNotification(err))
		logger.Error().Err(err).Str("window", string(window)).Msg("failed to load assets")
		return l.snapshot(), fmt.Errorf("load assets for %s: %w", window, err)
	}

	if set == nil {
		set = domain.NewAssetSet()
	}
	l.apply(seq, window, set, nil)
	logger.Info().Int("assets", set.Len()).Str("window", string(window)).Msg("assets loaded")
	return l.snapshot(), nil
}

// Refresh reloads the window of the last applied load.
func (l *Loader) Refresh(ctx context.Context) (Snapshot, error) {
	l.mu.Lock()
	window := l.window
	l.mu.Unlock()
	return l.Load(ctx, window)
}

// Snapshot returns the current state. The asset set is shared and must not be
// modified.
func (l *Loader) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

// Dismiss clears the current notification.
func (l *Loader) Dismiss() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notification = nil
}

func (l *Loader) apply(seq uint64, window domain.Window, set *domain.AssetSet, n *domain.Notification) {
	l.window = window
	l.assets = set
	l.notification = n
	l.loadedAt = l.now()
	l.appliedSeq = seq
	metrics.AssetsLoaded.Set(float64(set.Len()))
}

func (l *Loader) snapshot() Snapshot {
	s := Snapshot{
		Window:   l.window,
		Assets:   l.assets,
		LoadedAt: l.loadedAt,
		Seq:      l.appliedSeq,
	}
	if l.notification != nil {
		n := *l.notification
		s.Notification = &n
	}
	return s
}

// FailureNotification describes a failed fetch the way the view shows it.
func FailureNotification(err error) *domain.Notification {
	var unavailable *source.UnavailableError
	if errors.As(err, &unavailable) {
		return &domain.Notification{
			Kind:     NotificationError,
			Title:    titleUnavailable,
			Subtitle: unavailable.Message,
		}
	}
	return &domain.Notification{
		Kind:     NotificationError,
		Title:    titleFailed,
		Subtitle: err.Error(),
	}
}
