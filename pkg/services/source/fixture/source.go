// Package fixture serves a static asset catalogue in place of a live cost API.
package fixture

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"github.com/de-tools/asset-atlas/pkg/adapters"
	"github.com/de-tools/asset-atlas/pkg/models/domain"
	wire "github.com/de-tools/asset-atlas/pkg/models/opencost"
	"github.com/de-tools/asset-atlas/pkg/services/source"
)

// dailyVariance bounds how far a day's cost may drift from the window average.
const dailyVariance = 0.1

type Source struct {
	now func() time.Time
}

// SourceFactory builds a fixture source for the registry; settings are unused.
func SourceFactory(_ source.Settings) (source.Source, error) {
	return NewSource(nil), nil
}

// NewSource returns a fixture source. A nil clock means time.Now.
func NewSource(now func() time.Time) *Source {
	if now == nil {
		now = time.Now
	}
	return &Source{now: now}
}

// FetchAssets returns the catalogue with daily costs for the window. Aggregate
// and filter parameters are ignored.
func (s *Source) FetchAssets(ctx context.Context, q source.Query) (*domain.AssetSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return adapters.MapAssetMapToDomain(s.assetMap(q.Window)), nil
}

func (s *Source) FetchTotals(ctx context.Context, window domain.Window, _ string) (float64, error) {
	set, err := s.FetchAssets(ctx, source.Query{Window: window})
	if err != nil {
		return 0, err
	}

	var total float64
	set.Each(func(_ string, a domain.Asset) bool {
		total += a.Cost()
		return true
	})
	return total, nil
}

// Response wraps the catalogue in the /model/assets envelope, for serving the
// fixture over HTTP.
func (s *Source) Response(window domain.Window) wire.AssetsResponse {
	return wire.AssetsResponse{
		Code:   200,
		Status: "success",
		Data:   []wire.AssetMap{s.assetMap(window)},
	}
}

func (s *Source) assetMap(window domain.Window) wire.AssetMap {
	now := s.now().UTC()
	days := window.Days(now)
	end := now.Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	items := catalogue()
	m := make(wire.AssetMap, 0, len(items))
	for _, item := range items {
		r := item.record
		r.Start = &start
		r.End = &end
		r.Minutes = float64(days * 24 * 60)
		r.CPUCoreHours = r.CPUCores * float64(days*24)
		r.RAMByteHours = r.RAMBytes * float64(days*24)
		r.GPUHours = r.GPUCount * float64(days*24)
		r.DailyData = dailyData(item.key, *r.TotalCost, start, days)
		m = append(m, wire.AssetEntry{Key: item.key, Record: r})
	}
	return m
}

// dailyData spreads total over days with a bounded, per-asset deterministic
// variance.
func dailyData(key string, total float64, start time.Time, days int) []wire.DailyData {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	rng := rand.New(rand.NewPCG(h.Sum64(), uint64(start.Unix())))

	out := make([]wire.DailyData, 0, days)
	for i := 0; i < days; i++ {
		variance := 1 + (rng.Float64()-0.5)*2*dailyVariance
		out = append(out, wire.DailyData{
			Date: start.AddDate(0, 0, i).Format("2006-01-02"),
			Cost: total * variance / float64(days),
		})
	}
	return out
}
