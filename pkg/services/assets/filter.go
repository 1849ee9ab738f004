// Package assets derives the table, chart and tile view models from an asset
// set. Every function here is pure and total: missing fields are defaulted and
// the inputs are never modified.
package assets

import (
	"strings"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
)

// Filter narrows the set by exact type and by a case-insensitive search over
// name, type, provider and cluster. An empty or "all" typeFilter and an empty
// search leave the set unchanged. The result keeps the source order.
func Filter(set *domain.AssetSet, typeFilter string, search string) *domain.AssetSet {
	result := domain.NewAssetSet()
	needle := strings.ToLower(search)

	set.Each(func(key string, asset domain.Asset) bool {
		if !matchesType(asset, typeFilter) {
			return true
		}
		if needle != "" && !matchesSearch(key, asset, needle) {
			return true
		}
		result.Add(key, asset)
		return true
	})

	return result
}

// FilterConfig applies the filter and search text of a view config.
func FilterConfig(set *domain.AssetSet, cfg domain.ViewConfig) *domain.AssetSet {
	return Filter(set, cfg.SelectedFilter, cfg.SearchText)
}

// ByType splits the set into one subset per known type plus the full set under
// "all". Assets of other types only appear under "all".
func ByType(set *domain.AssetSet) map[string]*domain.AssetSet {
	groups := map[string]*domain.AssetSet{domain.FilterAll: set}
	for _, t := range domain.KnownAssetTypes {
		groups[string(t)] = domain.NewAssetSet()
	}

	set.Each(func(key string, asset domain.Asset) bool {
		if g, ok := groups[string(asset.Type)]; ok && asset.Type.Known() {
			g.Add(key, asset)
		}
		return true
	})
	return groups
}

func matchesType(asset domain.Asset, typeFilter string) bool {
	if typeFilter == "" || typeFilter == domain.FilterAll {
		return true
	}
	return string(asset.Type) == typeFilter
}

func matchesSearch(key string, asset domain.Asset, needle string) bool {
	fields := []string{
		searchName(key, asset),
		string(asset.Type),
		asset.Provider(),
		asset.Cluster(),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func searchName(key string, asset domain.Asset) string {
	if name := asset.Name(); name != "" {
		return name
	}
	if seg := domain.LastKeySegment(key); seg != "" {
		return seg
	}
	return key
}
