package source

import (
	"context"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/stretchr/testify/mock"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) FetchAssets(ctx context.Context, q Query) (*domain.AssetSet, error) {
	args := m.Called(ctx, q)
	set, _ := args.Get(0).(*domain.AssetSet)
	return set, args.Error(1)
}

func (m *mockSource) FetchTotals(ctx context.Context, window domain.Window, filter string) (float64, error) {
	args := m.Called(ctx, window, filter)
	return args.Get(0).(float64), args.Error(1)
}

func oneAsset(key string) *domain.AssetSet {
	set := domain.NewAssetSet()
	set.Add(key, domain.Asset{Type: domain.AssetTypeNode})
	return set
}
