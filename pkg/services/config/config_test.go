package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/asset-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "opencost", cfg.Source.Kind)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout)
	assert.False(t, cfg.Source.Fallback)
	assert.Equal(t, domain.Window7d, cfg.Window())
	assert.Equal(t, "USD", cfg.View.Currency)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, "assets.yaml", `
server:
  port: "9090"
source:
  kind: fixture
  base_url: http://opencost:9003
  timeout: 5s
view:
  window: 30d
  currency: EUR
`)
	t.Setenv("ASSETS_SOURCE_FALLBACK", "true")
	t.Setenv("ASSETS_VIEW_CURRENCY", "GBP")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "fixture", cfg.Source.Kind)
	assert.Equal(t, "http://opencost:9003", cfg.Source.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
	assert.True(t, cfg.Source.Fallback)
	assert.Equal(t, domain.Window30d, cfg.Window())
	assert.Equal(t, "GBP", cfg.View.Currency)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad window", content: "view:\n  window: 90d\n"},
		{name: "bad refresh", content: "refresh:\n  rate: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "assets.yaml", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	path := writeFile(t, ProfilesFile, `
[production]
url = https://opencost.prod.example.com
currency = EUR

[staging]
url = http://opencost.staging:9003
`)
	registry, err := NewRegistry(path)
	require.NoError(t, err)
	ctx := context.Background()

	profiles, err := registry.GetProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"production", "staging"}, profiles)

	p, err := registry.GetProfile(ctx, "production")
	require.NoError(t, err)
	assert.Equal(t, Profile{Name: "production", URL: "https://opencost.prod.example.com", Currency: "EUR"}, p)

	_, err = registry.GetProfile(ctx, "missing")
	assert.EqualError(t, err, "profile missing not found")

	cfg, err := Load("")
	require.NoError(t, err)
	staging, err := registry.GetProfile(ctx, "staging")
	require.NoError(t, err)
	cfg.ApplyProfile(staging)
	assert.Equal(t, "http://opencost.staging:9003", cfg.Source.BaseURL)
	assert.Equal(t, "USD", cfg.View.Currency)
}
