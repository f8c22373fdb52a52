package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"googlePlaces": map[string]any{
			"apiKey": "",
		},
		"search": map[string]any{
			"enrichmentBudget": 5,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GOOGLEPLACES_APIKEY", want: "googlePlaces.apiKey"},
		{envKey: "SEARCH_ENRICHMENTBUDGET", want: "search.enrichmentBudget"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}

	ApplyDefaults(cfg)

	assert.Equal(t, "badger", cfg.Cache.Provider)
	assert.True(t, cfg.Cache.Badger.InMemory)
	assert.Equal(t, 30, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	assert.Equal(t, 5, cfg.Search.EnrichmentBudget)
	assert.Equal(t, 7*24*time.Hour, cfg.Nominatim.CacheTTL)
	assert.Equal(t, 1.0, cfg.Nominatim.RatePerSecond)
	assert.Equal(t, 30*time.Second, cfg.Overpass.QueryTimeout)
	assert.Greater(t, cfg.Overpass.ClientPadding, time.Duration(0))
	assert.Equal(t, 24*time.Hour, cfg.GooglePlaces.PlaceIDTTL)
	assert.Equal(t, 6*time.Hour, cfg.GooglePlaces.DetailsTTL)
	assert.Equal(t, 5*time.Minute, cfg.GooglePlaces.FailureTTL)
	assert.Equal(t, 800, cfg.GooglePlaces.PhotoMaxWidth)
	assert.Equal(t, "US", cfg.Leads.DefaultRegion)
	assert.Equal(t, 8, cfg.Auth.MinPasswordLength)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Search: &SearchConfig{DefaultLimit: 50, MaxLimit: 40, EnrichmentBudget: 3},
		Cache:  &CacheConfig{Provider: "redis"},
	}

	ApplyDefaults(cfg)

	assert.Equal(t, "redis", cfg.Cache.Provider)
	assert.Equal(t, 40, cfg.Search.MaxLimit)
	assert.Equal(t, 30, cfg.Search.DefaultLimit, "default above max falls back to the clamped default")
	assert.Equal(t, 3, cfg.Search.EnrichmentBudget)
}
