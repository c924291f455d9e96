package config

import (
	"testing"
	"time"

	"github.com/SscSPs/leave_tracker_app/internal/core/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseViper() *viper.Viper {
	v := viper.New()
	v.Set("STORAGE_BACKEND", StorageMemory)
	v.Set("PORT", "8080")
	v.Set("DB_SCHEMA", "public")
	v.Set("CORS_ORIGINS", "")
	v.Set("RATE_LIMIT", "60-M")
	v.Set("APP_TIMEZONE", "UTC")
	v.Set("LEAVE_DEFAULT_DAILY_CAP", 7)
	v.Set("LEAVE_REDUCED_DAILY_CAP", 3)
	v.Set("LEAVE_ANCHOR_EMPLOYEES", "ayca_cisem")
	v.Set("LEAVE_EXCLUSIVE_PAIRS", "rabia:ayca_demir")
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(baseViper())
	require.NoError(t, err)

	assert.Equal(t, DefaultCORSOrigins, cfg.CORSOrigins)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, domain.DefaultSchedulingPolicy(), cfg.Policy)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestFromViper_Overrides(t *testing.T) {
	v := baseViper()
	v.Set("CORS_ORIGINS", " http://a.example , http://b.example ,")
	v.Set("LEAVE_DEFAULT_DAILY_CAP", 5)
	v.Set("LEAVE_ANCHOR_EMPLOYEES", "enis,onur")
	v.Set("LEAVE_EXCLUSIVE_PAIRS", "")
	v.Set("APP_TIMEZONE", "Europe/Istanbul")
	v.Set("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.1")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.1"}, cfg.TrustedProxies)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 5, cfg.Policy.DefaultDailyCap)
	assert.Equal(t, []string{"enis", "onur"}, cfg.Policy.AnchorEmployeeIDs)
	assert.Empty(t, cfg.Policy.ExclusivePairs)
	assert.Equal(t, "Europe/Istanbul", cfg.Location.String())
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "timezone", key: "APP_TIMEZONE", value: "Mars/Olympus"},
		{name: "pair", key: "LEAVE_EXCLUSIVE_PAIRS", value: "rabia"},
		{name: "cap", key: "LEAVE_REDUCED_DAILY_CAP", value: 0},
		{name: "backend", key: "STORAGE_BACKEND", value: "sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := baseViper()
			v.Set(tt.key, tt.value)
			_, err := fromViper(v)
			assert.Error(t, err)
		})
	}
}
