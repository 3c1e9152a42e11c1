//go:build !integration

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RNG_SEED", "")
	t.Setenv("AT_RISK_SCALING", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(0), cfg.Data.Seed)
	assert.Equal(t, "", cfg.Data.AtRiskScaling)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.Server.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RNG_SEED", "1234")
	t.Setenv("AT_RISK_SCALING", "Population")
	t.Setenv("CORS_ORIGINS", " http://a , ,http://b")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, int64(1234), cfg.Data.Seed)
	assert.Equal(t, "population", cfg.Data.AtRiskScaling)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.Server.CORSOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("RNG_SEED", "abc")
	_, err := Load()
	assert.EqualError(t, err, "invalid rng seed")

	t.Setenv("RNG_SEED", "")
	t.Setenv("AT_RISK_SCALING", "double")
	_, err = Load()
	assert.EqualError(t, err, "invalid at-risk scaling mode")
}
