package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFeatureToggles(t *testing.T) {
	toggles := loadFeatureToggles([]string{
		"PATH=/usr/bin",
		"FEATURE_METRICS=false",
		"FEATURE_beta_matrix=1",
		"FEATURE_BROKEN=maybe",
		"FEATURE_=true",
	})

	assert.False(t, toggles["METRICS"])
	assert.True(t, toggles["COLOR_OUTPUT"], "default is kept when not overridden")
	assert.True(t, toggles["BETA_MATRIX"])
	_, exists := toggles["BROKEN"]
	assert.False(t, exists)
	assert.Len(t, toggles, 3)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FEATURE_METRICS", "false")

	LoadConfig()

	assert.Equal(t, "9090", Cfg.Port)
	assert.Equal(t, "debug", Cfg.LogLevel)
	assert.False(t, Cfg.FeatureToggles["METRICS"])
	assert.NotEmpty(t, Cfg.Environment)
}
