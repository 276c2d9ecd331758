package features

import (
	"testing"

	"phoenixgrc/riskmatrix/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestIsEnabled(t *testing.T) {
	original := config.Cfg.FeatureToggles
	t.Cleanup(func() { config.Cfg.FeatureToggles = original })

	config.Cfg.FeatureToggles = nil
	assert.False(t, IsEnabled(Metrics))

	config.Cfg.FeatureToggles = map[string]bool{"METRICS": true, "COLOR_OUTPUT": false}
	assert.True(t, IsEnabled(Metrics))
	assert.True(t, IsEnabled("metrics"), "lookup is case-insensitive")
	assert.False(t, IsEnabled(ColorOutput))

	enabled, exists := GetFeatureToggleState("UNKNOWN")
	assert.False(t, enabled)
	assert.False(t, exists)
}
