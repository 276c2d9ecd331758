package features

import (
	"strings"

	"phoenixgrc/riskmatrix/pkg/config"
)

// Nomes das features conhecidas (sem o prefixo FEATURE_).
const (
	Metrics     = "METRICS"
	ColorOutput = "COLOR_OUTPUT"
)

// IsEnabled verifica se um feature toggle está habilitado. Feature não definida é considerada desabilitada.
func IsEnabled(featureName string) bool {
	enabled, _ := GetFeatureToggleState(featureName)
	return enabled
}

// GetFeatureToggleState retorna o estado de um feature toggle e se ele existe.
func GetFeatureToggleState(featureName string) (enabled bool, exists bool) {
	if config.Cfg.FeatureToggles == nil {
		return false, false
	}
	enabled, exists = config.Cfg.FeatureToggles[strings.ToUpper(featureName)]
	return enabled, exists
}
