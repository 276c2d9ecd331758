package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const featurePrefix = "FEATURE_"

// AppConfig detém a configuração da aplicação.
// O catálogo de controles e os valores base do cenário não são configuráveis.
type AppConfig struct {
	Port           string
	Environment    string // "development", "staging", "production"
	LogLevel       string
	AppVersion     string
	GinMode        string
	FeatureToggles map[string]bool
}

// Cfg é a configuração global, preenchida por LoadConfig.
var Cfg AppConfig

// defaultFeatureToggles são os valores usados quando a variável FEATURE_<NOME> não está definida.
var defaultFeatureToggles = map[string]bool{
	"METRICS":      true,
	"COLOR_OUTPUT": true,
}

// LoadConfig carrega a configuração da aplicação de variáveis de ambiente.
func LoadConfig() {
	// Carregar .env para desenvolvimento local, ignorar erro se não existir (para produção)
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: Arquivo .env não encontrado ou erro ao carregar:", err)
	}

	Cfg.Port = getEnv("PORT", "8080")
	Cfg.Environment = getEnv("ENVIRONMENT", "development")
	Cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	Cfg.AppVersion = getEnv("APP_VERSION", "unknown")
	Cfg.GinMode = getEnv("GIN_MODE", "debug")
	Cfg.FeatureToggles = loadFeatureToggles(os.Environ())
}

// loadFeatureToggles parte dos defaults e aplica as variáveis FEATURE_* encontradas.
// Os nomes são armazenados sem o prefixo, em maiúsculas.
func loadFeatureToggles(environ []string) map[string]bool {
	toggles := make(map[string]bool, len(defaultFeatureToggles))
	for name, enabled := range defaultFeatureToggles {
		toggles[name] = enabled
	}
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, featurePrefix) {
			continue
		}
		name := strings.ToUpper(strings.TrimPrefix(key, featurePrefix))
		if name == "" {
			continue
		}
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			log.Printf("Aviso: feature toggle '%s' com valor inválido '%s', ignorando. Erro: %v", key, value, err)
			continue
		}
		toggles[name] = enabled
	}
	return toggles
}

// getEnv retorna o valor de uma variável de ambiente ou um valor default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
