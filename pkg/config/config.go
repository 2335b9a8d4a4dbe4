package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App AppConfig
	API APIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// APIConfig configuración del backend REST consumido por el cliente.
type APIConfig struct {
	BaseURL        string // origen del backend, ej. http://localhost:4000/api
	TimeoutSeconds int    // timeout de red por petición
	TokenPath      string // ruta del archivo donde se persiste el bearer token
}

// DefaultTokenPath devuelve la ruta por defecto del token bajo el directorio
// de configuración del usuario (ej. ~/.config/inventario-cli/token).
func DefaultTokenPath(appName string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		// Sin directorio de configuración del usuario: caer al directorio actual
		return "." + appName + "_token"
	}
	return filepath.Join(dir, appName, "token")
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, TOKEN_PATH, etc.
// Se lee una sola vez al arranque.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	name := getString(v, "APP_NAME", "inventario-cli")
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     name,
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:4000/api"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
			TokenPath:      getString(v, "TOKEN_PATH", DefaultTokenPath(name)),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
