package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Source    SourceConfig
	Directory DirectoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SourceConfig origen estático de la colección de empresas.
type SourceConfig struct {
	URL            string // endpoint que devuelve el arreglo JSON de empresas (obligatorio)
	TimeoutSeconds int    // timeout de la descarga inicial
}

// DirectoryConfig comportamiento del listado.
type DirectoryConfig struct {
	PageSize   int // tamaño fijo de página
	DebounceMS int // ventana de inactividad del texto de búsqueda
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SOURCE_URL, etc.
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

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "companies-directory"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Source: SourceConfig{
			URL:            getString(v, "SOURCE_URL", ""),
			TimeoutSeconds: getInt(v, "SOURCE_TIMEOUT_SECONDS", 15),
		},
		Directory: DirectoryConfig{
			PageSize:   getInt(v, "DIRECTORY_PAGE_SIZE", 8),
			DebounceMS: getInt(v, "SEARCH_DEBOUNCE_MS", 300),
		},
	}

	if cfg.Source.URL == "" {
		return nil, fmt.Errorf("SOURCE_URL es obligatoria (endpoint del JSON de empresas)")
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
