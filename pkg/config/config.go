package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	DataService DataServiceConfig
	UI          UIConfig
	Log         LogConfig
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

// DataServiceConfig servicio REST de productos y categorías.
type DataServiceConfig struct {
	BaseURL string        // ej. http://localhost:3001
	Timeout time.Duration // por petición
}

// UIConfig parámetros de presentación.
type UIConfig struct {
	PageSize      int           // filas por página del catálogo
	DateLayout    string        // layout Go para día/mes/año
	RedirectDelay time.Duration // espera antes de volver al catálogo tras guardar
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATA_SERVICE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de Viper ya preparada.
func FromViper(v *viper.Viper) (*Config, error) {
	timeout, err := getDuration(v, "DATA_SERVICE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	redirect, err := getDuration(v, "UI_REDIRECT_DELAY", 2*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-web"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		DataService: DataServiceConfig{
			BaseURL: strings.TrimRight(getString(v, "DATA_SERVICE_URL", "http://localhost:3001"), "/"),
			Timeout: timeout,
		},
		UI: UIConfig{
			PageSize:      getInt(v, "UI_PAGE_SIZE", 5),
			DateLayout:    getString(v, "UI_DATE_LAYOUT", "02/01/2006"),
			RedirectDelay: redirect,
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if cfg.UI.PageSize <= 0 {
		return nil, fmt.Errorf("UI_PAGE_SIZE debe ser mayor que 0, recibido %d", cfg.UI.PageSize)
	}
	if cfg.DataService.BaseURL == "" {
		return nil, fmt.Errorf("DATA_SERVICE_URL es obligatorio")
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) (time.Duration, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	if d, ok := v.Get(key).(time.Duration); ok {
		return d, nil
	}
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("%s: duración inválida %q: %w", key, v.GetString(key), err)
	}
	return d, nil
}
