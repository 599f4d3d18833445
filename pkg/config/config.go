package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Storage StorageConfig
	HTTP    HTTPConfig
	Refresh RefreshConfig
	Order   OrderConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// APIConfig backend remoto del restaurante.
type APIConfig struct {
	BaseURL      string        // ej: http://127.0.0.1:8000/api
	Timeout      time.Duration // por llamada
	RateLimit    float64       // llamadas por segundo; 0 = sin límite
	RateBurst    int
	MaxBodyBytes int64
}

// StorageConfig almacenamiento local durable (token y carrito).
type StorageConfig struct {
	Path string // archivo SQLite; ":memory:" para pruebas
}

// HTTPConfig servidor local que consume la interfaz.
type HTTPConfig struct {
	Host     string
	Port     int
	DocsPath string // swagger.json; vacío o inexistente = sin /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RefreshConfig recarga periódica de carta y promociones.
type RefreshConfig struct {
	Cron string // expresión cron; vacío = deshabilitado
}

// OrderConfig parámetros de negocio del checkout.
type OrderConfig struct {
	DeliveryFee decimal.Decimal
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, STORAGE_PATH, etc.
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

	return fromViper(v)
}

// fromViper construye la Config; separado de Load para poder probarlo con un viper en memoria.
func fromViper(v *viper.Viper) (*Config, error) {
	fee, err := decimal.NewFromString(getString(v, "DELIVERY_FEE", "5"))
	if err != nil {
		return nil, fmt.Errorf("config: DELIVERY_FEE inválido: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "juancho-burger-front"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL:      strings.TrimRight(getString(v, "API_BASE_URL", "http://127.0.0.1:8000/api"), "/"),
			Timeout:      time.Duration(getInt(v, "API_TIMEOUT_SECONDS", 10)) * time.Second,
			RateLimit:    getFloat(v, "API_RATE_LIMIT", 20),
			RateBurst:    getInt(v, "API_RATE_BURST", 10),
			MaxBodyBytes: int64(getInt(v, "API_MAX_BODY_BYTES", 4<<20)),
		},
		Storage: StorageConfig{
			Path: getString(v, "STORAGE_PATH", "juancho-front.db"),
		},
		HTTP: HTTPConfig{
			Host:     getString(v, "HTTP_HOST", "127.0.0.1"),
			Port:     getInt(v, "HTTP_PORT", 3000),
			DocsPath: getString(v, "HTTP_DOCS_PATH", "./docs/swagger.json"),
		},
		Refresh: RefreshConfig{
			Cron: getString(v, "REFRESH_CRON", "@every 5m"),
		},
		Order: OrderConfig{
			DeliveryFee: fee,
		},
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("config: API_BASE_URL es obligatorio")
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = 10 * time.Second
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		if s, ok := v.Get(key).(string); ok {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return def
			}
			return f
		}
		return v.GetFloat64(key)
	}
	return def
}
