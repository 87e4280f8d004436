package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MihaiKuro/asd/internal/analytics"
	httpapi "github.com/MihaiKuro/asd/internal/api/http"
	"github.com/MihaiKuro/asd/internal/apisrv/auth"
	"github.com/MihaiKuro/asd/internal/cache"
	"github.com/MihaiKuro/asd/internal/messaging"
	"github.com/MihaiKuro/asd/internal/store"
	"github.com/MihaiKuro/asd/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config     `mapstructure:"mysql"`
	Logger    log.Config       `mapstructure:"logger"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Auth      auth.Config      `mapstructure:"auth"`
	Analytics analytics.Config `mapstructure:"analytics"`
	Events    messaging.Config `mapstructure:"events"`
	Cache     cache.Config     `mapstructure:"cache"`
}

// LoadEnvFile loads KEY=VALUE pairs into the process environment.
// Variables that are already set are left untouched.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn,
// the common ones are also bound to flat names like MYSQL_DSN.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			// continue with env vars only when the file is missing
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/asd")
		v.AddConfigPath("/etc/asd")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// HTTP_ALLOWED_ORIGINS and EVENTS_BROKERS come in as a single comma separated string
	config.HTTP.AllowedOrigins = splitList(config.HTTP.AllowedOrigins)
	config.Events.Brokers = splitList(config.Events.Brokers)

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

func splitList(in []string) []string {
	var out []string
	for _, s := range in {
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// dsnFromEnv builds a DSN out of MYSQL_HOST, MYSQL_PORT, MYSQL_USER,
// MYSQL_PASSWORD and MYSQL_DATABASE. TLS is on when a CA path is given.
func dsnFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	database := os.Getenv("MYSQL_DATABASE")
	if host == "" || user == "" || database == "" {
		return ""
	}
	port := os.Getenv("MYSQL_PORT")
	if port == "" {
		port = "3306"
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
		user, password, host, port, database)
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		dsn += "&tls=custom"
	}
	return dsn
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")
	v.BindEnv("http.rate_limit", "HTTP_RATE_LIMIT")
	v.BindEnv("http.rate_window", "HTTP_RATE_WINDOW")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET", "JWT_SECRET")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// Analytics
	v.BindEnv("analytics.timezone", "ANALYTICS_TIMEZONE")
	v.BindEnv("analytics.default_period", "ANALYTICS_DEFAULT_PERIOD")
	v.BindEnv("analytics.default_limit", "ANALYTICS_DEFAULT_LIMIT")
	v.BindEnv("analytics.overview_days", "ANALYTICS_OVERVIEW_DAYS")

	// Events
	v.BindEnv("events.brokers", "EVENTS_BROKERS", "KAFKA_BROKERS")
	v.BindEnv("events.topic", "EVENTS_TOPIC")
	v.BindEnv("events.write_timeout", "EVENTS_WRITE_TIMEOUT")

	// Cache
	v.BindEnv("cache.categories_ttl", "CACHE_CATEGORIES_TTL")
}
