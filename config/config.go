package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost      string
	ServerPort      string
	ShutdownTimeout time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string

	// CORS configuration
	CORSAllowedOrigins []string

	// TrustedProxies lists the proxy IPs or CIDRs whose forwarding headers
	// are believed. Empty means the peer address is the client address.
	TrustedProxies []string

	// Number of days in a generated diet plan
	PlanDays int

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Rate limiting, backed by redis
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

var defaults = map[string]interface{}{
	"server_host":          "0.0.0.0",
	"server_port":          "5000",
	"shutdown_timeout":     "10s",
	"log_level":            "info",
	"log_format":           "console",
	"cors_allowed_origins": "*",
	"trusted_proxies":      "",
	"plan_days":            7,
	"redis_url":            "",
	"redis_host":           "localhost",
	"redis_port":           "6379",
	"redis_password":       "",
	"redis_db":             0,
	"rate_limit_enabled":   false,
	"rate_limit_requests":  100,
	"rate_limit_window":    "1m",
}

// LoadConfig reads configuration from defaults, an optional config.yaml and
// the environment, in increasing priority. A .env file in the working
// directory is loaded into the environment first.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg, err := fromViper(v)
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// fromViper applies defaults and environment overrides to v and builds a Config.
func fromViper(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	shutdown, err := parseDuration(v, "shutdown_timeout")
	if err != nil {
		return nil, err
	}
	window, err := parseDuration(v, "rate_limit_window")
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment:        GetEnvironment(),
		ServerHost:         v.GetString("server_host"),
		ServerPort:         v.GetString("server_port"),
		ShutdownTimeout:    shutdown,
		LogLevel:           strings.ToLower(v.GetString("log_level")),
		LogFormat:          strings.ToLower(v.GetString("log_format")),
		CORSAllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
		TrustedProxies:     splitList(v.GetString("trusted_proxies")),
		PlanDays:           v.GetInt("plan_days"),
		RedisURL:           v.GetString("redis_url"),
		RedisHost:          v.GetString("redis_host"),
		RedisPort:          v.GetString("redis_port"),
		RedisPassword:      v.GetString("redis_password"),
		RedisDB:            v.GetInt("redis_db"),
		RateLimitEnabled:   v.GetBool("rate_limit_enabled"),
		RateLimitRequests:  v.GetInt("rate_limit_requests"),
		RateLimitWindow:    window,
	}, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, ValidationError{Field: strings.ToUpper(key), Message: fmt.Sprintf("invalid duration %q", v.GetString(key))}
	}
	return d, nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}
