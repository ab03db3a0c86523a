package config

import (
	"errors"
	"fmt"
	"net"
	"slices"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "console"}
)

const maxPlanDays = 31

// ValidateConfig checks every field and reports all problems at once.
func ValidateConfig(cfg *Config) error {
	var errs []error
	fail := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.ServerHost == "" {
		fail("SERVER_HOST", "must not be empty")
	}
	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		fail("SERVER_PORT", "must be a port number, got %q", cfg.ServerPort)
	}
	if cfg.ShutdownTimeout <= 0 {
		fail("SHUTDOWN_TIMEOUT", "must be positive")
	}
	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		fail("LOG_LEVEL", "must be one of %v, got %q", validLogLevels, cfg.LogLevel)
	}
	if !slices.Contains(validLogFormats, cfg.LogFormat) {
		fail("LOG_FORMAT", "must be one of %v, got %q", validLogFormats, cfg.LogFormat)
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		fail("CORS_ALLOWED_ORIGINS", "must list at least one origin")
	}
	for _, proxy := range cfg.TrustedProxies {
		if !validProxy(proxy) {
			fail("TRUSTED_PROXIES", "must be IP addresses or CIDRs, got %q", proxy)
		}
	}
	if cfg.PlanDays < 1 || cfg.PlanDays > maxPlanDays {
		fail("PLAN_DAYS", "must be between 1 and %d, got %d", maxPlanDays, cfg.PlanDays)
	}
	if cfg.RedisDB < 0 {
		fail("REDIS_DB", "must not be negative")
	}

	if cfg.RateLimitEnabled {
		if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
			fail("REDIS_URL", "redis address is required when rate limiting is enabled")
		}
		if cfg.RateLimitRequests <= 0 {
			fail("RATE_LIMIT_REQUESTS", "must be positive")
		}
		if cfg.RateLimitWindow <= 0 {
			fail("RATE_LIMIT_WINDOW", "must be positive")
		}
	}

	return errors.Join(errs...)
}

func validProxy(s string) bool {
	if net.ParseIP(s) != nil {
		return true
	}
	_, _, err := net.ParseCIDR(s)
	return err == nil
}
