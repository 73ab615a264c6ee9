package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPHost               string
	HTTPPort               string
	HTTPReadTimeout        time.Duration
	HTTPWriteTimeout       time.Duration
	ShutdownTimeout        time.Duration
	LogLevel               slog.Level
	SeedData               bool
	OrderStrictTransitions bool
	ReportSchedule         string
	CORSAllowedOrigins     []string
}

// LoadConfig reads the configuration from the environment after loading the
// optional .env files. Unset variables take their defaults.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var problems []error
	config := Config{
		HTTPHost:           envString("HTTP_HOST", "0.0.0.0"),
		HTTPPort:           envString("HTTP_PORT", "8080"),
		ReportSchedule:     envString("REPORT_SCHEDULE", "@every 1m"),
		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	var err error
	if config.HTTPReadTimeout, err = envSeconds("HTTP_READ_TIMEOUT", 10*time.Second); err != nil {
		problems = append(problems, err)
	}
	if config.HTTPWriteTimeout, err = envSeconds("HTTP_WRITE_TIMEOUT", 10*time.Second); err != nil {
		problems = append(problems, err)
	}
	if config.ShutdownTimeout, err = envSeconds("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		problems = append(problems, err)
	}
	if config.SeedData, err = envBool("SEED_DATA", true); err != nil {
		problems = append(problems, err)
	}
	if config.OrderStrictTransitions, err = envBool("ORDER_STRICT_TRANSITIONS", false); err != nil {
		problems = append(problems, err)
	}
	if err = config.LogLevel.UnmarshalText([]byte(envString("LOG_LEVEL", "info"))); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	if err = errors.Join(problems...); err != nil {
		return Config{}, err
	}
	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks values that parse but cannot be used.
func (c Config) Validate() error {
	var problems []error
	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Errorf("HTTP_PORT: %q is not a valid port", c.HTTPPort))
	}
	if c.HTTPReadTimeout <= 0 {
		problems = append(problems, errors.New("HTTP_READ_TIMEOUT must be greater than 0"))
	}
	if c.HTTPWriteTimeout <= 0 {
		problems = append(problems, errors.New("HTTP_WRITE_TIMEOUT must be greater than 0"))
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, errors.New("SHUTDOWN_TIMEOUT must be greater than 0"))
	}
	if len(c.CORSAllowedOrigins) == 0 {
		problems = append(problems, errors.New("CORS_ALLOWED_ORIGINS must name at least one origin"))
	}
	return errors.Join(problems...)
}

// Address returns the host:port the HTTP server listens on.
func (c Config) Address() string {
	return c.HTTPHost + ":" + c.HTTPPort
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, value)
	}
	return parsed, nil
}

func envSeconds(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number of seconds", key, value)
	}
	return time.Duration(seconds) * time.Second, nil
}

func envList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
