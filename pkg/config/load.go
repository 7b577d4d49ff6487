package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every Callisto-specific environment override.
const EnvPrefix = "CALLISTO_"

// providerEnvNames maps a provider to its conventional vendor variables,
// read before the CALLISTO_PROVIDERS_* overrides.
var providerEnvNames = map[string]struct{ apiKey, baseURL string }{
	"openai":    {apiKey: "OPENAI_API_KEY", baseURL: "OPENAI_BASE_URL"},
	"anthropic": {apiKey: "ANTHROPIC_API_KEY", baseURL: "ANTHROPIC_BASE_URL"},
}

// Load builds the process configuration.
//
// The loading sequence is:
//  1. Start from Default()
//  2. Decode the YAML file at path over it (skipped when path is empty)
//  3. Apply default values to anything still unset
//  4. Apply environment variable overrides
//  5. Validate the final configuration
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
		ApplyDefaults(cfg)
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// The configuration is not modified by environment variables; use Load for that.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are skipped and variables already set in the
// environment are never overwritten. With no arguments ".env" is tried.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("env file not found, skipping", "path", path)
				continue
			}
			return fmt.Errorf("failed to load env file %q: %w", path, err)
		}
		slog.Debug("loaded env file", "path", path)
	}

	return nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables use the format CALLISTO_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Proxy overrides
	if val := os.Getenv(EnvPrefix + "PROXY_LISTEN_ADDRESS"); val != "" {
		cfg.Proxy.ListenAddress = val
	}
	envDuration(EnvPrefix+"PROXY_READ_TIMEOUT", &cfg.Proxy.ReadTimeout)
	envDuration(EnvPrefix+"PROXY_WRITE_TIMEOUT", &cfg.Proxy.WriteTimeout)
	envDuration(EnvPrefix+"PROXY_IDLE_TIMEOUT", &cfg.Proxy.IdleTimeout)
	envDuration(EnvPrefix+"PROXY_SHUTDOWN_TIMEOUT", &cfg.Proxy.ShutdownTimeout)
	if val := os.Getenv(EnvPrefix + "PROXY_MAX_HEADER_BYTES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Proxy.MaxHeaderBytes = i
		}
	}
	if val := os.Getenv(EnvPrefix + "PROXY_MAX_BODY_BYTES"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Proxy.MaxBodyBytes = i
		}
	}

	// Gateway overrides
	envDuration(EnvPrefix+"GATEWAY_TIMEOUT", &cfg.Gateway.Timeout)

	// Provider overrides
	for name := range providerEnvNames {
		applyProviderEnvOverrides(cfg, name)
	}

	// Telemetry overrides
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	envBool(EnvPrefix+"TELEMETRY_METRICS_ENABLED", &cfg.Telemetry.Metrics.Enabled)
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
	envBool(EnvPrefix+"TELEMETRY_TRACING_ENABLED", &cfg.Telemetry.Tracing.Enabled)
	if val := os.Getenv(EnvPrefix + "TELEMETRY_TRACING_ENDPOINT"); val != "" {
		cfg.Telemetry.Tracing.Endpoint = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_TRACING_SAMPLE_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Telemetry.Tracing.SampleRatio = f
		}
	}
}

// applyProviderEnvOverrides applies environment variable overrides for a
// specific provider. The vendor variables (OPENAI_API_KEY, ...) are read
// first; CALLISTO_PROVIDERS_<NAME>_<FIELD> takes precedence over them.
func applyProviderEnvOverrides(cfg *Config, providerName string) {
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}

	provider, exists := cfg.Providers[providerName]
	modified := false

	set := func(dst *string, keys ...string) {
		for _, key := range keys {
			if val := os.Getenv(key); val != "" {
				*dst = val
				modified = true
			}
		}
	}

	prefix := fmt.Sprintf("%sPROVIDERS_%s_", EnvPrefix, strings.ToUpper(providerName))
	vendor := providerEnvNames[providerName]

	set(&provider.APIKey, vendor.apiKey, prefix+"API_KEY")
	set(&provider.BaseURL, vendor.baseURL, prefix+"BASE_URL")
	set(&provider.DefaultModel, prefix+"DEFAULT_MODEL")

	// Only update the map if we found at least one override
	if modified || exists {
		cfg.Providers[providerName] = provider
	}
}

func envDuration(key string, dst *time.Duration) {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*dst = d
		}
	}
}

func envBool(key string, dst *bool) {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*dst = b
		}
	}
}
