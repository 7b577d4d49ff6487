// Package config provides configuration management for Callisto.
//
// This package handles loading, validating, and converting configuration from
// YAML files, .env files, and environment variables. Configuration is loaded
// once at startup and passed explicitly to the components that need it; it is
// never mutated afterwards.
//
// # Configuration Loading
//
//	if err := config.LoadDotEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	cfg, err := config.Load("config.yaml") // "" = defaults + environment only
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// Provider credentials use the vendors' conventional names:
//
//   - OPENAI_API_KEY, OPENAI_BASE_URL
//   - ANTHROPIC_API_KEY, ANTHROPIC_BASE_URL
//
// Any field can also be overridden with CALLISTO_SECTION_FIELD, which wins
// over both the file and the vendor variables:
//
//   - CALLISTO_PROXY_LISTEN_ADDRESS overrides proxy.listen_address
//   - CALLISTO_PROVIDERS_OPENAI_API_KEY overrides providers.openai.api_key
//   - CALLISTO_GATEWAY_TIMEOUT overrides gateway.timeout
//   - CALLISTO_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Vendor environment variables
//  4. CALLISTO_* environment variables
//  5. Validation (fails fast if invalid)
//
// A provider without an API key is valid configuration. The gateway reports
// it as unconfigured only when a request selects it.
package config
