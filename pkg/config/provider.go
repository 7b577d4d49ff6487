package config

import "mercator-hq/callisto/pkg/providers"

// ProviderSettings converts the providers section into adapter settings.
func (c *Config) ProviderSettings() map[string]providers.ProviderConfig {
	out := make(map[string]providers.ProviderConfig, len(c.Providers))
	for name, p := range c.Providers {
		out[name] = providers.ProviderConfig{
			Name:         name,
			BaseURL:      p.BaseURL,
			APIKey:       p.APIKey,
			DefaultModel: p.DefaultModel,
		}
	}
	return out
}

// TransportSettings converts the gateway section into transport settings.
func (c *Config) TransportSettings() providers.TransportConfig {
	return providers.TransportConfig{
		Timeout:             c.Gateway.Timeout,
		MaxIdleConns:        c.Gateway.MaxIdleConns,
		MaxIdleConnsPerHost: c.Gateway.MaxIdleConnsPerHost,
		IdleConnTimeout:     c.Gateway.IdleConnTimeout,
	}
}
