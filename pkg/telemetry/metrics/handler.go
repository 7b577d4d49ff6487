package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// promLogger adapts slog to promhttp's error logger.
type promLogger struct{}

func (promLogger) Println(v ...interface{}) {
	slog.Error("metrics handler error", "error", v)
}

// Handler returns an HTTP handler for the Prometheus metrics endpoint.
//
// Mount it at MetricsConfig.Path (typically "/metrics").
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(
		c.registry,
		promhttp.HandlerOpts{
			EnableOpenMetrics: true,
			ErrorHandling:     promhttp.ContinueOnError,
			ErrorLog:          promLogger{},
		},
	)
}
