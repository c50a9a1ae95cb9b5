package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsHandler struct{}

func MakeMetricsHandler() MetricsHandler {
	return MetricsHandler{}
}

// ServeHTTP bypasses the API error pipeline; Prometheus speaks its own
// exposition format.
func (h MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}
