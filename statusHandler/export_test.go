package statusHandler

import (
	"github.com/prometheus/client_golang/prometheus"
)

func (psh *PrometheusStatusHandler) GetPrometheusMetricByKey(key string) (prometheus.Gauge, error) {
	gauge, ok := psh.gauge(key)
	if !ok {
		return nil, ErrMetricNotFound
	}

	return gauge, nil
}
