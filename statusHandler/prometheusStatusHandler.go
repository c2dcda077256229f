package statusHandler

import (
	"net/http"
	"strings"
	"sync"

	"github.com/multiversx/mx-chain-htlc-oracle-go/common"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = logger.GetOrCreate("statusHandler")

var metricDescriptions = map[string]string{
	common.MetricCurrentBlockHeight:  "height of the last processed block",
	common.MetricFetchRounds:         "number of triggered off-chain fetch rounds",
	common.MetricFetchFailures:       "number of failed requests towards the configured sources",
	common.MetricDecodedEvents:       "number of external events decoded into htlc records",
	common.MetricUnsignedSubmissions: "number of unsigned ingestion transactions accepted by the pool",
	common.MetricPoolRejections:      "number of transactions rejected by the pool",
	common.MetricSwapsOpened:         "number of swaps opened",
	common.MetricSwapsClaimed:        "number of swaps claimed",
	common.MetricSwapsRefunded:       "number of swaps refunded",
	common.MetricSkippedRecords:      "number of ingested records skipped on a failed precondition",
	common.MetricFailedCalls:         "number of reverted calls",
}

// PrometheusStatusHandler will define the handler which will update prometheus metrics
type PrometheusStatusHandler struct {
	registry               *prometheus.Registry
	prometheusGaugeMetrics sync.Map
}

// NewPrometheusStatusHandler will return an instance of a PrometheusStatusHandler, with all the
// oracle metrics registered in its own registry
func NewPrometheusStatusHandler() *PrometheusStatusHandler {
	psh := &PrometheusStatusHandler{
		registry: prometheus.NewRegistry(),
	}
	for key, help := range metricDescriptions {
		psh.registerMetric(key, help)
	}

	return psh
}

func (psh *PrometheusStatusHandler) registerMetric(key string, help string) prometheus.Gauge {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: sanitizeMetricName(key),
		Help: help,
	})
	err := psh.registry.Register(gauge)
	if err != nil {
		log.Warn("cannot register prometheus metric", "metric", key, "error", err)
	}
	psh.prometheusGaugeMetrics.Store(key, gauge)

	return gauge
}

func sanitizeMetricName(key string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(key)
}

func (psh *PrometheusStatusHandler) gauge(key string) (prometheus.Gauge, bool) {
	value, ok := psh.prometheusGaugeMetrics.Load(key)
	if !ok {
		return nil, false
	}

	return value.(prometheus.Gauge), true
}

// Increment will be used for incrementing the value for a key
func (psh *PrometheusStatusHandler) Increment(key string) {
	if gauge, ok := psh.gauge(key); ok {
		gauge.Inc()
	}
}

// AddUint64 will be used for increasing the value of a key with the provided amount
func (psh *PrometheusStatusHandler) AddUint64(key string, value uint64) {
	if gauge, ok := psh.gauge(key); ok {
		gauge.Add(float64(value))
	}
}

// SetUInt64Value method - will update the value for a key
func (psh *PrometheusStatusHandler) SetUInt64Value(key string, value uint64) {
	if gauge, ok := psh.gauge(key); ok {
		gauge.Set(float64(value))
	}
}

// Handler returns the http handler exposing the registered metrics
func (psh *PrometheusStatusHandler) Handler() http.Handler {
	return promhttp.HandlerFor(psh.registry, promhttp.HandlerOpts{})
}

// Close will unregister the metrics
func (psh *PrometheusStatusHandler) Close() {
	psh.prometheusGaugeMetrics.Range(func(key, value interface{}) bool {
		psh.registry.Unregister(value.(prometheus.Gauge))
		psh.prometheusGaugeMetrics.Delete(key)
		return true
	})
}

// IsInterfaceNil returns true if there is no value under the interface
func (psh *PrometheusStatusHandler) IsInterfaceNil() bool {
	return psh == nil
}
