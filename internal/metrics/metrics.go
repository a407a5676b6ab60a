package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Transport holds the request metrics of one API session
type Transport struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewTransport creates the collectors and registers them with reg. A nil
// registerer keeps the collectors unregistered, which tests rely on.
func NewTransport(reg prometheus.Registerer) (*Transport, error) {
	t := &Transport{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auction_client_requests_total",
				Help: "API requests by method, route and outcome",
			},
			[]string{"method", "route", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auction_client_request_duration_seconds",
				Help:    "Time spent waiting for API responses",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "auction_client_requests_in_flight",
				Help: "API requests currently waiting for a response",
			},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{t.requests, t.duration, t.inFlight} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// Begin marks a request as in flight and returns the function that records
// its completion. status is 0 when no response arrived.
func (t *Transport) Begin(method, route string) func(status int) {
	start := time.Now()
	t.inFlight.Inc()
	return func(status int) {
		t.inFlight.Dec()
		t.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		t.requests.WithLabelValues(method, route, Outcome(status)).Inc()
	}
}

// Requests exposes the counter for tests and the CLI summary.
func (t *Transport) Requests() *prometheus.CounterVec {
	return t.requests
}

// Outcome buckets a status code: "error" for no response, otherwise "2xx", "4xx", ...
func Outcome(status int) string {
	if status <= 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}
