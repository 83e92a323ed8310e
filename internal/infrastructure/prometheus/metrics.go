package metrics

import (
	"strconv"

	p "github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests          *p.CounterVec
	requestsHistogram *p.HistogramVec

	greetingsCounter   p.Counter
	greetingsHistogram p.Histogram
}

func NewPrometheusMetrics() *metrics {
	greetings := p.NewCounter(p.CounterOpts{
		Name: "greetings_total",
		Help: "The total number of served greetings",
	})

	greetingsHistogram := p.NewHistogram(p.HistogramOpts{
		Name:    "greetings_latency_seconds",
		Help:    "The latency of greeting rendering in seconds",
		Buckets: p.LinearBuckets(0.0001, 0.0001, 10),
	})

	requests := p.NewCounterVec(p.CounterOpts{
		Name: "http_requests_total",
		Help: "The total number of http requests",
	}, []string{"code", "method", "endpoint"})

	requestsHistogram := p.NewHistogramVec(p.HistogramOpts{
		Name:    "http_requests_seconds",
		Help:    "The http requests latency in seconds",
		Buckets: p.LinearBuckets(0.0001, 0.0001, 10),
	}, []string{"code", "method", "endpoint"})

	p.MustRegister(
		greetings, greetingsHistogram,
		requests, requestsHistogram,
	)

	return &metrics{
		greetingsCounter:   greetings,
		greetingsHistogram: greetingsHistogram,
		requests:           requests,
		requestsHistogram:  requestsHistogram,
	}
}

// Greeting increments the greetings counter and observes the duration
func (m *metrics) Greeting(duration float64) {
	m.greetingsCounter.Inc()
	m.greetingsHistogram.Observe(duration)
}

// HttpRequest increments the request counter and observes the latency
func (m *metrics) HttpRequest(code int, method, path string, latency float64) {
	labels := []string{strconv.Itoa(code), method, path}
	m.requests.WithLabelValues(labels...).Inc()
	m.requestsHistogram.WithLabelValues(labels...).Observe(latency)
}

type mock struct{}

func NewMockMetrics() *mock {
	return &mock{}
}

func (m *mock) Greeting(duration float64)                                  {}
func (m *mock) HttpRequest(code int, method, path string, latency float64) {}
