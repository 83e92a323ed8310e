package metrics

type Metrics interface {
	HttpRequest(code int, method, path string, latency float64)
	Greeting(duration float64)
}
