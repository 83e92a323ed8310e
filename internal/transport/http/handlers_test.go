package httphandlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMetrics struct {
	greetings int
}

func (m *mockMetrics) Greeting(duration float64)                                  { m.greetings++ }
func (m *mockMetrics) HttpRequest(code int, method, path string, latency float64) {}

type failingWriter struct {
	*httptest.ResponseRecorder
}

func (w *failingWriter) Write(b []byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestRoot(t *testing.T) {
	m := &mockMetrics{}
	hh := NewHandlersProvider(m)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	hh.Root(rr, req)
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))

	b, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Equal(t, Greeting+"\n", string(b))
	assert.Equal(t, 1, m.greetings)
}

func TestRoot_Idempotent(t *testing.T) {
	m := &mockMetrics{}
	hh := NewHandlersProvider(m)

	var first string
	for i := range 5 {
		rr := httptest.NewRecorder()
		hh.Root(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		if i == 0 {
			first = rr.Body.String()
		}
		assert.Equal(t, first, rr.Body.String())
	}
	assert.Equal(t, 5, m.greetings)
}

func TestRoot_WriteError(t *testing.T) {
	m := &mockMetrics{}
	hh := NewHandlersProvider(m)

	w := &failingWriter{ResponseRecorder: httptest.NewRecorder()}
	hh.Root(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Zero(t, m.greetings)
}

func TestHealthz(t *testing.T) {
	hh := NewHandlersProvider(&mockMetrics{})

	rr := httptest.NewRecorder()
	hh.Healthz(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "jenkins-hello up and healthy", rr.Body.String())
}
