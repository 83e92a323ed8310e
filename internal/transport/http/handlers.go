package httphandlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shrtyk/jenkins-hello/internal/core/ports/metrics"
	"github.com/shrtyk/jenkins-hello/pkg/logger"
)

const Greeting = "Hello, Flask from Jenkins!"

type handlersProvider struct {
	metrics metrics.Metrics
}

func NewHandlersProvider(m metrics.Metrics) *handlersProvider {
	return &handlersProvider{
		metrics: m,
	}
}

// Healthz godoc
// @Summary      Healthz
// @Description  Health check
// @Tags         service
// @Produce      text/plain
// @Success      200 {string} string
// @Failure      500 {string} string "Internal Server Error"
// @Router       /healthz [get]
func (h *handlersProvider) Healthz(w http.ResponseWriter, r *http.Request) {
	if _, err := fmt.Fprint(w, "jenkins-hello up and healthy"); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Root godoc
// @Summary      Greeting
// @Description  Returns the service greeting
// @Tags         service
// @Produce      text/plain
// @Success      200 {string} string "Hello, Flask from Jenkins!"
// @Failure      500 {string} string "Internal Server Error"
// @Router       / [get]
func (h *handlersProvider) Root(w http.ResponseWriter, r *http.Request) {
	l := logger.FromCtx(r.Context())
	start := time.Now()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := fmt.Fprintln(w, Greeting); err != nil {
		l.Error("failed to write greeting", logger.ErrorAttr(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.metrics.Greeting(time.Since(start).Seconds())
	l.Debug("greeting served")
}
