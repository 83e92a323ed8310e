package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shrtyk/jenkins-hello/internal/core/ports/metrics"
	"github.com/shrtyk/jenkins-hello/pkg/logger"
	"github.com/tomasen/realip"
)

type mws struct {
	log            *slog.Logger
	metrics        metrics.Metrics
	requestTimeout time.Duration
}

func NewMiddlewares(l *slog.Logger, m metrics.Metrics, requestTimeout time.Duration) *mws {
	return &mws{
		log:            l,
		metrics:        m,
		requestTimeout: requestTimeout,
	}
}

// status reports the written status code, treating an untouched response as 200.
func status(ww chimw.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}

func (m *mws) HttpMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		m.metrics.HttpRequest(
			status(ww),
			r.Method,
			chi.RouteContext(r.Context()).RoutePattern(),
			time.Since(start).Seconds())
	})
}

// Logging puts a request scoped logger into the context and reports the
// outcome once the handler returns.
func (m *mws) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		l := m.log.With(
			slog.String("ip", realip.FromRequest(r)),
			slog.String("user-agent", r.UserAgent()),
			slog.String("request_id", uuid.New().String()),
			slog.String("method", r.Method),
			slog.String("url", r.URL.RequestURI()),
			slog.String("route", chi.RouteContext(r.Context()).RoutePattern()),
		)

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(logger.ToCtx(r.Context(), l)))

		l.Debug(
			"request completed",
			slog.Int("status", status(ww)),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("took", time.Since(start)),
		)
	})
}

// RequestTimeout bounds the request context. A zero timeout disables it.
func (m *mws) RequestTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.requestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), m.requestTimeout)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
