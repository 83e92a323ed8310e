package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "github.com/shrtyk/jenkins-hello/api/openapi"
	transport "github.com/shrtyk/jenkins-hello/internal/transport/http"
	mw "github.com/shrtyk/jenkins-hello/internal/transport/http/middleware"
	"github.com/shrtyk/jenkins-hello/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Serve runs the http server until ctx is done and then shuts it down gracefully.
func (app *application) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", net.JoinHostPort(app.cfg.HttpCfg.Host, app.cfg.HttpCfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return app.serve(ctx, ln)
}

func (app *application) serve(ctx context.Context, ln net.Listener) error {
	httpServ := http.Server{
		Handler:      app.NewRouter(),
		IdleTimeout:  app.cfg.HttpCfg.ServerIdleTimeout,
		WriteTimeout: app.cfg.HttpCfg.ServerWriteTimeout,
		ReadTimeout:  app.cfg.HttpCfg.ServerReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()

		tCtx, tCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer tCancel()

		app.logger.Info("got a signal to stop work. executing graceful shutdown")

		errCh <- httpServ.Shutdown(tCtx)
		close(errCh)
	}()

	app.logger.Info("http listening", slog.String("addr", ln.Addr().String()))
	if err := httpServ.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	if err := <-errCh; err != nil {
		app.logger.Error("failed server shutdown", logger.ErrorAttr(err))
		return err
	}

	app.logger.Info("application stopped")
	return nil
}

type HandlersProvider interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Root(w http.ResponseWriter, r *http.Request)
}

type Middlewares interface {
	HttpMetrics(http.Handler) http.Handler
	Logging(next http.Handler) http.Handler
	RequestTimeout(next http.Handler) http.Handler
}

func (app *application) NewRouter() *chi.Mux {
	var handlers HandlersProvider = transport.NewHandlersProvider(app.metrics)
	var mws Middlewares = mw.NewMiddlewares(app.logger, app.metrics, app.cfg.HttpCfg.RequestTimeout)

	mux := chi.NewMux()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.cfg.CorsCfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		MaxAge:         app.cfg.CorsCfg.MaxAge,
	}))

	// In testing mode handler panics reach the caller instead of becoming 500s.
	if !app.testing {
		mux.Use(chimw.Recoverer)
		mux.Mount("/debug", chimw.Profiler())
	}

	mux.Handle("/metrics", promhttp.Handler())
	mux.Get("/swagger/*", httpSwagger.WrapHandler)
	mux.Get("/healthz", handlers.Healthz)
	mux.Group(func(r chi.Router) {
		r.Use(mws.Logging, mws.HttpMetrics, mws.RequestTimeout)

		r.Get("/", handlers.Root)
	})

	return mux
}
