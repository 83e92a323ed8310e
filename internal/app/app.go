package app

import (
	"log/slog"

	"github.com/shrtyk/jenkins-hello/internal/cfg"
	"github.com/shrtyk/jenkins-hello/internal/core/ports/metrics"
	pmts "github.com/shrtyk/jenkins-hello/internal/infrastructure/prometheus"
)

type application struct {
	cfg     *cfg.AppConfig
	logger  *slog.Logger
	metrics metrics.Metrics
	testing bool
}

type opt func(*application)

func NewApp() *application {
	return &application{}
}

// Init applies opts. Missing dependencies fall back to a zero config, the
// default slog logger and no-op metrics.
func (app *application) Init(opts ...opt) {
	for _, op := range opts {
		op(app)
	}

	if app.cfg == nil {
		app.cfg = &cfg.AppConfig{}
	}
	if app.logger == nil {
		app.logger = slog.Default()
	}
	if app.metrics == nil {
		app.metrics = pmts.NewMockMetrics()
	}

	// Testing mode may come from either the option or the config.
	if app.testing || app.cfg.Testing {
		app.testing = true
		app.cfg.Testing = true
	}
}

// Testing reports whether handler panics are left to propagate.
func (app *application) Testing() bool {
	return app.testing
}

func WithCfg(cfg *cfg.AppConfig) opt {
	return func(app *application) {
		app.cfg = cfg
	}
}

func WithLogger(l *slog.Logger) opt {
	return func(app *application) {
		app.logger = l
	}
}

func WithMetrics(m metrics.Metrics) opt {
	return func(app *application) {
		app.metrics = m
	}
}

func WithTesting() opt {
	return func(app *application) {
		app.testing = true
	}
}
