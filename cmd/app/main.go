package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shrtyk/jenkins-hello/internal/app"
	"github.com/shrtyk/jenkins-hello/internal/cfg"
	metrics "github.com/shrtyk/jenkins-hello/internal/infrastructure/prometheus"
	"github.com/shrtyk/jenkins-hello/pkg/logger"
)

func main() {
	cfg := cfg.ReadConfig()
	l := logger.NewLogger(cfg.Env)
	m := metrics.NewPrometheusMetrics()

	ap := app.NewApp()
	ap.Init(
		app.WithCfg(cfg),
		app.WithLogger(l),
		app.WithMetrics(m),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := ap.Serve(ctx); err != nil {
		l.Error("application failed", logger.ErrorAttr(err))
		cancel()
		os.Exit(1)
	}
}
