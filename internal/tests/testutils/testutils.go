package testutils

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/shrtyk/jenkins-hello/internal/cfg"
)

func NewMockLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func NewMockAppCfg() *cfg.AppConfig {
	return &cfg.AppConfig{
		Env: "dev",
		HttpCfg: cfg.HttpCfg{
			Host:               "localhost",
			Port:               "0",
			ServerIdleTimeout:  time.Second,
			ServerWriteTimeout: time.Second,
			ServerReadTimeout:  time.Second,
			RequestTimeout:     time.Second,
		},
		CorsCfg: cfg.CorsCfg{
			AllowedOrigins: []string{"*"},
			MaxAge:         300,
		},
	}
}
