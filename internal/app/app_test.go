package app

import (
	"net/http"
	"testing"

	"github.com/shrtyk/jenkins-hello/internal/cfg"
	pmts "github.com/shrtyk/jenkins-hello/internal/infrastructure/prometheus"
	tu "github.com/shrtyk/jenkins-hello/internal/tests/testutils"
	"github.com/shrtyk/jenkins-hello/pkg/testclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp(t *testing.T) {
	appCfg := &cfg.AppConfig{}
	l, _ := tu.NewMockLogger()
	metrics := pmts.NewMockMetrics()

	tapp := NewApp()
	tapp.Init(
		WithCfg(appCfg),
		WithLogger(l),
		WithMetrics(metrics),
	)

	require.IsType(t, &application{}, tapp)
	assert.NotNil(t, tapp.logger)
	assert.NotNil(t, tapp.cfg)
	assert.NotNil(t, tapp.metrics)
	assert.False(t, tapp.Testing())
}

func TestApp_Testing(t *testing.T) {
	t.Run("option", func(t *testing.T) {
		appCfg := &cfg.AppConfig{}
		tapp := NewApp()
		tapp.Init(WithTesting(), WithCfg(appCfg))

		assert.True(t, tapp.Testing())
		assert.True(t, appCfg.Testing)
	})

	t.Run("config", func(t *testing.T) {
		tapp := NewApp()
		tapp.Init(WithCfg(&cfg.AppConfig{Testing: true}))

		assert.True(t, tapp.Testing())
	})
}

func TestApp_Defaults(t *testing.T) {
	tapp := NewApp()
	tapp.Init(WithTesting())

	require.NotNil(t, tapp.cfg)
	assert.True(t, tapp.cfg.Testing)
	assert.NotNil(t, tapp.logger)
	assert.NotNil(t, tapp.metrics)

	client := testclient.New(t, tapp.NewRouter())
	rv := client.Get("/")

	assert.Equal(t, http.StatusOK, rv.StatusCode)
	assert.Contains(t, string(rv.Body), "Hello, Flask from Jenkins!")
}
