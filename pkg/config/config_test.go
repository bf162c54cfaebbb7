package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "http://localhost:3001", cfg.DataService.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.DataService.Timeout)
	assert.Equal(t, 5, cfg.UI.PageSize)
	assert.Equal(t, "02/01/2006", cfg.UI.DateLayout)
	assert.Equal(t, 2*time.Second, cfg.UI.RedirectDelay)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATA_SERVICE_URL", "http://datos:3001/")
	t.Setenv("DATA_SERVICE_TIMEOUT", "3s")
	t.Setenv("UI_PAGE_SIZE", "10")
	t.Setenv("UI_REDIRECT_DELAY", "500ms")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "http://datos:3001", cfg.DataService.BaseURL, "se quita la barra final")
	assert.Equal(t, 3*time.Second, cfg.DataService.Timeout)
	assert.Equal(t, 10, cfg.UI.PageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.RedirectDelay)
}

func TestFromViper_ErroresDeValidacion(t *testing.T) {
	v := viper.New()
	v.Set("UI_PAGE_SIZE", 0)
	_, err := config.FromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("DATA_SERVICE_TIMEOUT", "pronto")
	_, err = config.FromViper(v)
	assert.Error(t, err)
}
