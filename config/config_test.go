package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFullEnvironment(t *testing.T) {
	t.Setenv(envHost, "192.0.2.10")
	t.Setenv(envPort, "8080")
	t.Setenv(envUsername, "admin")
	t.Setenv(envPassword, "secret")
	t.Setenv(envTimeout, "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envHost, "camera.local")
	t.Setenv(envPort, "")
	t.Setenv(envUsername, "")
	t.Setenv(envPassword, "")
	t.Setenv(envTimeout, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
}

func TestLoadMissingHost(t *testing.T) {
	t.Setenv(envHost, "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), envHost)
}

func TestLoadBadPort(t *testing.T) {
	t.Setenv(envHost, "camera.local")
	t.Setenv(envPort, "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), envPort)
}

func TestLoadBadTimeout(t *testing.T) {
	t.Setenv(envHost, "camera.local")
	t.Setenv(envPort, "")
	t.Setenv(envTimeout, "-3")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), envTimeout)
}
