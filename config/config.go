// Package config loads camera connection settings from the
// environment, with an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	envHost     = "ONVIF_HOST"
	envPort     = "ONVIF_PORT"
	envUsername = "ONVIF_USERNAME"
	envPassword = "ONVIF_PASSWORD"
	envTimeout  = "ONVIF_TIMEOUT"

	defaultPort    = 80
	defaultTimeout = 10 * time.Second
)

// Config holds everything needed to open a camera session.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// Load reads the configuration from the environment. A .env file in
// the working directory is honored when present; real environment
// variables win over it.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	host := os.Getenv(envHost)
	if host == "" {
		return nil, fmt.Errorf("config: %s is required", envHost)
	}

	cfg := &Config{
		Host:     host,
		Port:     defaultPort,
		Username: os.Getenv(envUsername),
		Password: os.Getenv(envPassword),
		Timeout:  defaultTimeout,
	}

	if v := os.Getenv(envPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("config: %s must be a valid port, got %q", envPort, v)
		}
		cfg.Port = port
	}

	if v := os.Getenv(envTimeout); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("config: %s must be a positive number of seconds, got %q", envTimeout, v)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
