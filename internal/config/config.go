package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Server holds the configuration for the API server
type Server struct {
	ServerPort        string `envconfig:"SERVER_PORT" default:"3000"`
	LogLevel          string `envconfig:"LOG_LEVEL" default:"info"`
	GinMode           string `envconfig:"GIN_MODE" default:"release"`
	StrictParsing     bool   `envconfig:"STATS_STRICT_PARSING" default:"false"`
	ShutdownTimeout   int    `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"5"`    // seconds
	ReadHeaderTimeout int    `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"5"` // seconds
}

// Validate checks if the configuration is valid
func (s Server) Validate() error {
	port, err := strconv.Atoi(s.ServerPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port: %q", s.ServerPort)
	}

	if _, err := s.SlogLevel(); err != nil {
		return err
	}

	switch s.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode: %s (must be debug, release, or test)", s.GinMode)
	}

	if s.ShutdownTimeout < 0 || s.ReadHeaderTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}

	return nil
}

// Addr returns the listen address for the HTTP server
func (s Server) Addr() string {
	return ":" + s.ServerPort
}

// SlogLevel maps LOG_LEVEL to a slog level
func (s Server) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s.LogLevel)
}

// ShutdownTimeoutDuration returns the graceful shutdown timeout
func (s Server) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

// ReadHeaderTimeoutDuration returns the request header read timeout
func (s Server) ReadHeaderTimeoutDuration() time.Duration {
	return time.Duration(s.ReadHeaderTimeout) * time.Second
}
