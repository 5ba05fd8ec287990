package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
)

func TestServer_Defaults(t *testing.T) {
	var s Server
	if err := envconfig.Process("", &s); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if s.ServerPort != "3000" {
		t.Fatalf("ServerPort = %q, want %q", s.ServerPort, "3000")
	}
	if s.StrictParsing {
		t.Fatalf("StrictParsing = true, want false")
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := s.Addr(); got != ":3000" {
		t.Fatalf("Addr() = %q, want %q", got, ":3000")
	}
	if got := s.ShutdownTimeoutDuration(); got != 5*time.Second {
		t.Fatalf("ShutdownTimeoutDuration() = %v, want 5s", got)
	}
}

func TestServer_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("STATS_STRICT_PARSING", "true")

	var s Server
	if err := envconfig.Process("", &s); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if s.Addr() != ":8081" {
		t.Fatalf("Addr() = %q, want %q", s.Addr(), ":8081")
	}
	if !s.StrictParsing {
		t.Fatalf("StrictParsing = false, want true")
	}
	level, err := s.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("SlogLevel() = %v, %v, want debug", level, err)
	}
}

func TestServer_Validate(t *testing.T) {
	valid := Server{ServerPort: "3000", LogLevel: "info", GinMode: "release", ShutdownTimeout: 5}

	tests := []struct {
		name    string
		mutate  func(s *Server)
		wantErr bool
	}{
		{"valid", func(s *Server) {}, false},
		{"non-numeric port", func(s *Server) { s.ServerPort = "http" }, true},
		{"port out of range", func(s *Server) { s.ServerPort = "70000" }, true},
		{"bad log level", func(s *Server) { s.LogLevel = "verbose" }, true},
		{"bad gin mode", func(s *Server) { s.GinMode = "prod" }, true},
		{"negative timeout", func(s *Server) { s.ShutdownTimeout = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
