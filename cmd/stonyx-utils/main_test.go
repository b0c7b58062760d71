package main

import (
	"errors"
	"fmt"
	"testing"

	"stonyx-utils/internal/cliapp"
	"stonyx-utils/internal/config"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: 0},
		{name: "usage", err: fmt.Errorf("get: %w", cliapp.ErrUsage), want: 2},
		{name: "unknown command", err: fmt.Errorf("%w %q", cliapp.ErrUnknownCommand, "x"), want: 2},
		{name: "other failure", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Fatalf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoggingConfig(t *testing.T) {
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "debug", Format: "json", File: "/tmp/x.log"}}
	got := loggingConfig(cfg)
	if got.Level != "debug" || got.Format != "json" || got.File != "/tmp/x.log" {
		t.Fatalf("unexpected logging config: %+v", got)
	}
	if got.Output != nil {
		t.Fatalf("expected default output, got %v", got.Output)
	}
}
