package main

import (
	"path/filepath"
	"testing"

	"github.com/iwvelando/rental-forecast/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    config.LoggingConfig
		override  string
		wantLevel zapcore.Level
		wantError bool
	}{
		{"Defaults", config.LoggingConfig{}, "", zapcore.InfoLevel, false},
		{"Config level", config.LoggingConfig{Level: "warn", Format: "console"}, "", zapcore.WarnLevel, false},
		{"Override wins", config.LoggingConfig{Level: "error"}, "debug", zapcore.DebugLevel, false},
		{"Warning alias", config.LoggingConfig{Level: "warning"}, "", zapcore.WarnLevel, false},
		{"Invalid level", config.LoggingConfig{Level: "verbose"}, "", zapcore.InfoLevel, true},
		{"Invalid format", config.LoggingConfig{Format: "xml"}, "", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.config, tt.override)
			if tt.wantError {
				if err == nil {
					t.Fatal("initializeLogger() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			if !logger.Core().Enabled(tt.wantLevel) {
				t.Errorf("expected level %s to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > zapcore.DebugLevel && logger.Core().Enabled(tt.wantLevel-1) {
				t.Errorf("expected level %s to be disabled", tt.wantLevel-1)
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rental-forecast.log")

	logger, err := initializeLogger(config.LoggingConfig{OutputFile: path}, "")
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()
}

func TestResolveOutput(t *testing.T) {
	tests := []struct {
		name           string
		conf           config.OutputConfig
		formatOverride string
		tableOverride  string
		wantFormat     string
		wantTable      string
		wantError      bool
	}{
		{"Defaults", config.OutputConfig{}, "", "", "pretty", "yearly", false},
		{"Config values", config.OutputConfig{Format: "csv", Table: "monthly"}, "", "", "csv", "monthly", false},
		{"Overrides", config.OutputConfig{Format: "csv", Table: "monthly"}, "json", "amortization", "json", "amortization", false},
		{"Invalid format", config.OutputConfig{}, "xml", "", "", "", true},
		{"Invalid table", config.OutputConfig{}, "", "weekly", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, table, err := resolveOutput(tt.conf, tt.formatOverride, tt.tableOverride)
			if tt.wantError {
				if err == nil {
					t.Fatal("resolveOutput() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveOutput() error = %v", err)
			}
			if format != tt.wantFormat || table != tt.wantTable {
				t.Errorf("resolveOutput() = (%s, %s), expected (%s, %s)", format, table, tt.wantFormat, tt.wantTable)
			}
		})
	}
}
