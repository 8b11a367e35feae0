package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test input defaults
	if cfg.Input.Delimiter != "," {
		t.Errorf("expected delimiter ',', got %q", cfg.Input.Delimiter)
	}
	if !cfg.Input.HasHeader {
		t.Error("expected has_header true by default")
	}
	if cfg.Input.IDColumn != 0 {
		t.Errorf("expected id_column 0, got %d", cfg.Input.IDColumn)
	}
	if cfg.Input.NameColumn != 1 {
		t.Errorf("expected name_column 1, got %d", cfg.Input.NameColumn)
	}

	// Test output defaults
	if cfg.Output.Color != "auto" {
		t.Errorf("expected color 'auto', got %s", cfg.Output.Color)
	}

	// Test logging defaults
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected logging level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected logging format 'text', got %s", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected logging output 'stderr', got %s", cfg.Logging.Output)
	}
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		delimiter string
		expected  rune
	}{
		{",", ','},
		{";", ';'},
		{"\t", '\t'},
		{"", ','},
	}

	for _, tt := range tests {
		ic := InputConfig{Delimiter: tt.delimiter}
		if got := ic.DelimiterRune(); got != tt.expected {
			t.Errorf("DelimiterRune(%q) = %q, expected %q", tt.delimiter, got, tt.expected)
		}
	}
}

func TestMinColumns(t *testing.T) {
	tests := []struct {
		id, name int
		expected int
	}{
		{0, 1, 2},
		{1, 0, 2},
		{0, 3, 4},
		{5, 2, 6},
	}

	for _, tt := range tests {
		ic := InputConfig{IDColumn: tt.id, NameColumn: tt.name}
		if got := ic.MinColumns(); got != tt.expected {
			t.Errorf("MinColumns(%d, %d) = %d, expected %d", tt.id, tt.name, got, tt.expected)
		}
	}
}
