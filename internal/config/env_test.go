package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Depth int `env:"STATETREE_TEST_DEPTH" envDefault:"3"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Depth != 3 {
		t.Fatalf("expected default depth 3, got %d", cfg.Depth)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("STATETREE_TEST_DEPTH", "deep")

	err := ParseEnv(&cfg)
	if !IsInvalidConfig(err) {
		t.Fatalf("expected invalid config error, got %v", err)
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("STATETREE_CHART", "player.yaml")
	t.Setenv("STATETREE_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Chart != "player.yaml" || !cfg.Debug || cfg.History {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Format != "text" {
		t.Fatalf("expected default format text, got %q", cfg.Format)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown format", env: map[string]string{"STATETREE_FORMAT": "svg"}},
		{name: "negative events", env: map[string]string{"STATETREE_EVENTS": "-1"}},
		{name: "bad bool", env: map[string]string{"STATETREE_HISTORY": "maybe"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); !IsInvalidConfig(err) {
				t.Fatalf("expected invalid config error, got %v", err)
			}
		})
	}
}
