package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Delay int `env:"RECOVERYHUB_TEST_DELAY" envDefault:"42"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Delay != 42 {
		t.Fatalf("expected default delay 42, got %d", cfg.Delay)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("RECOVERYHUB_TEST_DELAY", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
