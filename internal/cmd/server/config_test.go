package server

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.AuthDelay != 1500*time.Millisecond {
		t.Fatalf("AuthDelay = %v, want %v", cfg.AuthDelay, 1500*time.Millisecond)
	}
}

func TestParseConfigOverrideHTTPAddr(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigOverrideAuthDelay(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-auth-delay", "10ms"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.AuthDelay != 10*time.Millisecond {
		t.Fatalf("AuthDelay = %v, want %v", cfg.AuthDelay, 10*time.Millisecond)
	}
}

func TestParseConfigHonorsEnv(t *testing.T) {
	t.Setenv("RECOVERYHUB_HTTP_ADDR", "0.0.0.0:8088")
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:8088" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:8088")
	}
}
