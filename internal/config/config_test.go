package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultDNS != DefaultDNS {
		t.Errorf("DefaultDNS = %q, want %q", cfg.DefaultDNS, DefaultDNS)
	}
	if cfg.DefaultInterface != DefaultInterface {
		t.Errorf("DefaultInterface = %q, want %q", cfg.DefaultInterface, DefaultInterface)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in := &Config{
		DefaultDNS:       "1.1.1.1",
		DefaultInterface: "Wi-Fi",
		LastDNS:          "223.5.5.5",
		LastInterface:    "以太网",
	}
	if err := Save(in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *out != *in {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestLoadFillsMissingFields(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(`{"lastDns":"9.9.9.9"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultDNS != DefaultDNS || cfg.DefaultInterface != DefaultInterface {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.LastDNS != "9.9.9.9" {
		t.Errorf("LastDNS = %q, want 9.9.9.9", cfg.LastDNS)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() accepted malformed JSON")
	}
}
