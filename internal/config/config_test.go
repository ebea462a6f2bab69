package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bullsharks.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
source:
  base_url: https://bullsharks.example.com
  timeout: 15s
web:
  addr: 0.0.0.0:9000
log:
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	want.Source.BaseURL = "https://bullsharks.example.com"
	want.Source.Timeout = 15 * time.Second
	want.Web.Addr = "0.0.0.0:9000"
	want.Log.Format = "json"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "source:\n  base_url: http://from-file\n")
	t.Setenv("BULLSHARKS_SOURCE_URL", "http://from-env")
	t.Setenv("BULLSHARKS_SOURCE_TIMEOUT", "2s")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.BaseURL != "http://from-env" || cfg.Source.Timeout != 2*time.Second {
		t.Errorf("source = %+v", cfg.Source)
	}
}

func TestApplyEnv_BadTimeout(t *testing.T) {
	cfg := Default()
	lookup := func(k string) (string, bool) {
		if k == "BULLSHARKS_SOURCE_TIMEOUT" {
			return "soon", true
		}
		return "", false
	}
	if err := applyEnv(&cfg, lookup); err == nil {
		t.Error("expected error for unparseable timeout")
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := Config{
		Source: Source{Path: "api/read", Timeout: -time.Second},
		Log:    Log{Format: "xml"},
	}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"base_url", "must start with /", "negative", "log.format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}
