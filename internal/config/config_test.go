package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Username != "nsroot" || s.Password != "nsroot" {
		t.Errorf("unexpected default credentials: %s/%s", s.Username, s.Password)
	}
	if !s.SSL {
		t.Error("expected SSL on by default")
	}
	if s.APIVersion != "v1" {
		t.Errorf("unexpected default api version %q", s.APIVersion)
	}
	if s.Timeout != 15*time.Second {
		t.Errorf("unexpected default timeout %v", s.Timeout)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netscaler.yaml")
	content := `hostname: ns01.example.com
port: 8443
username: monitor
timeout: 5s
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Host != "ns01.example.com" || s.Port != 8443 || s.Username != "monitor" {
		t.Errorf("file values not applied: %+v", s)
	}
	if s.Timeout != 5*time.Second {
		t.Errorf("unexpected timeout %v", s.Timeout)
	}
	// Values the file does not set keep their defaults.
	if s.Password != "nsroot" {
		t.Errorf("default password lost: %q", s.Password)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netscaler.yaml")
	if err := os.WriteFile(path, []byte("username: fromfile\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NETSCALER_USERNAME", "fromenv")
	t.Setenv("NETSCALER_PASSWORD", "sekrit")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Username != "fromenv" {
		t.Errorf("environment should override the file, got %q", s.Username)
	}
	if s.Password != "sekrit" {
		t.Errorf("environment password not applied, got %q", s.Password)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
