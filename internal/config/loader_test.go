package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	yamlConfig := `
listen: ":9090"
sleep: 250ms
defaultMode: goroutine
pool:
  workers: 32
smallPool:
  workers: 8
metrics:
  ringSize: 1024
  rateWindow: 2s
`
	cfg, err := ParseConfig([]byte(yamlConfig))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q, want %q", cfg.Listen, ":9090")
	}
	if time.Duration(cfg.Sleep) != 250*time.Millisecond {
		t.Errorf("Sleep = %v, want 250ms", cfg.Sleep)
	}
	if cfg.DefaultMode != "goroutine" {
		t.Errorf("DefaultMode = %q, want %q", cfg.DefaultMode, "goroutine")
	}
	if cfg.Pool.Workers != 32 {
		t.Errorf("Pool.Workers = %d, want 32", cfg.Pool.Workers)
	}
	if cfg.SmallPool.Workers != 8 {
		t.Errorf("SmallPool.Workers = %d, want 8", cfg.SmallPool.Workers)
	}
	if cfg.Metrics.RingSize != 1024 {
		t.Errorf("Metrics.RingSize = %d, want 1024", cfg.Metrics.RingSize)
	}
	if time.Duration(cfg.Metrics.RateWindow) != 2*time.Second {
		t.Errorf("Metrics.RateWindow = %v, want 2s", cfg.Metrics.RateWindow)
	}
}

func TestParseConfig_DefaultsApplied(t *testing.T) {
	cfg, err := ParseConfig([]byte("listen: \":7000\"\n"))
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Listen != ":7000" {
		t.Errorf("Listen = %q, want explicit value preserved", cfg.Listen)
	}
	if time.Duration(cfg.Sleep) != DefaultSleep {
		t.Errorf("Sleep = %v, want default %v", cfg.Sleep, DefaultSleep)
	}
	if cfg.DefaultMode != DefaultMode {
		t.Errorf("DefaultMode = %q, want default %q", cfg.DefaultMode, DefaultMode)
	}
	if cfg.Pool.Workers != DefaultPoolWorkers {
		t.Errorf("Pool.Workers = %d, want default %d", cfg.Pool.Workers, DefaultPoolWorkers)
	}
	if cfg.Metrics.RingSize != DefaultRingSize {
		t.Errorf("Metrics.RingSize = %d, want default %d", cfg.Metrics.RingSize, DefaultRingSize)
	}
}

func TestParseConfig_InvalidYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("listen: [unclosed")); err == nil {
		t.Error("ParseConfig() with invalid YAML expected error, got nil")
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "modebench.yaml")

	yamlContent := "sleep: 100ms\ndefaultMode: smallpool\n"
	if err := os.WriteFile(tmpFile, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if time.Duration(cfg.Sleep) != 100*time.Millisecond {
		t.Errorf("Sleep = %v, want 100ms", cfg.Sleep)
	}
	if cfg.DefaultMode != "smallpool" {
		t.Errorf("DefaultMode = %q, want %q", cfg.DefaultMode, "smallpool")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/path/modebench.yaml"); err == nil {
		t.Error("LoadConfig() with missing file expected error, got nil")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}
