package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"example.com/tick-time/core/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickservice.toml")
	err := os.WriteFile(path, []byte(contents), 0o644)
	if err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
metrics_address = "127.0.0.1:9100"
clock_source = "boottime"
tick_frequency = 250
sample_period = "500ms"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}
	if cfg.MetricsAddr != "127.0.0.1:9100" {
		t.Errorf("MetricsAddr = %q, want 127.0.0.1:9100", cfg.MetricsAddr)
	}
	if !cfg.Boottime() {
		t.Errorf("Boottime() = false, want true")
	}
	if cfg.TickFrequency != 250 {
		t.Errorf("TickFrequency = %v, want 250", cfg.TickFrequency)
	}
	period, err := cfg.ResolveSamplePeriod()
	if err != nil {
		t.Fatalf("ResolveSamplePeriod failed: %v", err)
	}
	if period != 500*time.Millisecond {
		t.Errorf("ResolveSamplePeriod() = %v, want 500ms", period)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("config.Load failed: %v", err)
	}
	if cfg.Boottime() {
		t.Errorf("Boottime() = true, want false")
	}
	if got := cfg.ResolveMetricsAddr(); got != config.DefaultMetricsAddr {
		t.Errorf("ResolveMetricsAddr() = %q, want %q", got, config.DefaultMetricsAddr)
	}
	period, err := cfg.ResolveSamplePeriod()
	if err != nil {
		t.Fatalf("ResolveSamplePeriod failed: %v", err)
	}
	if period != config.DefaultSamplePeriod {
		t.Errorf("ResolveSamplePeriod() = %v, want %v", period, config.DefaultSamplePeriod)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `no_such_option = true`)
	_, err := config.Load(path)
	if err == nil {
		t.Errorf("config.Load accepted unknown field")
	}
}

func TestLoadRejectsUnknownClockSource(t *testing.T) {
	path := writeConfig(t, `clock_source = "sundial"`)
	_, err := config.Load(path)
	if err == nil {
		t.Errorf("config.Load accepted unknown clock source")
	}
}

func TestResolveTickFrequency(t *testing.T) {
	tests := []struct {
		configured uint64
		detected   uint64
		want       uint64
	}{
		{250, 100, 250},
		{0, 1000, 1000},
		{0, 0, config.DefaultTickFrequency},
	}

	for _, tt := range tests {
		cfg := config.SvcConfig{TickFrequency: tt.configured}
		got := cfg.ResolveTickFrequency(tt.detected)
		if got != tt.want {
			t.Errorf("ResolveTickFrequency(%v) with configured %v = %v, want %v",
				tt.detected, tt.configured, got, tt.want)
		}
	}
}

func TestResolveSamplePeriodInvalid(t *testing.T) {
	for _, period := range []string{"never", "-1s", "0s"} {
		cfg := config.SvcConfig{SamplePeriod: period}
		_, err := cfg.ResolveSamplePeriod()
		if err == nil {
			t.Errorf("ResolveSamplePeriod accepted %q", period)
		}
	}
}
