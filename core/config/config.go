package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	ClockSourceMonotonic = "monotonic"
	ClockSourceBoottime  = "boottime"

	DefaultMetricsAddr  = "127.0.0.1:8080"
	DefaultSamplePeriod = 1 * time.Second

	// DefaultTickFrequency is the fallback when neither the configuration
	// nor the platform provides a tick rate.
	DefaultTickFrequency = 100
)

var errUnknownClockSource = errors.New("unknown clock source")

type SvcConfig struct {
	MetricsAddr   string `toml:"metrics_address,omitempty"`
	ClockSource   string `toml:"clock_source,omitempty"`
	TickFrequency uint64 `toml:"tick_frequency,omitempty"`
	SamplePeriod  string `toml:"sample_period,omitempty"`
}

func Load(configFile string) (SvcConfig, error) {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return SvcConfig{}, err
	}
	var cfg SvcConfig
	err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		return SvcConfig{}, err
	}
	if cfg.ClockSource != "" &&
		cfg.ClockSource != ClockSourceMonotonic &&
		cfg.ClockSource != ClockSourceBoottime {
		return SvcConfig{}, fmt.Errorf("%w: %q", errUnknownClockSource, cfg.ClockSource)
	}
	return cfg, nil
}

// Boottime reports whether the boot-time clock source was selected.
func (c SvcConfig) Boottime() bool {
	return c.ClockSource == ClockSourceBoottime
}

// ResolveMetricsAddr returns the configured metrics address or the default.
func (c SvcConfig) ResolveMetricsAddr() string {
	if c.MetricsAddr == "" {
		return DefaultMetricsAddr
	}
	return c.MetricsAddr
}

// ResolveSamplePeriod parses the configured sample period, falling back to
// the default when unset.
func (c SvcConfig) ResolveSamplePeriod() (time.Duration, error) {
	if c.SamplePeriod == "" {
		return DefaultSamplePeriod, nil
	}
	d, err := time.ParseDuration(c.SamplePeriod)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, errors.New("sample period must be positive")
	}
	return d, nil
}

// ResolveTickFrequency picks the tick frequency: an explicit configuration
// value wins over the platform-detected rate, which wins over the default.
func (c SvcConfig) ResolveTickFrequency(detected uint64) uint64 {
	if c.TickFrequency != 0 {
		return c.TickFrequency
	}
	if detected != 0 {
		return detected
	}
	return DefaultTickFrequency
}
