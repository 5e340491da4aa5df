package monitor

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go.uber.org/zap"

	"example.com/tick-time/base/metrics"
	"example.com/tick-time/base/timebase"

	"example.com/tick-time/core/ticks"
)

type samplerMetrics struct {
	samples prometheus.Counter
	seconds prometheus.Gauge
	jiffies prometheus.Gauge
	tickHZ  prometheus.Gauge
}

func newSamplerMetrics() *samplerMetrics {
	return &samplerMetrics{
		samples: promauto.NewCounter(prometheus.CounterOpts{
			Name: metrics.SamplerSamplesN,
			Help: metrics.SamplerSamplesH,
		}),
		seconds: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.SamplerMonotonicSecondsN,
			Help: metrics.SamplerMonotonicSecondsH,
		}),
		jiffies: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.SamplerJiffiesN,
			Help: metrics.SamplerJiffiesH,
		}),
		tickHZ: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metrics.SamplerTickFrequencyN,
			Help: metrics.SamplerTickFrequencyH,
		}),
	}
}

func runSampler(ctx context.Context, log *zap.Logger, mtrcs *samplerMetrics,
	clk timebase.MonotonicClock, cv ticks.Converter, period time.Duration) {
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s := ticks.MonotonicSeconds(clk)
			j := cv.SecondsToJiffies(s)
			mtrcs.samples.Inc()
			mtrcs.seconds.Set(float64(s))
			mtrcs.jiffies.Set(float64(j))
			log.Debug("sampled monotonic clock",
				zap.Uint64("seconds", s),
				zap.Uint64("jiffies", j),
			)
		}
	}
}

// StartSampler periodically reads clk and publishes the derived second and
// jiffy counts as Prometheus metrics.
func StartSampler(ctx context.Context, log *zap.Logger,
	clk timebase.MonotonicClock, cv ticks.Converter, period time.Duration) {
	log.Info("sampler starting",
		zap.Uint64("tick_frequency", cv.HZ()),
		zap.Duration("period", period),
	)
	mtrcs := newSamplerMetrics()
	mtrcs.tickHZ.Set(float64(cv.HZ()))
	go runSampler(ctx, log, mtrcs, clk, cv, period)
}
