package benchmark

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"example.com/tick-time/base/logbase"
	"example.com/tick-time/base/timebase"
)

// RunClockBenchmark measures the latency of single monotonic clock reads
// and prints a latency percentile distribution in nanoseconds.
func RunClockBenchmark(log *slog.Logger, clk timebase.MonotonicClock) {
	const numGoroutine = 4
	const numReadsPerGoroutine = 1_000_000
	var mu sync.Mutex
	sg := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(numGoroutine)
	for i := numGoroutine; i > 0; i-- {
		go func() {
			hg := hdrhistogram.New(1, 50_000_000, 5)

			defer wg.Done()
			<-sg
			for j := numReadsPerGoroutine; j > 0; j-- {
				t0 := clk.ReadNanoseconds()
				t1 := clk.ReadNanoseconds()
				if t1 < t0 {
					logbase.Fatal(log, "clock went backwards",
						slog.Uint64("before", t0), slog.Uint64("after", t1))
				}
				d := int64(t1 - t0)
				if d < 1 {
					d = 1
				}
				err := hg.RecordValue(d)
				if err != nil {
					logbase.Fatal(log, "failed to record histogram value",
						slog.Any("error", err))
				}
			}
			mu.Lock()
			defer mu.Unlock()
			hg.PercentilesPrint(os.Stdout, 1, 1.0)
		}()
	}
	t0 := time.Now()
	close(sg)
	wg.Wait()
	log.LogAttrs(context.Background(), slog.LevelInfo, "benchmark done",
		slog.Duration("duration", time.Since(t0)))
}
