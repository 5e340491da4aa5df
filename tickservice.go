// Scheduler tick time service

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"example.com/tick-time/benchmark"

	"example.com/tick-time/core/config"
	"example.com/tick-time/core/monitor"
	"example.com/tick-time/core/ticks"
	"example.com/tick-time/core/timebase"

	"example.com/tick-time/driver/clocks"
)

var (
	log *zap.Logger
)

func initLogger(verbose bool) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = func(
		caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		// See https://github.com/scionproto/scion/blob/master/pkg/log/log.go
		p := caller.TrimmedPath()
		if len(p) > 30 {
			p = "..." + p[len(p)-27:]
		}
		enc.AppendString(fmt.Sprintf("%30s", p))
	}
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	var err error
	log, err = c.Build()
	if err != nil {
		panic(err)
	}
}

func runMonitor(log *zap.Logger, addr string) {
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(addr, nil)
	log.Fatal("failed to serve metrics", zap.Error(err))
}

func loadConfig(configFile string) config.SvcConfig {
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	return cfg
}

func newConverter(hz uint64) ticks.Converter {
	if hz == 0 {
		hz = clocks.ClockTicks()
	}
	return ticks.NewConverter(hz)
}

func runDaemon(configFile string) {
	ctx := context.Background()

	cfg := loadConfig(configFile)
	period, err := cfg.ResolveSamplePeriod()
	if err != nil {
		log.Fatal("failed to resolve sample period", zap.Error(err))
	}
	cv := newConverter(cfg.ResolveTickFrequency(clocks.ClockTicks()))

	mclk := &clocks.SystemClock{Log: log, Boottime: cfg.Boottime()}
	timebase.RegisterClock(mclk)

	monitor.StartSampler(ctx, log, mclk, cv, period)

	runMonitor(log, cfg.ResolveMetricsAddr())
}

func runTool(hz uint64, boottime bool, secondsStr string) {
	mclk := &clocks.SystemClock{Log: log, Boottime: boottime}
	timebase.RegisterClock(mclk)

	cv := newConverter(hz)

	var s uint64
	if secondsStr != "" {
		var err error
		s, err = strconv.ParseUint(secondsStr, 10, 64)
		if err != nil {
			log.Fatal("failed to parse seconds value", zap.Error(err))
		}
	} else {
		s = timebase.Seconds()
	}
	j := cv.SecondsToJiffies(s)

	fmt.Printf("seconds: %d\n", s)
	fmt.Printf("jiffies: %d (at %d hz, tick %v)\n", j, cv.HZ(), cv.Tick())
}

func runBenchmark(boottime bool) {
	mclk := &clocks.SystemClock{Log: zap.NewNop(), Boottime: boottime}
	timebase.RegisterClock(mclk)
	benchmark.RunClockBenchmark(slog.Default(), mclk)
}

func exitWithUsage() {
	fmt.Println("usage: tickservice daemon|tool|benchmark [flags]")
	os.Exit(1)
}

func main() {
	var (
		verbose    bool
		configFile string
		hz         uint64
		boottime   bool
		secondsStr string
	)

	daemonFlags := flag.NewFlagSet("daemon", flag.ExitOnError)
	toolFlags := flag.NewFlagSet("tool", flag.ExitOnError)
	benchmarkFlags := flag.NewFlagSet("benchmark", flag.ExitOnError)

	daemonFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	daemonFlags.StringVar(&configFile, "config", "", "Config file")

	toolFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	toolFlags.Uint64Var(&hz, "hz", 0, "Tick frequency (0 resolves the platform value)")
	toolFlags.BoolVar(&boottime, "boottime", false, "Read the boot-time clock")
	toolFlags.StringVar(&secondsStr, "seconds", "", "Convert this seconds value instead of reading the clock")

	benchmarkFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	benchmarkFlags.BoolVar(&boottime, "boottime", false, "Read the boot-time clock")

	if len(os.Args) < 2 {
		exitWithUsage()
	}

	switch os.Args[1] {
	case daemonFlags.Name():
		err := daemonFlags.Parse(os.Args[2:])
		if err != nil || daemonFlags.NArg() != 0 {
			exitWithUsage()
		}
		if configFile == "" {
			exitWithUsage()
		}
		initLogger(verbose)
		runDaemon(configFile)
	case toolFlags.Name():
		err := toolFlags.Parse(os.Args[2:])
		if err != nil || toolFlags.NArg() != 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runTool(hz, boottime, secondsStr)
	case benchmarkFlags.Name():
		err := benchmarkFlags.Parse(os.Args[2:])
		if err != nil || benchmarkFlags.NArg() != 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runBenchmark(boottime)
	default:
		exitWithUsage()
	}
}
