package logbase

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// Fatal logs msg at error level with the caller's source location and
// terminates the process.
func Fatal(log *slog.Logger, msg string, attrs ...slog.Attr) {
	// See https://pkg.go.dev/log/slog#hdr-Wrapping_output_methods
	var pcs [1]uintptr
	n := runtime.Callers(2, pcs[:]) // skip [Callers, Fatal]
	if n != 1 {
		panic("unexpected call stack")
	}
	r := slog.NewRecord(time.Now(), slog.LevelError, msg, pcs[0])
	r.AddAttrs(attrs...)
	_ = log.Handler().Handle(context.Background(), r)
	os.Exit(1)
}
