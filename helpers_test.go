package cycleprof

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/ardnew/cycleprof/pkg"
)

var spinSink int

// spin burns roughly n iterations of integer work.
//
//go:noinline
func spin(n int) {
	sum := spinSink
	for i := 0; i < n; i++ {
		sum += i ^ (sum >> 3)
	}
	spinSink = sum
}

// withDefault replaces the package collector for the duration of the test.
func withDefault(t *testing.T) *Collector {
	t.Helper()
	prev := std
	std = NewCollector()
	t.Cleanup(func() { std = prev })
	return std
}

// capture returns a handler that copies the report and counts invocations.
func capture(calls *int, out *[]snapshot, process *uint64) ResultHandler {
	return func(r *Report) {
		*calls++
		*process = r.ProcessCycles
		*out = (*out)[:0]
		for _, rec := range r.Records {
			*out = append(*out, snapshot{rec.Name(), rec.Cycles(), rec.Calls()})
		}
	}
}

type snapshot struct {
	name   string
	cycles uint64
	calls  uint64
}

// captureLog routes debug-level profiler logging into the returned buffer
// for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := pkg.Logger()
	pkg.SetLogger(pkg.NewLogger(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { pkg.SetLogger(original) })
	return &buf
}
