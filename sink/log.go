package sink

import (
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/ardnew/cycleprof"
	"github.com/ardnew/cycleprof/pkg"
	"github.com/ardnew/cycleprof/pkg/tsc"
)

// Slog returns a handler that logs a summary line and one line per record
// at info level. A nil logger uses [pkg.Logger].
func Slog(logger *slog.Logger) cycleprof.ResultHandler {
	return func(r *cycleprof.Report) {
		l := logger
		if l == nil {
			l = pkg.Logger()
		}
		l = l.With("component", string(pkg.ComponentSink))
		l.Info("profile report",
			"sites", len(r.Records),
			"process_cycles", r.ProcessCycles,
			"profiled_cycles", r.ProfiledCycles,
			"process_time", tsc.Duration(r.ProcessCycles),
		)
		for _, rec := range r.Records {
			l.Info("site",
				"site", rec.Name(),
				"calls", rec.Calls(),
				"cycles", rec.Cycles(),
				"mean_cycles", rec.MeanCycles(),
				"time", tsc.Duration(rec.Cycles()),
			)
		}
	}
}

// Zerolog returns a handler that logs a summary event and one event per
// record at info level.
func Zerolog(logger zerolog.Logger) cycleprof.ResultHandler {
	return func(r *cycleprof.Report) {
		l := logger.With().Str("component", string(pkg.ComponentSink)).Logger()
		l.Info().
			Int("sites", len(r.Records)).
			Uint64("process_cycles", r.ProcessCycles).
			Uint64("profiled_cycles", r.ProfiledCycles).
			Dur("process_time", tsc.Duration(r.ProcessCycles)).
			Msg("profile report")
		for _, rec := range r.Records {
			l.Info().
				Str("site", rec.Name()).
				Uint64("calls", rec.Calls()).
				Uint64("cycles", rec.Cycles()).
				Uint64("mean_cycles", rec.MeanCycles()).
				Dur("time", tsc.Duration(rec.Cycles())).
				Msg("site")
		}
	}
}
