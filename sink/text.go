package sink

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/ardnew/cycleprof"
	"github.com/ardnew/cycleprof/pkg"
	"github.com/ardnew/cycleprof/pkg/tsc"
)

// Text returns a handler that writes the report as a table to w.
func Text(w io.Writer) cycleprof.ResultHandler {
	return func(r *cycleprof.Report) {
		if err := WriteText(w, r); err != nil {
			pkg.LogError(pkg.ComponentSink, "failed to write text report", "error", err)
		}
	}
}

// WriteText writes a summary header followed by one table row per record,
// in registration order.
func WriteText(w io.Writer, r *cycleprof.Report) error {
	ew := &errWriter{w: w}

	fmt.Fprintf(ew, "cycleprof: %d sites, %s calls\n",
		len(r.Records), humanize.Comma(clamp(r.TotalCalls())))
	if model := tsc.Model(); model != "" {
		fmt.Fprintf(ew, "cpu: %s\n", model)
	}
	fmt.Fprintf(ew, "counter: %s\n", humanize.SI(float64(tsc.Frequency()), "Hz"))
	fmt.Fprintf(ew, "process: %s cycles (%s)\n",
		humanize.Comma(clamp(r.ProcessCycles)), tsc.Duration(r.ProcessCycles))
	fmt.Fprintf(ew, "profiled: %s cycles (%s)\n",
		humanize.Comma(clamp(r.ProfiledCycles)), tsc.Duration(r.ProfiledCycles))
	if ew.err != nil {
		return ew.err
	}
	if len(r.Records) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(ew)
	table.SetHeader([]string{"Site", "Calls", "Cycles", "Mean", "Time", "Share"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, rec := range r.Records {
		table.Append([]string{
			rec.Name(),
			humanize.Comma(clamp(rec.Calls())),
			humanize.Comma(clamp(rec.Cycles())),
			humanize.Comma(clamp(rec.MeanCycles())),
			tsc.Duration(rec.Cycles()).String(),
			fmt.Sprintf("%.1f%%", 100*r.Share(rec)),
		})
	}
	table.Render()
	return ew.err
}

// clamp converts a cycle count for humanize, which formats int64.
func clamp(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
