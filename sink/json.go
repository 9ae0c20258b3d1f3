package sink

import (
	"encoding/json"
	"io"

	"github.com/ardnew/cycleprof"
	"github.com/ardnew/cycleprof/pkg"
	"github.com/ardnew/cycleprof/pkg/tsc"
)

type jsonRecord struct {
	Name       string `json:"name"`
	Calls      uint64 `json:"calls"`
	Cycles     uint64 `json:"cycles"`
	MeanCycles uint64 `json:"mean_cycles"`
	DurationNs int64  `json:"duration_ns"`
}

type jsonReport struct {
	CPU            string       `json:"cpu,omitempty"`
	CounterHz      uint64       `json:"counter_hz"`
	ProcessCycles  uint64       `json:"process_cycles"`
	ProfiledCycles uint64       `json:"profiled_cycles"`
	Records        []jsonRecord `json:"records"`
}

// JSON returns a handler that writes the report to w as one JSON document.
func JSON(w io.Writer) cycleprof.ResultHandler {
	return func(r *cycleprof.Report) {
		if err := WriteJSON(w, r); err != nil {
			pkg.LogError(pkg.ComponentSink, "failed to write json report", "error", err)
		}
	}
}

// WriteJSON writes the report to w as indented JSON. Records keep their
// registration order.
func WriteJSON(w io.Writer, r *cycleprof.Report) error {
	out := jsonReport{
		CPU:            tsc.Model(),
		CounterHz:      tsc.Frequency(),
		ProcessCycles:  r.ProcessCycles,
		ProfiledCycles: r.ProfiledCycles,
		Records:        make([]jsonRecord, 0, len(r.Records)),
	}
	for _, rec := range r.Records {
		out.Records = append(out.Records, jsonRecord{
			Name:       rec.Name(),
			Calls:      rec.Calls(),
			Cycles:     rec.Cycles(),
			MeanCycles: rec.MeanCycles(),
			DurationNs: tsc.Duration(rec.Cycles()).Nanoseconds(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
