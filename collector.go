package cycleprof

import (
	"runtime"

	"github.com/ardnew/cycleprof/pkg"
	"github.com/ardnew/cycleprof/pkg/tsc"
)

// Collector owns the records of a profiling session and anchors its start
// and end. It is not safe for concurrent use.
//
// The zero value is usable: its session starts on first use, when a site is
// created or registered or a handler is set.
type Collector struct {
	start    uint64
	profiled uint64
	records  []*Record

	// sites caches records resolved by caller program counter.
	sites map[uintptr]*Record

	// named interns sites created with an explicit name.
	named map[string]*Site

	handler ResultHandler
	state   pkg.State
}

// NewCollector returns a running collector whose process interval starts now.
func NewCollector() *Collector {
	c := &Collector{}
	c.begin()
	return c
}

// begin starts the session of a zero Collector.
func (c *Collector) begin() {
	if c.state != pkg.StateUninitialized {
		return
	}
	c.start = tsc.Read()
	c.sites = make(map[uintptr]*Record)
	c.named = make(map[string]*Site)
	c.state = pkg.StateRunning
}

// State returns the collector's lifecycle state.
func (c *Collector) State() pkg.State { return c.state }

// SetResultHandler sets the handler invoked by [Collector.Finalize]. The last
// handler set before finalization wins. A nil handler discards the report.
func (c *Collector) SetResultHandler(h ResultHandler) {
	c.begin()
	if err := c.state.Err(); err != nil {
		pkg.LogWarn(pkg.ComponentCollector, "result handler ignored", "error", err)
		return
	}
	c.handler = h
}

// Site returns a site bound to this collector. Its record is registered the
// first time the site is entered. Sites with the same non-empty name are the
// same site, so
//
//	defer c.Site("decode").Enter().Exit()
//
// accumulates into one record, at the cost of a name lookup per visit.
// An empty name yields a new site named after the function that first
// enters it.
func (c *Collector) Site(name string) *Site {
	c.begin()
	if name == "" || c.named == nil {
		return &Site{c: c, name: name}
	}
	s, ok := c.named[name]
	if !ok {
		s = &Site{c: c, name: name}
		c.named[name] = s
	}
	return s
}

// Mark opens a scope for the calling site, identified by its program
// counter and named after the calling function.
func (c *Collector) Mark() Scope {
	return c.mark(1, "")
}

// MarkAs is like [Collector.Mark] with an explicit site name.
func (c *Collector) MarkAs(name string) Scope {
	return c.mark(1, name)
}

// Finalize closes the profiling session. It computes the process cycles,
// invokes the result handler once with the report, and releases the records.
// Calls after the first have no effect.
func (c *Collector) Finalize() {
	switch c.state {
	case pkg.StateFinalized:
		return
	case pkg.StateUninitialized:
		c.state = pkg.StateFinalized
		pkg.LogDebug(pkg.ComponentCollector, "finalized before first use",
			"error", pkg.ErrUninitialized)
		return
	}
	end := tsc.Read()
	c.state = pkg.StateFinalized
	defer c.release()

	report := &Report{
		ProcessCycles:  end - c.start,
		ProfiledCycles: c.profiled,
		Records:        c.records,
	}
	if c.handler == nil {
		pkg.LogDebug(pkg.ComponentCollector, "no result handler, report discarded",
			"records", len(report.Records))
	} else {
		c.handler(report)
		pkg.LogDebug(pkg.ComponentCollector, "report delivered",
			"records", len(report.Records), "process_cycles", report.ProcessCycles)
	}
	report.Records = nil
}

// release detaches and drops every record. It runs even if the handler
// panics.
func (c *Collector) release() {
	for _, r := range c.records {
		r.owner = nil
	}
	c.records = nil
	c.sites = nil
	c.named = nil
	c.handler = nil
}

// register creates the record for a new site and appends it to the report
// order. After finalization the record is detached and never reported.
func (c *Collector) register(name string) *Record {
	c.begin()
	r := &Record{name: name}
	if err := c.state.Err(); err != nil {
		pkg.LogWarn(pkg.ComponentSite, "site registered after finalize",
			"site", name, "error", err)
		return r
	}
	r.owner = c
	c.records = append(c.records, r)
	pkg.LogDebug(pkg.ComponentSite, "site registered",
		"site", name, "index", len(c.records)-1)
	return r
}

// lookup returns the record for the call site at pc, registering it on first
// use.
func (c *Collector) lookup(pc uintptr, name string) *Record {
	if r, ok := c.sites[pc]; ok {
		return r
	}
	if name == "" {
		name = pcName(pc)
	}
	r := c.register(name)
	if c.sites != nil {
		c.sites[pc] = r
	}
	return r
}

// callerName returns the function name skip frames above its caller.
func callerName(skip int) string {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return "unknown"
	}
	return pcName(pcs[0])
}

func pcName(pc uintptr) string {
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.Function == "" {
		return "unknown"
	}
	return frame.Function
}
