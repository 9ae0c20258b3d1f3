package cycleprof

// Record holds the cumulative statistics of one instrumented site.
//
// A Record is created the first time its site executes and is owned by the
// collector that registered it. Its counters only grow.
type Record struct {
	name   string
	cycles uint64
	calls  uint64

	// owner receives the profiled-cycle total; nil once detached.
	owner *Collector
}

// Name returns the site identifier.
func (r *Record) Name() string { return r.name }

// Cycles returns the total cycles attributed to the site.
func (r *Record) Cycles() uint64 { return r.cycles }

// Calls returns the number of completed visits to the site.
func (r *Record) Calls() uint64 { return r.calls }

// MeanCycles returns the average cycles per completed visit.
func (r *Record) MeanCycles() uint64 {
	if r.calls == 0 {
		return 0
	}
	return r.cycles / r.calls
}

// accumulate folds one completed visit of elapsed cycles into the record.
func (r *Record) accumulate(elapsed uint64) {
	r.cycles += elapsed
	r.calls++
	if r.owner != nil {
		r.owner.profiled += elapsed
	}
}
