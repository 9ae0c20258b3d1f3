package cycleprof

// Report is the finalized aggregate delivered to a [ResultHandler].
type Report struct {
	// ProcessCycles is the number of cycles between collector creation and
	// finalization.
	ProcessCycles uint64

	// ProfiledCycles is the sum of every closed scope's elapsed cycles.
	// Nested regions are counted once per level.
	ProfiledCycles uint64

	// Records lists every registered site in first-registration order.
	Records []*Record
}

// ResultHandler consumes a finalized report. It must not retain the report
// or its records after returning.
type ResultHandler func(*Report)

// Lookup returns the first record with the given name, or nil.
func (r *Report) Lookup(name string) *Record {
	for _, rec := range r.Records {
		if rec.name == name {
			return rec
		}
	}
	return nil
}

// Share returns the fraction of the process cycles attributed to rec.
func (r *Report) Share(rec *Record) float64 {
	if r.ProcessCycles == 0 {
		return 0
	}
	return float64(rec.cycles) / float64(r.ProcessCycles)
}

// TotalCalls returns the number of completed visits across all records.
func (r *Report) TotalCalls() uint64 {
	var n uint64
	for _, rec := range r.Records {
		n += rec.calls
	}
	return n
}
