package cycleprof

// Site is an instrumentation point that caches its record after the first
// visit. The zero value is ready to use: it reports to the package collector
// and is named after the function that first enters it.
type Site struct {
	c    *Collector
	name string
	rec  *Record
}

// Named returns the site of the package collector with the given name,
// creating it on first use. Repeated calls with one name return the same
// site.
func Named(name string) *Site {
	return std.Site(name)
}

// Name returns the site identifier, or the empty string if the site has not
// been entered yet and was created without a name.
func (s *Site) Name() string {
	if s.rec != nil {
		return s.rec.name
	}
	return s.name
}

// Record returns the site's record, or nil before the first visit.
func (s *Site) Record() *Record { return s.rec }

// resolve registers the site's record. It is called from Enter, so the
// instrumented function is two frames up.
//
//go:noinline
func (s *Site) resolve() {
	if s.c == nil {
		s.c = std
	}
	name := s.name
	if name == "" {
		name = callerName(2)
	}
	s.rec = s.c.register(name)
}
