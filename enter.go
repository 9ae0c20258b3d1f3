//go:build !noprof

package cycleprof

import (
	"runtime"

	"github.com/ardnew/cycleprof/pkg/tsc"
)

// Enter opens a scope on the site, registering the site's record on the
// first call.
func (s *Site) Enter() Scope {
	if s.rec == nil {
		s.resolve()
	}
	return Scope{rec: s.rec, begin: tsc.Read()}
}

// mark opens a scope for the call site skip frames above mark's caller.
func (c *Collector) mark(skip int, name string) Scope {
	var pcs [1]uintptr
	runtime.Callers(skip+2, pcs[:])
	return Scope{rec: c.lookup(pcs[0], name), begin: tsc.Read()}
}
