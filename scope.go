package cycleprof

import "github.com/ardnew/cycleprof/pkg/tsc"

// Scope measures one visit to a site. It is created by [Site.Enter] or
// [Mark] and closed by Exit, normally through defer:
//
//	defer site.Enter().Exit()
//
// A Scope must be exited exactly once.
type Scope struct {
	rec   *Record
	begin uint64
}

// Exit adds the cycles elapsed since the scope was opened to its record and
// counts one call. Exit on the zero Scope does nothing.
func (s Scope) Exit() {
	if s.rec == nil {
		return
	}
	s.rec.accumulate(tsc.Read() - s.begin)
}
