// Package cycleprof is a low-overhead in-process profiler that times code
// regions in CPU cycles.
//
// A program marks the regions it wants measured. Each distinct site gets one
// [Record] holding the cumulative cycles spent in the region and the number of
// completed visits. Records are owned by a [Collector], which also measures the
// cycles elapsed over the whole profiled lifetime. When the collector is
// finalized it hands a [Report] to the registered [ResultHandler] exactly once.
//
// # Marking Regions
//
// The cheapest form caches the site's record in a [Site] value, so every
// visit after the first costs two counter reads and two additions:
//
//	var parseSite cycleprof.Site // named after the enclosing function
//
//	func parse(b []byte) error {
//	    defer parseSite.Enter().Exit()
//	    // ...
//	}
//
// [Named] returns the site with an explicit name. Sites are interned by name,
// so a Named site stored in a variable and one looked up inline on every
// visit share a record; the inline form pays a map lookup per visit.
// [Mark] and [MarkAs] need no declaration but look the site up by caller
// program counter on every visit:
//
//	func handle() {
//	    defer cycleprof.Mark().Exit()
//	    // ...
//	}
//
// The deferred Exit runs on every way out of the function, including panics.
// Nested and recursive regions overlap; each scope attributes its whole
// interval to its own record, so an outer record includes the cycles of the
// inner records it encloses.
//
// # Lifecycle
//
// The package-level collector is created during package initialization,
// before any importing package can reach an instrumented site. Go has no
// static destructors, so the program finalizes it explicitly:
//
//	func main() {
//	    cycleprof.SetResultHandler(sink.Text(os.Stdout))
//	    defer cycleprof.Shutdown()
//	    // ...
//	}
//
// [Shutdown] runs the handler synchronously. If no handler was registered
// the report is discarded. A report must not be retained after the handler
// returns; its record list is cleared once the handler is done.
//
// # Concurrency
//
// The profiler performs no locking and no atomic operations. All sites of a
// collector must be entered and exited from a single goroutine at a time.
// Programs that profile several goroutines can give each its own
// [Collector] and merge the reports.
//
// # Build Tags
//
// Building with the "noprof" tag compiles the instrumentation out:
//
//	go build -tags noprof
//
// Sites then return empty scopes, nothing is registered, and the report
// carries no records.
package cycleprof
