package cycleprof

// std is the package collector. Package initialization completes before any
// importing package runs, so it exists before the first instrumented site.
var std = NewCollector()

// Default returns the package collector.
func Default() *Collector { return std }

// SetResultHandler sets the handler invoked by [Shutdown]. The last handler
// set wins.
func SetResultHandler(h ResultHandler) { std.SetResultHandler(h) }

// Shutdown finalizes the package collector and delivers its report. Call it
// once, after the last instrumented region has exited, typically deferred at
// the top of main.
func Shutdown() { std.Finalize() }

// Mark opens a scope on the package collector for the calling site.
func Mark() Scope { return std.mark(1, "") }

// MarkAs opens a scope on the package collector for the calling site under
// an explicit name.
func MarkAs(name string) Scope { return std.mark(1, name) }
