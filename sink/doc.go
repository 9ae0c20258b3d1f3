// Package sink provides result handlers that render or export a
// [cycleprof.Report].
//
// Every constructor returns a [cycleprof.ResultHandler] suitable for
// [cycleprof.SetResultHandler]. Handlers run once, synchronously, while the
// collector is finalized, and copy whatever they need from the report before
// returning. Write failures are logged through [pkg.LogError] because result
// handlers have no error return; the Write* functions expose the same
// renderers with errors for direct use.
//
// # Formats
//
//   - [Text]: aligned table in registration order
//   - [JSON]: one JSON document
//   - [Prometheus]: text exposition file for the node exporter textfile
//     collector
//   - [Slog], [Zerolog]: one structured log line per site
//
// [Tee] combines several handlers:
//
//	cycleprof.SetResultHandler(sink.Tee(
//	    sink.Text(os.Stdout),
//	    sink.Prometheus("/var/lib/node_exporter/cycleprof.prom"),
//	))
package sink
