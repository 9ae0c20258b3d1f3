// Package main runs instrumented busy-loop workloads and prints the cycle
// profile collected by cycleprof.
//
// Usage:
//
//	cyclebench [options]
//
// Options:
//
//	--iterations int        Loop iterations per workload call (default: 1000000)
//	--calls int             Calls per workload (default: 3)
//	--depth int             Recursion depth of the recursive workload (default: 4)
//	--format string         Report format, text or json (default: text)
//	--output string         Write the report to a file instead of stdout
//	--prom-textfile string  Also write a Prometheus textfile
//	--log-sites             Also log one line per site
//	-v, --verbose           Enable verbose (debug) logging
//	--json-log              Use JSON log format
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
