package main

import "github.com/ardnew/cycleprof"

var (
	spinSite  cycleprof.Site
	outerSite = cycleprof.Named("outer")
	innerSite = cycleprof.Named("inner")
)

var spinSink int

// spin burns n iterations of integer work.
//
//go:noinline
func spin(n int) {
	defer spinSite.Enter().Exit()
	sum := spinSink
	for i := 0; i < n; i++ {
		sum += i ^ (sum >> 3)
	}
	spinSink = sum
}

// nested runs an inner region inside an outer one, so the outer record
// includes the inner record's cycles.
func nested(n int) {
	defer outerSite.Enter().Exit()
	spin(n / 2)
	func() {
		defer innerSite.Enter().Exit()
		spin(n / 2)
	}()
}

// recurse enters the same site once per level.
func recurse(n, depth int) {
	defer cycleprof.MarkAs("recurse").Exit()
	spin(n / (depth + 1))
	if depth > 0 {
		recurse(n, depth-1)
	}
}

func runWorkloads(iterations, calls, depth int) {
	defer cycleprof.Mark().Exit()
	for i := 0; i < calls; i++ {
		spin(iterations)
	}
	for i := 0; i < calls; i++ {
		nested(iterations)
	}
	for i := 0; i < calls; i++ {
		recurse(iterations, depth)
	}
}
