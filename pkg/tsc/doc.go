// Package tsc reads the hardware cycle counter used as the profiler's
// timing source.
//
// On amd64 the counter is the time-stamp counter (RDTSC, preceded by LFENCE
// so earlier instructions retire before the read). On arm64 it is the
// virtual counter CNTVCT_EL0, preceded by ISB. Other architectures are not
// supported and the package refuses to build there rather than substituting
// a wall clock:
//
//	GOARCH=riscv64 go build ./...
//	pkg/tsc/tsc_unsupported.go: undefined: cycleCounterRequiresAMD64OrARM64
//
// # Conversion
//
// Cycle counts are the unit of every measurement. [Frequency] reports the
// counter rate in ticks per second so callers can present durations:
//
//	start := tsc.Read()
//	work()
//	fmt.Println(tsc.Duration(tsc.Read() - start))
//
// The frequency is determined once, on first use.
package tsc
