//go:build amd64

package tsc

import "github.com/klauspost/cpuid/v2"

// Read returns the current time-stamp counter value.
// Implemented in tsc_amd64.s.
func Read() uint64

// nativeFrequency returns the nominal CPU frequency reported by CPUID, or 0
// when unknown. On processors with an invariant TSC the counter ticks at the
// nominal rate regardless of the current P-state.
func nativeFrequency() uint64 {
	if cpuid.CPU.Hz <= 0 {
		return 0
	}
	return uint64(cpuid.CPU.Hz)
}
