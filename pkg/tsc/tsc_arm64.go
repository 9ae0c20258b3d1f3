//go:build arm64

package tsc

// Read returns the current virtual counter value.
// Implemented in tsc_arm64.s.
func Read() uint64

// cntfrq reads the counter frequency from CNTFRQ_EL0.
// Implemented in tsc_arm64.s.
func cntfrq() uint64

func nativeFrequency() uint64 {
	return cntfrq()
}
