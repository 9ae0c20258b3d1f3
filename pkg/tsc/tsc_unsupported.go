//go:build !amd64 && !arm64

package tsc

// There is no readable cycle counter on this architecture.
var _ = cycleCounterRequiresAMD64OrARM64
