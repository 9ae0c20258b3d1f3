package tsc

import (
	"math"
	"sync"
	"time"

	"github.com/klauspost/cpuid/v2"

	"github.com/ardnew/cycleprof/pkg"
)

// calibrationPeriod is the busy-wait used to estimate the counter rate when
// the hardware does not report it.
const calibrationPeriod = 10 * time.Millisecond

// overheadSamples is the number of back-to-back reads used by [Overhead].
const overheadSamples = 10000

var (
	freqOnce sync.Once
	freqHz   uint64
)

// Frequency returns the counter rate in ticks per second. The value is
// computed on the first call and cached.
func Frequency() uint64 {
	freqOnce.Do(func() {
		freqHz = nativeFrequency()
		source := "hardware"
		if freqHz == 0 {
			freqHz = calibrate(calibrationPeriod)
			source = "calibrated"
		}
		pkg.LogDebug(pkg.ComponentTSC, "counter frequency",
			"hz", freqHz, "source", source, "cpu", Model())
	})
	return freqHz
}

// Duration converts a cycle count to wall time using [Frequency].
func Duration(cycles uint64) time.Duration {
	hz := Frequency()
	if hz == 0 {
		return 0
	}
	secs := float64(cycles) / float64(hz)
	ns := secs * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

// Overhead returns the smallest observed delta between two consecutive
// reads, an estimate of the cost of one measurement.
func Overhead() uint64 {
	least := uint64(math.MaxUint64)
	for i := 0; i < overheadSamples; i++ {
		c0 := Read()
		delta := Read() - c0
		if delta < least {
			least = delta
		}
	}
	return least
}

// Model returns the CPU brand string, or the empty string if unknown.
func Model() string {
	return cpuid.CPU.BrandName
}

// calibrate measures the counter against the monotonic clock over period.
func calibrate(period time.Duration) uint64 {
	start := time.Now()
	c0 := Read()
	for time.Since(start) < period {
	}
	c1 := Read()
	elapsed := time.Since(start)
	if elapsed <= 0 || c1 <= c0 {
		return 0
	}
	return uint64(float64(c1-c0) / elapsed.Seconds())
}
