package cycleprof

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Accumulate(t *testing.T) {
	c := NewCollector()
	r := c.register("site")

	r.accumulate(100)
	r.accumulate(50)

	assert.Equal(t, "site", r.Name())
	assert.Equal(t, uint64(150), r.Cycles())
	assert.Equal(t, uint64(2), r.Calls())
	assert.Equal(t, uint64(75), r.MeanCycles())
	assert.Equal(t, uint64(150), c.profiled)
}

func TestRecord_MeanCyclesNoCalls(t *testing.T) {
	r := &Record{name: "idle"}
	assert.Zero(t, r.MeanCycles())
}

func TestRecord_DetachedDoesNotTouchCollector(t *testing.T) {
	r := &Record{name: "orphan"}
	r.accumulate(10)
	assert.Equal(t, uint64(10), r.Cycles())
	assert.Equal(t, uint64(1), r.Calls())
}

func TestReport_Helpers(t *testing.T) {
	a := &Record{name: "a", cycles: 25, calls: 2}
	b := &Record{name: "b", cycles: 50, calls: 3}
	r := &Report{ProcessCycles: 100, Records: []*Record{a, b}}

	tests := []struct {
		name string
		rec  *Record
		want float64
	}{
		{"a", a, 0.25},
		{"b", b, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.rec, r.Lookup(tt.name))
			assert.InDelta(t, tt.want, r.Share(tt.rec), 1e-9)
		})
	}

	assert.Nil(t, r.Lookup("missing"))
	assert.Equal(t, uint64(5), r.TotalCalls())
	assert.Zero(t, (&Report{}).Share(a))
}
