package sink

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ardnew/cycleprof"
	"github.com/ardnew/cycleprof/pkg"
)

var (
	siteCyclesDesc = prometheus.NewDesc(
		"cycleprof_site_cycles_total",
		"Cycles attributed to an instrumented site.",
		[]string{"site"}, nil,
	)
	siteCallsDesc = prometheus.NewDesc(
		"cycleprof_site_calls_total",
		"Completed visits to an instrumented site.",
		[]string{"site"}, nil,
	)
	processCyclesDesc = prometheus.NewDesc(
		"cycleprof_process_cycles",
		"Cycles elapsed over the profiled lifetime.",
		nil, nil,
	)
	profiledCyclesDesc = prometheus.NewDesc(
		"cycleprof_profiled_cycles",
		"Sum of the cycles of every closed scope.",
		nil, nil,
	)
)

type siteSample struct {
	name   string
	cycles uint64
	calls  uint64
}

// ReportCollector exposes a finalized report as Prometheus metrics. It holds
// a copy of the report, so it stays valid after the result handler returns.
type ReportCollector struct {
	processCycles  uint64
	profiledCycles uint64
	sites          []siteSample
}

// NewCollector copies r into a Prometheus collector. Records sharing a name
// are summed into one series.
func NewCollector(r *cycleprof.Report) *ReportCollector {
	c := &ReportCollector{
		processCycles:  r.ProcessCycles,
		profiledCycles: r.ProfiledCycles,
	}
	index := make(map[string]int, len(r.Records))
	for _, rec := range r.Records {
		i, ok := index[rec.Name()]
		if !ok {
			i = len(c.sites)
			index[rec.Name()] = i
			c.sites = append(c.sites, siteSample{name: rec.Name()})
		}
		c.sites[i].cycles += rec.Cycles()
		c.sites[i].calls += rec.Calls()
	}
	return c
}

// Describe implements [prometheus.Collector].
func (c *ReportCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- siteCyclesDesc
	ch <- siteCallsDesc
	ch <- processCyclesDesc
	ch <- profiledCyclesDesc
}

// Collect implements [prometheus.Collector].
func (c *ReportCollector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.sites {
		ch <- prometheus.MustNewConstMetric(siteCyclesDesc,
			prometheus.CounterValue, float64(s.cycles), s.name)
		ch <- prometheus.MustNewConstMetric(siteCallsDesc,
			prometheus.CounterValue, float64(s.calls), s.name)
	}
	ch <- prometheus.MustNewConstMetric(processCyclesDesc,
		prometheus.GaugeValue, float64(c.processCycles))
	ch <- prometheus.MustNewConstMetric(profiledCyclesDesc,
		prometheus.GaugeValue, float64(c.profiledCycles))
}

// WriteTextfile writes r to path in the Prometheus text exposition format.
// The file is replaced atomically.
func WriteTextfile(path string, r *cycleprof.Report) error {
	if path == "" {
		return pkg.ErrEmptyPath
	}
	reg := prometheus.NewRegistry()
	if err := reg.Register(NewCollector(r)); err != nil {
		return fmt.Errorf("register report collector: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write textfile: %w", err)
	}
	return nil
}

// Prometheus returns a handler that writes the report to a textfile at path.
func Prometheus(path string) cycleprof.ResultHandler {
	return func(r *cycleprof.Report) {
		if err := WriteTextfile(path, r); err != nil {
			pkg.LogError(pkg.ComponentSink, "failed to write prometheus textfile",
				"path", path, "error", err)
			return
		}
		pkg.LogInfo(pkg.ComponentSink, "prometheus textfile written", "path", path)
	}
}
