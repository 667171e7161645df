package service

import (
	"github.com/Gthulhu/priosim/simulator"
	"github.com/prometheus/client_golang/prometheus"
)

const metricNamespace = "priosim"

// Outcomes recorded on the runs counter.
const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// MetricCollector groups the simulation metrics so they register and unregister as one collector.
type MetricCollector struct {
	runs         *prometheus.CounterVec
	cacheHits    prometheus.Counter
	makespan     prometheus.Histogram
	processCount prometheus.Histogram
	idleRatio    prometheus.Histogram
}

func NewMetricCollector(machineID string) *MetricCollector {
	constLabels := prometheus.Labels{"machine_id": machineID}
	return &MetricCollector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   metricNamespace,
			Name:        "simulation_runs_total",
			Help:        "Simulation requests by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   metricNamespace,
			Name:        "result_cache_hits_total",
			Help:        "Simulations answered from the result cache.",
			ConstLabels: constLabels,
		}),
		makespan: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   metricNamespace,
			Name:        "simulation_total_time",
			Help:        "Simulated time units until the last process completed.",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(1, 4, 10),
		}),
		processCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   metricNamespace,
			Name:        "simulation_process_count",
			Help:        "Processes per simulated set.",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(1, 2, 11),
		}),
		idleRatio: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   metricNamespace,
			Name:        "simulation_idle_ratio",
			Help:        "Share of simulated time the processor was idle.",
			ConstLabels: constLabels,
			Buckets:     prometheus.LinearBuckets(0, 0.1, 11),
		}),
	}
}

func (c *MetricCollector) Describe(ch chan<- *prometheus.Desc) {
	c.runs.Describe(ch)
	c.cacheHits.Describe(ch)
	c.makespan.Describe(ch)
	c.processCount.Describe(ch)
	c.idleRatio.Describe(ch)
}

func (c *MetricCollector) Collect(ch chan<- prometheus.Metric) {
	c.runs.Collect(ch)
	c.cacheHits.Collect(ch)
	c.makespan.Collect(ch)
	c.processCount.Collect(ch)
	c.idleRatio.Collect(ch)
}

// ObserveOutcome counts a request that produced no result.
func (c *MetricCollector) ObserveOutcome(outcome string) {
	c.runs.WithLabelValues(outcome).Inc()
}

// ObserveResult counts a successful request and records the shape of its result.
func (c *MetricCollector) ObserveResult(res *simulator.Result, cached bool) {
	c.runs.WithLabelValues(outcomeOK).Inc()
	if cached {
		c.cacheHits.Inc()
	}
	c.makespan.Observe(float64(res.TotalTime))
	c.processCount.Observe(float64(len(res.Processes)))
	if res.TotalTime > 0 {
		c.idleRatio.Observe(float64(res.IdleTime) / float64(res.TotalTime))
	}
}
