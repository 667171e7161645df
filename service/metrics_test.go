package service

import (
	"strings"
	"testing"

	"github.com/Gthulhu/priosim/simulator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricCollectorObserve(t *testing.T) {
	c := NewMetricCollector("test-machine")
	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(c))

	res, err := simulator.Simulate([]simulator.Process{
		{ID: 1, ArrivalTime: 2, BurstTime: 2},
	})
	require.NoError(t, err)

	c.ObserveResult(res, false)
	c.ObserveResult(res, true)
	c.ObserveOutcome(outcomeInvalid)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.runs.WithLabelValues(outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runs.WithLabelValues(outcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cacheHits))

	// two outcome series plus one series per remaining metric
	assert.Equal(t, 6, testutil.CollectAndCount(c))
	count, err := testutil.GatherAndCount(registry, "priosim_simulation_total_time")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(`
# HELP priosim_result_cache_hits_total Simulations answered from the result cache.
# TYPE priosim_result_cache_hits_total counter
priosim_result_cache_hits_total{machine_id="test-machine"} 1
`), "priosim_result_cache_hits_total"))
}
