package promtest_test

import (
	"strings"
	"testing"

	"github.com/klout/brickhouse/kit/prom/promtest"
	"github.com/klout/brickhouse/udf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestFindMetric(t *testing.T) {
	r := udf.NewPrometheusReporter()
	reg := prometheus.NewRegistry()
	reg.MustRegister(r.PrometheusCollectors()...)
	r.IncrCounter("XUnitExplode", "NumXUnits", 8)

	mfs := promtest.MustGather(t, reg)
	m := promtest.MustFindMetric(t, mfs, "brickhouse_udf_counters_total", map[string]string{
		"group":   "XUnitExplode",
		"counter": "NumXUnits",
	})
	require.Equal(t, 8.0, m.GetCounter().GetValue())

	require.Nil(t, promtest.FindMetric(mfs, "brickhouse_udf_counters_total", map[string]string{
		"group":   "XUnitExplode",
		"counter": "BadRows",
	}))
	require.Nil(t, promtest.FindMetric(mfs, "missing", nil))
}

func TestFromText(t *testing.T) {
	mfs, err := promtest.FromText(strings.NewReader(`# HELP b_total Second.
# TYPE b_total counter
b_total{counter="NumXUnits"} 3
# HELP a_total First.
# TYPE a_total counter
a_total 1
`))
	require.NoError(t, err)
	require.Len(t, mfs, 2)
	require.Equal(t, "a_total", mfs[0].GetName())

	m := promtest.MustFindMetric(t, mfs, "b_total", map[string]string{"counter": "NumXUnits"})
	require.Equal(t, 3.0, m.GetCounter().GetValue())
}
