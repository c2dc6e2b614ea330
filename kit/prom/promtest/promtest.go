// Package promtest provides helpers for parsing and extracting prometheus metrics.
// These functions are only intended to be called from test files,
// as there is a dependency on the standard library testing package.
package promtest

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// FromText parses metrics written in the text exposition format, such as the
// dump printed by the brickhouse command, sorted by family name.
//
// For comprehensive testing of metrics, it usually makes more sense to
// add collectors to a registry and call Registry.Gather to get the metrics
// without a round trip through text.
func FromText(r io.Reader) ([]*dto.MetricFamily, error) {
	var p expfmt.TextParser
	byName, err := p.TextToMetricFamilies(r)
	if err != nil {
		return nil, err
	}

	mfs := make([]*dto.MetricFamily, 0, len(byName))
	for _, mf := range byName {
		mfs = append(mfs, mf)
	}
	sort.Slice(mfs, func(i, j int) bool { return mfs[i].GetName() < mfs[j].GetName() })
	return mfs, nil
}

// FindMetric returns the first metric of the family called name whose label
// set equals labels, or nil.
func FindMetric(mfs []*dto.MetricFamily, name string, labels map[string]string) *dto.Metric {
	_, m := findMetric(mfs, name, labels)
	return m
}

// MustFindMetric is like FindMetric, but fails tb when nothing matches after
// logging the names or label sets that are available.
func MustFindMetric(tb testing.TB, mfs []*dto.MetricFamily, name string, labels map[string]string) *dto.Metric {
	tb.Helper()

	fam, m := findMetric(mfs, name, labels)
	switch {
	case fam == nil:
		names := make([]string, 0, len(mfs))
		for _, mf := range mfs {
			names = append(names, mf.GetName())
		}
		tb.Fatalf("metric family %q not found; have %s", name, strings.Join(names, ", "))
	case m == nil:
		sets := make([]string, 0, len(fam.Metric))
		for _, m := range fam.Metric {
			sets = append(sets, labelString(m))
		}
		tb.Fatalf("metric %q with labels %v not found; have %s", name, labels, strings.Join(sets, ", "))
	}
	return m
}

func findMetric(mfs []*dto.MetricFamily, name string, labels map[string]string) (*dto.MetricFamily, *dto.Metric) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if labelsEqual(m, labels) {
				return mf, m
			}
		}
		return mf, nil
	}
	return nil, nil
}

func labelsEqual(m *dto.Metric, labels map[string]string) bool {
	if len(m.Label) != len(labels) {
		return false
	}
	for _, l := range m.Label {
		if v, ok := labels[l.GetName()]; !ok || v != l.GetValue() {
			return false
		}
	}
	return true
}

func labelString(m *dto.Metric) string {
	pairs := make([]string, len(m.Label))
	for i, l := range m.Label {
		pairs[i] = fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
	}
	return "{" + strings.Join(pairs, ",") + "}"
}

// MustGather calls g.Gather and fails tb on error.
func MustGather(tb testing.TB, g prometheus.Gatherer) []*dto.MetricFamily {
	tb.Helper()

	mfs, err := g.Gather()
	if err != nil {
		tb.Fatalf("error while gathering metrics: %v", err)
	}
	return mfs
}
