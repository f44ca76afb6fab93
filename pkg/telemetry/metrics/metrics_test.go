package metrics

import (
	"testing"

	"mercator-hq/promock/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// Helper function to create test config
func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:   true,
		Namespace: "test",
		Subsystem: "mock",
	}
}

// TestCollector_NewCollector tests collector creation
func TestCollector_NewCollector(t *testing.T) {
	cfg := testConfig()
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector == nil {
		t.Fatal("Expected non-nil collector")
	}
	if collector.config != cfg {
		t.Error("Collector config not set correctly")
	}
	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
}

func TestCollector_DefaultNamespace(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	collector := NewCollector(cfg, nil)

	if cfg.Namespace != config.DefaultMetricsNamespace {
		t.Errorf("expected default namespace %q, got %q", config.DefaultMetricsNamespace, cfg.Namespace)
	}
	if collector.Registry() == nil {
		t.Error("expected a registry to be created")
	}
}

// TestCollector_Interception tests wrap/override/restore counters
func TestCollector_Interception(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.RecordWrap("class")
	collector.RecordWrap("class")
	collector.RecordWrap("object")
	collector.RecordOverride("full")
	collector.RecordOverride("partial")
	collector.RecordRestore()
	collector.RecordUsageError("override")

	im := collector.interceptionMetrics
	if got := testutil.ToFloat64(im.wrapsTotal.WithLabelValues("class")); got != 2 {
		t.Errorf("expected 2 class wraps, got %v", got)
	}
	if got := testutil.ToFloat64(im.wrapsTotal.WithLabelValues("object")); got != 1 {
		t.Errorf("expected 1 object wrap, got %v", got)
	}
	if got := testutil.ToFloat64(im.overridesTotal.WithLabelValues("partial")); got != 1 {
		t.Errorf("expected 1 partial override, got %v", got)
	}
	if got := testutil.ToFloat64(im.restoresTotal); got != 1 {
		t.Errorf("expected 1 restore, got %v", got)
	}
	if got := testutil.ToFloat64(im.usageErrorsTotal.WithLabelValues("override")); got != 1 {
		t.Errorf("expected 1 usage error, got %v", got)
	}
}

// TestCollector_Instances tests tracker gauges and counters
func TestCollector_Instances(t *testing.T) {
	collector := NewCollector(testConfig(), prometheus.NewRegistry())

	collector.InstanceTracked()
	collector.InstanceTracked()
	collector.InstanceCollected()
	collector.InstancesRetargeted(3)
	collector.InstancesRetargeted(0)

	m := collector.instanceMetrics
	if got := testutil.ToFloat64(m.tracked); got != 1 {
		t.Errorf("expected 1 tracked instance, got %v", got)
	}
	if got := testutil.ToFloat64(m.collected); got != 1 {
		t.Errorf("expected 1 collected instance, got %v", got)
	}
	if got := testutil.ToFloat64(m.retargeted); got != 3 {
		t.Errorf("expected 3 retargeted instances, got %v", got)
	}
}

// TestCollector_Disabled tests that a disabled collector records nothing
func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	collector := NewCollector(cfg, prometheus.NewRegistry())

	collector.RecordWrap("object")
	collector.InstanceTracked()

	if got := testutil.ToFloat64(collector.interceptionMetrics.wrapsTotal.WithLabelValues("object")); got != 0 {
		t.Errorf("expected no wraps recorded, got %v", got)
	}
	if got := testutil.ToFloat64(collector.instanceMetrics.tracked); got != 0 {
		t.Errorf("expected no tracked instances, got %v", got)
	}
}

// TestCollector_Nil tests that a nil collector is safe to use
func TestCollector_Nil(t *testing.T) {
	var collector *Collector

	collector.RecordWrap("object")
	collector.RecordOverride("full")
	collector.RecordRestore()
	collector.RecordUsageError("restore")
	collector.InstanceTracked()
	collector.InstanceCollected()
	collector.InstancesRetargeted(1)

	if collector.Registry() != nil {
		t.Error("expected nil registry from nil collector")
	}
}
