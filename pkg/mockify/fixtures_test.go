package mockify

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/promock/pkg/config"
	"mercator-hq/promock/pkg/object"
	"mercator-hq/promock/pkg/telemetry/metrics"
)

// newTestEngine returns an engine with metrics on a private registry and
// makes it the default engine for the duration of the test.
func newTestEngine(t *testing.T, cfg config.EngineConfig) (*Engine, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(&config.MetricsConfig{Enabled: true}, reg)

	e, err := NewEngine(Options{Config: cfg, Metrics: collector})
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	SetDefault(e)
	t.Cleanup(func() { SetDefault(nil) })
	return e, reg
}

// greeterClass has a field, a method reading it and a method that only
// works with ordinary storage as receiver.
func greeterClass(greeting string) *object.Class {
	return object.NewClass("Greeter", nil).
		Field("greeting", greeting).
		Method("greet", func(this any, args []any) (any, error) {
			return object.Get(this, "greeting")
		}).
		Method("storage", func(this any, args []any) (any, error) {
			_, ok := this.(*object.Plain)
			return ok, nil
		})
}

func mustGet(t *testing.T, v any, key string) any {
	t.Helper()
	got, err := object.Get(v, key)
	if err != nil {
		t.Fatalf("get %q: %v", key, err)
	}
	return got
}

func mustInvoke(t *testing.T, v any, key string, args ...any) any {
	t.Helper()
	got, err := object.Invoke(v, key, args...)
	if err != nil {
		t.Fatalf("invoke %q: %v", key, err)
	}
	return got
}

func mustNew(t *testing.T, ctor any, args ...any) object.Object {
	t.Helper()
	inst, err := object.New(ctor, args...)
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	return inst
}

func mustOverride(t *testing.T, entity, replacement any) *Handle {
	t.Helper()
	h, err := Override(entity, replacement)
	if err != nil {
		t.Fatalf("override: %v", err)
	}
	return h
}

func actual(t *testing.T, entity any) object.Object {
	t.Helper()
	v, err := GetActual(entity)
	if err != nil {
		t.Fatalf("getActual: %v", err)
	}
	return v.(object.Object)
}
