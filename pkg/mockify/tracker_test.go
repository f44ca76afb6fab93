package mockify

import (
	"runtime"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/promock/pkg/config"
	"mercator-hq/promock/pkg/object"
)

// construct builds n instances and drops them.
func construct(t *testing.T, ctor object.Constructor, n int) {
	t.Helper()
	for range n {
		mustNew(t, ctor)
	}
}

func TestTracker_PrunesCollectedInstances(t *testing.T) {
	_, reg := newTestEngine(t, config.EngineConfig{})
	Greeter := Wrap(greeterClass("hello")).(object.Constructor)
	tr := configOf(Greeter).instances

	kept := mustNew(t, Greeter)
	construct(t, Greeter, 10)
	if n := tr.len(); n != 11 {
		t.Fatalf("expected 11 tracked instances, got %d", n)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		runtime.GC()
		if len(tr.live()) == 1 && tr.len() == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected collected instances to be dropped, %d entries left", tr.len())
		}
		time.Sleep(10 * time.Millisecond)
	}

	mustOverride(t, Greeter, object.NewClass("Other", nil))
	if object.Has(kept, "greet") {
		t.Error("the surviving instance must still be retargeted")
	}

	if got := metricValue(t, reg, "promock_instances_collected_total"); got != 10 {
		t.Errorf("expected 10 collected instances, got %v", got)
	}
	if got := metricValue(t, reg, "promock_instances_tracked"); got != 1 {
		t.Errorf("expected 1 tracked instance, got %v", got)
	}
	runtime.KeepAlive(kept)
}

func TestTracker_NonStorageInstances(t *testing.T) {
	tr := newTracker(nil)
	if tr.add(&opaque{Object: object.NewPlain(nil)}) {
		t.Error("objects without ordinary storage cannot be tracked")
	}
	if tr.len() != 0 {
		t.Errorf("expected no entries, got %d", tr.len())
	}
}

// opaque hides the storage of the object it embeds.
type opaque struct {
	object.Object
}

func metricValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
	}
	return total
}
