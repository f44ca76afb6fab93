package mockify

import (
	"maps"
	"runtime"
	"slices"
	"sync"
	"weak"

	"mercator-hq/promock/pkg/object"
	"mercator-hq/promock/pkg/telemetry/metrics"
)

// tracker holds weak references to the instances a wrapped constructor has
// built. Entries leave either through a cleanup once the instance is
// collected or when a pass over the live instances finds them empty.
//
// Cleanups run on a runtime goroutine, so every access takes mu.
type tracker struct {
	mu      sync.Mutex
	next    uint64
	entries map[uint64]weak.Pointer[object.Plain]
	metrics *metrics.Collector
}

func newTracker(m *metrics.Collector) *tracker {
	return &tracker{
		entries: make(map[uint64]weak.Pointer[object.Plain]),
		metrics: m,
	}
}

// add records inst. It reports false when inst has no ordinary storage to
// reference weakly.
func (t *tracker) add(inst object.Object) bool {
	s, ok := inst.(object.Storage)
	if !ok {
		return false
	}
	storage := s.Storage()

	t.mu.Lock()
	id := t.next
	t.next++
	t.entries[id] = weak.Make(storage)
	t.mu.Unlock()

	runtime.AddCleanup(storage, t.forget, id)
	t.metrics.InstanceTracked()
	return true
}

func (t *tracker) forget(id uint64) {
	t.mu.Lock()
	_, ok := t.entries[id]
	delete(t.entries, id)
	t.mu.Unlock()

	if ok {
		t.metrics.InstanceCollected()
	}
}

// live returns the instances that are still reachable, in construction
// order, and drops entries whose instance is gone.
func (t *tracker) live() []*object.Plain {
	t.mu.Lock()
	var out []*object.Plain
	pruned := 0
	for _, id := range slices.Sorted(maps.Keys(t.entries)) {
		if inst := t.entries[id].Value(); inst != nil {
			out = append(out, inst)
			continue
		}
		delete(t.entries, id)
		pruned++
	}
	t.mu.Unlock()

	for range pruned {
		t.metrics.InstanceCollected()
	}
	return out
}

// len returns the number of entries, including ones not yet pruned.
func (t *tracker) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
