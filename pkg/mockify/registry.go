package mockify

import (
	"runtime"
	"sync"
	"weak"

	"mercator-hq/promock/pkg/object"
)

// owners maps a statics object to the proxy it supplies members for. Both
// sides are weak: the link never keeps either alive, and a cleanup removes
// it once the statics object is collected.
var owners = struct {
	sync.Mutex
	m map[weak.Pointer[object.Plain]]weak.Pointer[Proxy]
}{m: make(map[weak.Pointer[object.Plain]]weak.Pointer[Proxy])}

// link records p as the owner of statics. Statics without ordinary storage
// cannot be linked.
func link(statics object.Object, p *Proxy) {
	s, ok := statics.(object.Storage)
	if !ok {
		return
	}
	storage := s.Storage()
	key := weak.Make(storage)

	owners.Lock()
	_, exists := owners.m[key]
	owners.m[key] = weak.Make(p)
	owners.Unlock()

	if !exists {
		runtime.AddCleanup(storage, unlink, key)
	}
}

func unlink(key weak.Pointer[object.Plain]) {
	owners.Lock()
	delete(owners.m, key)
	owners.Unlock()
}

// ownerOf returns the proxy statics was linked to, or nil.
func ownerOf(v any) *Proxy {
	s, ok := v.(object.Storage)
	if !ok {
		return nil
	}
	key := weak.Make(s.Storage())

	owners.Lock()
	defer owners.Unlock()
	ref, ok := owners.m[key]
	if !ok {
		return nil
	}
	return ref.Value()
}
