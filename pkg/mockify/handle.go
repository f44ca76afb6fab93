package mockify

import "sync"

// Handle undoes an override. Release restores the entity the first time it
// is called and does nothing afterwards, so it can be deferred and also
// registered with t.Cleanup.
//
// A handle returned for an unwrapped entity under Lenient is inert.
type Handle struct {
	cfg  *configuration
	once sync.Once
	err  error
}

func newHandle(cfg *configuration) *Handle {
	return &Handle{cfg: cfg}
}

// Release restores the entity once.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		if h.cfg != nil {
			h.err = h.cfg.restore()
		}
	})
}

// Close releases the handle and returns the error of the restore, if any.
// It makes Handle an io.Closer.
func (h *Handle) Close() error {
	h.Release()
	if h == nil {
		return nil
	}
	return h.err
}

// Inert reports whether releasing the handle has no effect.
func (h *Handle) Inert() bool {
	return h == nil || h.cfg == nil
}
