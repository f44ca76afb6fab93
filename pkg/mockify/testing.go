package mockify

import (
	"context"

	"mercator-hq/promock/pkg/telemetry/logging"
)

// TB is the part of testing.TB the test helpers use.
type TB interface {
	Helper()
	Name() string
	Cleanup(func())
	Fatalf(format string, args ...any)
}

// OverrideT overrides entity for the duration of the test t. The override is
// restored when the test and its subtests finish. Any error fails the test.
func OverrideT(t TB, entity, replacement any) {
	t.Helper()
	h, err := Override(entity, replacement, Strict())
	if err != nil {
		t.Fatalf("promock: override: %v", err)
	}
	scope(t, h, modeFull)
}

// PartialOverrideT partially overrides entity for the duration of the test
// t.
func PartialOverrideT(t TB, entity, partial any) {
	t.Helper()
	h, err := PartialOverride(entity, partial, Strict())
	if err != nil {
		t.Fatalf("promock: partial override: %v", err)
	}
	scope(t, h, modePartial)
}

func scope(t TB, h *Handle, mode string) {
	ctx := logging.WithTestName(logging.WithEntityID(context.Background(), h.cfg.id), t.Name())
	logger := h.cfg.engine.logger.WithContext(ctx)
	logger.Debug("override scoped to test", "mode", mode)

	t.Cleanup(func() {
		if err := h.Close(); err != nil {
			logger.Error("failed to restore override", "error", err)
			return
		}
		logger.Debug("test override released")
	})
}
