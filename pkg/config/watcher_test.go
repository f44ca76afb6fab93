package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "promock.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  lenient: false\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if err := Initialize(path); err != nil {
		t.Fatalf("failed to initialize config: %v", err)
	}

	w, err := NewWatcher(path, 10*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	reloaded := make(chan *Config, 4)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(cfg *Config) error {
			reloaded <- cfg
			return nil
		})
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Rewrite until the watcher has registered the directory and reloaded.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	// Unrelated files in the same directory are ignored.
	_ = os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644)

	for {
		select {
		case cfg := <-reloaded:
			if !cfg.Engine.Lenient {
				continue
			}
			if !GetConfig().Engine.Lenient {
				t.Error("expected the global configuration to be replaced")
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("engine:\n  lenient: true\n"), 0644); err != nil {
				t.Fatalf("failed to rewrite config file: %v", err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatcher_InvalidFileKeepsConfiguration(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	SetConfig(NewDefaultConfig())

	path := filepath.Join(t.TempDir(), "promock.yaml")
	if err := os.WriteFile(path, []byte("engine: ["), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	w, err := NewWatcher(path, 0, nil)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	called := false
	w.reload(func(*Config) error {
		called = true
		return nil
	})
	if called {
		t.Error("callback must not run when the file fails to load")
	}
	if GetConfig().Engine.DescriptorSource != DefaultDescriptorSource {
		t.Error("expected the previous configuration to remain")
	}
	w.close()
}
