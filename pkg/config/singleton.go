package config

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoConfigPath is returned by ReloadConfig when no path is given and the
// configuration was never loaded from a file.
var ErrNoConfigPath = errors.New("no configuration file to reload")

// process holds the configuration shared by the default engine and the
// config watcher.
var process struct {
	mu       sync.RWMutex
	cfg      *Config
	path     string
	revision uint64
	once     sync.Once
}

// Initialize loads the file at path, with PROMOCK_* overrides, as the
// process configuration. Only the first call loads anything; later calls
// return nil.
func Initialize(path string) error {
	var err error
	process.once.Do(func() {
		var cfg *Config
		cfg, err = LoadConfigWithEnvOverrides(path)
		if err != nil {
			return
		}
		store(cfg, path)
	})
	return err
}

// GetConfig returns the process configuration, or nil before Initialize
// or SetConfig.
func GetConfig() *Config {
	process.mu.RLock()
	defer process.mu.RUnlock()
	return process.cfg
}

// SetConfig replaces the process configuration without reading a file.
func SetConfig(cfg *Config) {
	store(cfg, "")
}

// ReloadConfig loads path again and swaps it in. An empty path reloads the
// file Initialize read. On failure the current configuration stays.
func ReloadConfig(path string) error {
	if path == "" {
		path = Path()
	}
	if path == "" {
		return ErrNoConfigPath
	}

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		return fmt.Errorf("failed to reload configuration: %w", err)
	}
	store(cfg, path)
	return nil
}

// MustGetConfig is GetConfig for callers that cannot run without a
// configuration. It panics before Initialize.
func MustGetConfig() *Config {
	cfg := GetConfig()
	if cfg == nil {
		panic("promock: configuration not initialized")
	}
	return cfg
}

// Path returns the file the process configuration was loaded from, or ""
// when it was set in code.
func Path() string {
	process.mu.RLock()
	defer process.mu.RUnlock()
	return process.path
}

// Revision counts successful configuration changes. Callers that cache
// values derived from the configuration compare it to detect a reload.
func Revision() uint64 {
	process.mu.RLock()
	defer process.mu.RUnlock()
	return process.revision
}

// Reset forgets the process configuration so Initialize loads again.
// Tests use it to isolate global state.
func Reset() {
	process.mu.Lock()
	defer process.mu.Unlock()
	process.cfg = nil
	process.path = ""
	process.revision++
	process.once = sync.Once{}
}

func store(cfg *Config, path string) {
	process.mu.Lock()
	defer process.mu.Unlock()
	process.cfg = cfg
	process.path = path
	process.revision++
}
