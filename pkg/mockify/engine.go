package mockify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/promock/pkg/config"
	"mercator-hq/promock/pkg/object"
	"mercator-hq/promock/pkg/telemetry/logging"
	"mercator-hq/promock/pkg/telemetry/metrics"
)

// Entity kinds, as reported in logs and metrics.
const (
	kindObject   = "object"
	kindFunction = "function"
	kindClass    = "class"
)

// Engine creates wrapped entities. Every entity remembers the engine that
// wrapped it, and control operations on the entity log and record metrics
// through that engine.
//
// Most code uses the package-level Wrap, which goes through Default.
type Engine struct {
	cfg     config.EngineConfig
	source  DescriptorSource
	logger  *logging.Logger
	metrics *metrics.Collector
}

// Options configures an Engine.
type Options struct {
	// Config holds engine behavior. The zero value is the default behavior.
	Config config.EngineConfig

	// Logger receives debug records for wraps and control operations and
	// warnings for usage errors. Nil discards everything.
	Logger *logging.Logger

	// Metrics records interception activity. Nil records nothing.
	Metrics *metrics.Collector
}

// NewEngine creates an engine.
func NewEngine(opts Options) (*Engine, error) {
	source := DescriptorSourceOverride
	if opts.Config.DescriptorSource != "" {
		var err error
		source, err = ParseDescriptorSource(opts.Config.DescriptorSource)
		if err != nil {
			return nil, fmt.Errorf("failed to create engine: %w", err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	return &Engine{
		cfg:     opts.Config,
		source:  source,
		logger:  logger,
		metrics: opts.Metrics,
	}, nil
}

// Metrics returns the collector e records to, or nil when e records no
// metrics. Its Registry gathers them.
func (e *Engine) Metrics() *metrics.Collector {
	return e.metrics
}

// NewEngineFromConfig creates an engine with the logger and metrics
// collector described by cfg. Metrics are registered on registry when
// enabled; a nil registry gets a fresh one.
func NewEngineFromConfig(cfg *config.Config, registry *prometheus.Registry) (*Engine, error) {
	logger, err := newLogger(cfg.Telemetry.Logging)
	if err != nil {
		return nil, err
	}

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		metricsCfg := cfg.Telemetry.Metrics
		collector = metrics.NewCollector(&metricsCfg, registry)
	}

	return NewEngine(Options{
		Config:  cfg.Engine,
		Logger:  logger,
		Metrics: collector,
	})
}

func newLogger(cfg config.LoggingConfig) (*logging.Logger, error) {
	logger, err := logging.New(logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: cfg.AddSource,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

var defaultEngine atomic.Pointer[Engine]

// Default returns the engine used by the package-level functions. It is
// built on first use from the global configuration when config.Initialize
// has run, and with default settings otherwise. When the configuration
// enables metrics they are registered on a fresh registry, reachable through
// Default().Metrics().Registry().
func Default() *Engine {
	if e := defaultEngine.Load(); e != nil {
		return e
	}
	defaultEngine.CompareAndSwap(nil, buildDefault())
	return defaultEngine.Load()
}

// fallbackLogWriter receives the warning logged when the global
// configuration cannot produce the default engine.
var fallbackLogWriter io.Writer = os.Stderr

func buildDefault() *Engine {
	cfg := config.GetConfig()
	if cfg == nil {
		e, _ := NewEngine(Options{})
		return e
	}

	e, err := NewEngineFromConfig(cfg, nil)
	if err == nil {
		return e
	}
	logger, _ := logging.New(logging.Config{Level: "warn", Writer: fallbackLogWriter})
	logger.Warn("default engine uses built-in settings: configuration rejected", "error", err)
	e, _ = NewEngine(Options{Logger: logger})
	return e
}

// SetDefault replaces the default engine. Passing nil makes the next call
// to Default build a fresh one. Entities keep the engine they were wrapped
// with.
func SetDefault(e *Engine) {
	defaultEngine.Store(e)
}

// WatchConfig rebuilds the default engine from the configuration file at
// path every time the file changes, until ctx is done. The metrics
// collector of the current default engine is carried over to each rebuilt
// engine; one is created on the first reload that enables metrics. Entities keep the engine they were wrapped with.
func WatchConfig(ctx context.Context, path string) error {
	if err := config.Initialize(path); err != nil {
		return err
	}
	w, err := config.NewWatcher(path, 0, Default().logger.Slog())
	if err != nil {
		return err
	}
	return w.Watch(ctx, func(cfg *config.Config) error {
		logger, err := newLogger(cfg.Telemetry.Logging)
		if err != nil {
			return err
		}
		collector := Default().metrics
		if collector == nil && cfg.Telemetry.Metrics.Enabled {
			metricsCfg := cfg.Telemetry.Metrics
			collector = metrics.NewCollector(&metricsCfg, nil)
		}
		e, err := NewEngine(Options{
			Config:  cfg.Engine,
			Logger:  logger,
			Metrics: collector,
		})
		if err != nil {
			return err
		}
		SetDefault(e)
		return nil
	})
}

// Wrap returns a transparent stand-in for entity through the default engine.
// See Engine.Wrap.
func Wrap(entity any) any {
	return Default().Wrap(entity)
}

// WrapWithStatics wraps fn through the default engine with extra static
// members. See Engine.WrapWithStatics.
func WrapWithStatics(fn object.Callable, statics object.Object) any {
	return Default().WrapWithStatics(fn, statics)
}

// Wrap returns a transparent stand-in for entity.
//
// Values that are not objects are returned unchanged, and so are entities
// that are already wrapped. A statics object registered through
// WrapWithStatics wraps to the function it belongs to.
//
// The result is a *Proxy, *FunctionProxy or *ClassProxy depending on
// whether entity is an object.Object, object.Callable or object.Constructor.
func (e *Engine) Wrap(entity any) any {
	o, ok := entity.(object.Object)
	if !ok {
		return entity
	}
	if _, ok := o.(wrapped); ok {
		return entity
	}
	if owner := ownerOf(o); owner != nil {
		return owner.self
	}
	return e.newProxy(o, nil).self
}

// WrapWithStatics wraps fn so that reads missing on its current target are
// answered by statics. statics keeps its own identity everywhere else, and
// wrapping statics afterwards returns the wrapped fn.
//
// An fn that is already wrapped is returned unchanged.
func (e *Engine) WrapWithStatics(fn object.Callable, statics object.Object) any {
	if _, ok := fn.(wrapped); ok {
		return fn
	}
	p := e.newProxy(fn, statics)
	if statics != nil {
		link(statics, p)
	}
	return p.self
}

func (e *Engine) wrapObject(o object.Object) object.Object {
	return e.Wrap(o).(object.Object)
}

func (e *Engine) newProxy(o object.Object, statics object.Object) *Proxy {
	cfg := &configuration{
		id:                    uuid.NewString(),
		engine:                e,
		defaultImplementation: o,
		statics:               statics,
		descriptorSource:      e.source,
	}
	p := &Proxy{cfg: cfg}

	switch o.(type) {
	case object.Constructor:
		cfg.kind = kindClass
		if !e.cfg.DisableInstanceTracking {
			cfg.instances = newTracker(e.metrics)
		}
		p.self = &ClassProxy{FunctionProxy: &FunctionProxy{Proxy: p}}
	case object.Callable:
		cfg.kind = kindFunction
		p.self = &FunctionProxy{Proxy: p}
	default:
		cfg.kind = kindObject
		p.self = p
	}

	e.metrics.RecordWrap(cfg.kind)
	if e.logger.Enabled(slog.LevelDebug) {
		args := []any{"entity_id", cfg.id, "kind", cfg.kind}
		if cfg.kind != kindObject {
			args = append(args, "name", object.NameOf(o))
		}
		e.logger.Debug("entity wrapped", args...)
	}
	return p
}
