package config

// Config is the root configuration structure for promock.
// It mirrors the YAML document layout.
type Config struct {
	// Engine configures the interception engine.
	Engine EngineConfig `yaml:"engine"`

	// Telemetry configures logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// EngineConfig configures the behavior of an interception engine.
//
// The zero value is the default behavior: strict control operations, the
// "override" descriptor source and instance tracking enabled.
type EngineConfig struct {
	// Lenient makes every control operation on an entity that was not
	// wrapped a no-op instead of a usage error: overrides return an inert
	// handle, restore and setPropertyDescriptorSource do nothing and getActual
	// returns its input. A per-call Strict or Lenient option takes precedence.
	Lenient bool `yaml:"lenient"`

	// DescriptorSource is the initial descriptor source of every new
	// configuration. Valid values: "default", "override".
	DescriptorSource string `yaml:"descriptor_source"`

	// DisableInstanceTracking stops wrapped constructors from recording the
	// instances they create. Overrides then never retarget instances.
	DisableInstanceTracking bool `yaml:"disable_instance_tracking"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging configures the structured logger.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures Prometheus metrics.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `yaml:"level"`

	// Format is the output format: "json", "text" or "console".
	Format string `yaml:"format"`

	// AddSource includes the source file and line in log records.
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	// Enabled turns metric collection on.
	Enabled bool `yaml:"enabled"`

	// Namespace is the metric namespace (prefix).
	Namespace string `yaml:"namespace"`

	// Subsystem is an optional metric subsystem.
	Subsystem string `yaml:"subsystem"`
}
