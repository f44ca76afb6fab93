package config

// Default configuration values.
const (
	// DefaultDescriptorSource is the descriptor source new configurations
	// start with.
	DefaultDescriptorSource = "override"

	// DefaultLogLevel is the default minimum log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log output format.
	DefaultLogFormat = "json"

	// DefaultMetricsNamespace is the default metric namespace.
	DefaultMetricsNamespace = "promock"
)

// Valid values for enumerated fields.
var (
	validDescriptorSources = []string{"default", "override"}
	validLogLevels         = []string{"debug", "info", "warn", "error"}
	validLogFormats        = []string{"json", "text", "console"}
)

// NewDefaultConfig returns a configuration with every default applied.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	if cfg.Engine.DescriptorSource == "" {
		cfg.Engine.DescriptorSource = DefaultDescriptorSource
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}

	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}
