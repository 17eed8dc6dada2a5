// Package config defines core configuration types for mdtree.
// These types are pure data structures with no dependency on the config
// loading machinery in internal/configloader.
package config

// OutputFormat specifies the output format for parse results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the output format is one mdtree can render.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// ColorMode controls when styled output is used.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is valid.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for mdtree.
type Config struct {
	// Format specifies the default output format ("text", "json", or "summary").
	Format OutputFormat `mapstructure:"format" yaml:"format"`

	// DisabledRules lists block rules excluded from parsing.
	// The paragraph fallback cannot be disabled.
	DisabledRules []string `mapstructure:"disabled_rules" yaml:"disabled_rules"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Jobs specifies the number of parallel workers.
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	// CLI-level options (not persisted to config files).

	// Color controls styled output ("auto", "always", "never").
	Color ColorMode `mapstructure:"-" yaml:"-"`

	// Output is a file path to write results to instead of stdout.
	Output string `mapstructure:"-" yaml:"-"`

	// FailFast stops the run at the first file that fails.
	FailFast bool `mapstructure:"-" yaml:"-"`

	// Debug enables debug logging.
	Debug bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:        FormatText,
		DisabledRules: nil,
		Ignore:        nil,
		Jobs:          0, // 0 means use GOMAXPROCS
		Color:         ColorAuto,
	}
}
