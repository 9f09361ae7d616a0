// Package config loads stencil settings from defaults, config files and
// STENCIL_* environment variables.
package config

// Config represents the stencil configuration
type Config struct {
	Output   OutputConfig   `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Class    ClassConfig    `mapstructure:"class" toml:"class" json:"class" yaml:"class"`
	Manifest ManifestConfig `mapstructure:"manifest" toml:"manifest" json:"manifest" yaml:"manifest"`
	Log      LogConfig      `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Watch    WatchConfig    `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`
}

// OutputConfig controls where generated class files go
type OutputConfig struct {
	Directory string `mapstructure:"directory" toml:"directory" json:"directory" yaml:"directory"`
}

// ClassConfig holds defaults applied to every generated class
type ClassConfig struct {
	Indent    int    `mapstructure:"indent" toml:"indent" json:"indent" yaml:"indent"`          // body indent in units of four spaces
	Namespace string `mapstructure:"namespace" toml:"namespace" json:"namespace" yaml:"namespace"` // used when a manifest sets none
}

// ManifestConfig configures manifest decoding
type ManifestConfig struct {
	Format string `mapstructure:"format" toml:"format" json:"format" yaml:"format"` // empty = detect from file extension
}

// LogConfig configures the logger
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" json:"verbosity" yaml:"verbosity"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"`
}

const (
	// ProjectFileName is looked up from the working directory upwards
	ProjectFileName = "stencil.toml"
	// EnvPrefix prefixes environment overrides, e.g. STENCIL_OUTPUT_DIRECTORY
	EnvPrefix = "STENCIL"
	// DefaultFilePermissions applies to config files written by stencil
	DefaultFilePermissions = 0o644
)

// ManifestFormats lists the accepted values of manifest.format.
var ManifestFormats = []string{"toml", "yaml", "yml"}
