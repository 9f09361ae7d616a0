package config

import "github.com/spf13/viper"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.directory", ".")

	v.SetDefault("class.indent", 1)
	v.SetDefault("class.namespace", "")

	v.SetDefault("manifest.format", "") // detect from extension

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	v.SetDefault("watch.debounce_ms", 300)
}

// Default returns the configuration produced by defaults alone.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, _ := LoadWithViper(v)
	return cfg
}
