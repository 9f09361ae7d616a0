package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/stencil/errors"
	"github.com/teranos/stencil/logger"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the stencil configuration. The result is cached until Reset.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific TOML file, on top of
// defaults. Environment variables are not consulted.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return cfg, nil
}

// Reset clears the cached configuration
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v, configPaths())

	viperInstance = v
	return v
}

// configPaths lists candidate files, lowest precedence first: user config,
// then the nearest project file.
func configPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "stencil", ProjectFileName))
	}
	if wd, err := os.Getwd(); err == nil {
		if project := FindProjectConfig(wd); project != "" {
			paths = append(paths, project)
		}
	}
	return paths
}

// FindProjectConfig walks up from dir looking for stencil.toml. It returns
// "" when none is found.
func FindProjectConfig(dir string) string {
	for {
		candidate := filepath.Join(dir, ProjectFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// mergeConfigFiles merges each existing file into v in order, so later
// files win. Unreadable files are logged and skipped.
func mergeConfigFiles(v *viper.Viper, paths []string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		file := viper.New()
		file.SetConfigFile(path)
		file.SetConfigType("toml")
		if err := file.ReadInConfig(); err != nil {
			logger.Warnw("Ignoring unreadable config file",
				logger.FieldPath, path,
				logger.FieldError, err)
			continue
		}

		// Config layer: below env vars and flags.
		if err := v.MergeConfigMap(file.AllSettings()); err != nil {
			logger.Warnw("Ignoring unmergeable config file",
				logger.FieldPath, path,
				logger.FieldError, err)
			continue
		}
		logger.Debugw("Merged config file", logger.FieldPath, path)
	}
}
