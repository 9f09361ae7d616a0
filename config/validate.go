package config

import (
	"slices"

	"github.com/teranos/stencil/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Output.Directory == "" {
		return errors.NewInvalidConfigError("output.directory cannot be empty (omit for \".\")")
	}

	if c.Class.Indent < 0 {
		return errors.NewInvalidConfigError("class.indent must be >= 0, got %d", c.Class.Indent)
	}

	if c.Manifest.Format != "" && !slices.Contains(ManifestFormats, c.Manifest.Format) {
		return errors.WithHintf(
			errors.NewInvalidConfigError("manifest.format %q is not supported", c.Manifest.Format),
			"use one of %v, or leave it empty to detect from the file extension", ManifestFormats)
	}

	if c.Log.Verbosity < 0 {
		return errors.NewInvalidConfigError("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	// 0 regenerates on every event
	if c.Watch.DebounceMS < 0 {
		return errors.NewInvalidConfigError("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
