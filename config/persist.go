package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/stencil/errors"
)

// Marshal encodes cfg as "toml", "json" or "yaml".
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch format {
	case "toml", "":
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return nil, errors.Wrap(err, "failed to encode config as toml")
		}
		return buf.Bytes(), nil
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode config as json")
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode config as yaml")
		}
		return data, nil
	default:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "config format %q", format),
			"use toml, json or yaml")
	}
}

// WriteProjectFile writes cfg as TOML to path. An existing file is left
// alone and reported with created=false.
func WriteProjectFile(path string, cfg *Config) (created bool, err error) {
	data, err := Marshal(cfg, "toml")
	if err != nil {
		return false, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "failed to create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, errors.Wrapf(err, "failed to write %s", path)
	}
	if err := f.Close(); err != nil {
		return false, errors.Wrapf(err, "failed to close %s", path)
	}
	return true, nil
}
