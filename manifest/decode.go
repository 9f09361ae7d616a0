package manifest

import (
	"bytes"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/teranos/stencil/errors"
)

// Format is a manifest encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "toml", "yaml" and "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.WithHint(
		errors.Wrapf(errors.ErrUnsupportedFormat, "manifest format %q", s),
		"use toml or yaml")
}

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "cannot detect manifest format of %s", path),
			"name the file *.toml, *.yaml or *.yml, or pass --format")
	}
	return ParseFormat(ext)
}

// Decode parses and validates a manifest.
func Decode(data []byte, format Format) (*Manifest, error) {
	var m Manifest

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidManifest, err.Error())
		}
		if keys := unknownKeys(md); len(keys) > 0 {
			return nil, errors.NewInvalidManifestError("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrInvalidManifest, err.Error())
		}
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "manifest format %q", format)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// valueKeys hold free-form data; anything nested below them is not a
// manifest key.
var valueKeys = map[string]bool{"value": true, "default": true}

func unknownKeys(md toml.MetaData) []string {
	var keys []string
next:
	for _, k := range md.Undecoded() {
		for _, part := range k[:len(k)-1] {
			if valueKeys[part] {
				continue next
			}
		}
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys
}

// Load reads the manifest at path, detecting the format from its extension.
func Load(path string) (*Manifest, error) {
	return LoadFs(afero.NewOsFs(), path, "")
}

// LoadAs reads the manifest at path in the given format.
func LoadAs(path string, format Format) (*Manifest, error) {
	return LoadFs(afero.NewOsFs(), path, format)
}

// LoadFs reads a manifest from fs. An empty format is detected from the
// extension.
func LoadFs(fs afero.Fs, path string, format Format) (*Manifest, error) {
	if format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, afero.ErrFileNotFound) {
			return nil, errors.Wrapf(errors.ErrNotFound, "manifest %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	m, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	return m, nil
}
