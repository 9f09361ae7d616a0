package manifest

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/stencil/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"toml", FormatTOML, false},
		{"TOML", FormatTOML, false},
		{"yaml", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"json", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsUnsupportedFormatError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	got, err := DetectFormat("models/invoice.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, got)

	got, err = DetectFormat("models/invoice.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, got)

	_, err = DetectFormat("models/invoice")
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))

	_, err = DetectFormat("invoice.php")
	assert.True(t, errors.IsUnsupportedFormatError(err))
}

func TestDecode_UnknownTOMLKeys(t *testing.T) {
	_, err := Decode([]byte(`
[[classes]]
name = "a"
extend = "B"
`), FormatTOML)

	require.Error(t, err)
	assert.True(t, errors.IsInvalidManifestError(err))
	assert.Contains(t, err.Error(), "unknown keys: classes.extend")
}

func TestDecode_FreeFormValues(t *testing.T) {
	m, err := Decode([]byte(`
[[classes]]
name = "db"

[[classes.properties]]
name = "connection"
value = { driver = "mysql", port = 3306 }
`), FormatTOML)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"driver": "mysql", "port": int64(3306)}, m.Classes[0].Properties[0].Value)
}

func TestDecode_UnknownYAMLKeys(t *testing.T) {
	_, err := Decode([]byte("classes:\n  - name: a\n    extend: B\n"), FormatYAML)

	require.Error(t, err)
	assert.True(t, errors.IsInvalidManifestError(err))
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte("[[classes]\n"), FormatTOML)
	assert.True(t, errors.IsInvalidManifestError(err))

	_, err = Decode([]byte("classes: [\n"), FormatYAML)
	assert.True(t, errors.IsInvalidManifestError(err))
}

func TestDecode_Empty(t *testing.T) {
	_, err := Decode(nil, FormatYAML)

	require.Error(t, err)
	assert.True(t, errors.IsInvalidManifestError(err))
	assert.Contains(t, err.Error(), "classes: required")
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode([]byte("{}"), Format("json"))
	assert.True(t, errors.IsUnsupportedFormatError(err))
}

func TestLoadFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/m/invoice.toml", []byte(invoiceTOML), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/m/invoice.manifest", []byte(invoiceYAML), 0o644))

	m, err := LoadFs(fs, "/m/invoice.toml", "")
	require.NoError(t, err)
	assert.Equal(t, "Billing/Models", m.Namespace)

	m, err = LoadFs(fs, "/m/invoice.manifest", FormatYAML)
	require.NoError(t, err)
	assert.Len(t, m.Classes, 1)

	_, err = LoadFs(fs, "/m/invoice.manifest", "")
	assert.True(t, errors.IsUnsupportedFormatError(err))

	_, err = LoadFs(fs, "/m/missing.toml", "")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestLoadFs_InvalidNamesPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/bad.toml", []byte("[[classes]]\nname = \"\"\n"), 0o644))

	_, err := LoadFs(fs, "/bad.toml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/bad.toml")
	assert.True(t, errors.IsInvalidManifestError(err))
}
