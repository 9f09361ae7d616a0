package stencil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/stencil/errors"
)

func TestWriteCreatesThenSkips(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))

	class := New("user").AddConstant("A", Int(1))

	status, err := class.WriteTo(fs, "/out")
	require.NoError(t, err)
	assert.Equal(t, Created, status)

	want := class.Render()
	class.AddConstant("B", Int(2))

	status, err = class.WriteTo(fs, "/out")
	require.NoError(t, err)
	assert.Equal(t, Skipped, status)

	got, err := afero.ReadFile(fs, "/out/User.php")
	require.NoError(t, err)
	assert.Equal(t, want, string(got))

	entries, err := afero.ReadDir(fs, "/out")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFilePath(t *testing.T) {
	class := New("invoice_item")

	assert.Equal(t, "InvoiceItem.php", class.FileName())
	assert.Equal(t, filepath.Join("src", "Models", "InvoiceItem.php"), class.FilePath("src/Models"))
	assert.Equal(t, filepath.Join("src", "InvoiceItem.php"), class.FilePath("src/"))
}

// staleStatFs reports every path as missing, so the exclusive create is
// what detects an existing file.
type staleStatFs struct {
	afero.Fs
}

func (staleStatFs) Stat(name string) (os.FileInfo, error) {
	return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrNotExist}
}

func TestWriteCreateRaceSkips(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/out/User.php", []byte("original"), 0o644))

	status, err := New("user").WriteTo(staleStatFs{mem}, "/out")
	require.NoError(t, err)
	assert.Equal(t, Skipped, status)

	got, err := afero.ReadFile(mem, "/out/User.php")
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
}

// failingWriteFs creates files whose writes fail until healed.
type failingWriteFs struct {
	afero.Fs
	broken bool
}

func (f *failingWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil || !f.broken {
		return file, err
	}
	return failingFile{file}, nil
}

type failingFile struct {
	afero.File
}

func (failingFile) WriteString(string) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteFailureRemovesPartialFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	fs := &failingWriteFs{Fs: mem, broken: true}

	status, err := New("user").WriteTo(fs, "/out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")
	assert.Zero(t, status)

	exists, err := afero.Exists(mem, "/out/User.php")
	require.NoError(t, err)
	assert.False(t, exists)

	fs.broken = false
	status, err = New("user").WriteTo(fs, "/out")
	require.NoError(t, err)
	assert.Equal(t, Created, status)
}

func TestWriteReadOnlyFails(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	status, err := New("user").WriteTo(fs, "/out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create")
	assert.Zero(t, status)
}

func TestWriteOS(t *testing.T) {
	dir := t.TempDir()

	status, err := New("order").SetNamespace("Shop").Write(dir)
	require.NoError(t, err)
	assert.Equal(t, Created, status)

	got, err := os.ReadFile(filepath.Join(dir, "Order.php"))
	require.NoError(t, err)
	assert.Equal(t, "<?php\n\nnamespace Shop;\n\nclass Order\n{\n}", string(got))

	status, err = New("order").Write(dir)
	require.NoError(t, err)
	assert.Equal(t, Skipped, status)
}

func TestWriteStatusString(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "skipped", Skipped.String())
	assert.Equal(t, "unknown", WriteStatus(0).String())
}
