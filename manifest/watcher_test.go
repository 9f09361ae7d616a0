package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsManifestFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"models/invoice.toml", true},
		{"invoice.yaml", true},
		{"invoice.yml", true},
		{"invoice.php", false},
		{"invoice.toml~", false},
		{".invoice.toml", false},
		{"stencil.toml", false},
		{"README", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsManifestFile(tt.path), tt.path)
	}
}

func TestWatcher_ReportsManifestChanges(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan string, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(path string) { changed <- path })
	}()

	manifest := filepath.Join(dir, "invoice.toml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(manifest, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(manifest, []byte("ab"), 0o644))

	select {
	case got := <-changed:
		assert.Equal(t, manifest, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	for len(changed) > 0 {
		assert.Equal(t, manifest, <-changed)
	}
}

func pendingTimers(w *Watcher) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func TestWatcher_TimerAfterRunExitDoesNotBlock(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), 0)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- w.Run(context.Background(), func(string) {})
	}()

	// Closing the watcher ends Run while its context is still live.
	require.NoError(t, w.Close())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after Close")
	}

	// Nobody receives on fired any more.
	w.schedule(context.Background(), "late.toml", make(chan string))

	assert.Eventually(t, func() bool { return pendingTimers(w) == 0 },
		5*time.Second, 10*time.Millisecond, "late timer is still blocked")
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"), time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
