package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresPaths(t *testing.T) {
	t.Parallel()

	_, err := New(50 * time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no paths")
}

func TestRunFiresOnWatchedFileChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "extensions.json")

	w, err := New(20*time.Millisecond, target)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var fired atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() {
			fired.Add(1)
			cancel()
		}, nil)
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(target, []byte(`["md"]`), 0o644))

	err = <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), fired.Load())
}

func TestRunIgnoresUnwatchedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "extensions.json")
	other := filepath.Join(dir, "unrelated.txt")

	w, err := New(20*time.Millisecond, target)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	var fired atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { fired.Add(1) }, nil)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(other, []byte("noise"), 0o644))

	<-done
	assert.Equal(t, int32(0), fired.Load())
}

func TestRunDebouncesBursts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "extensions.json")

	w, err := New(150*time.Millisecond, target)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var fired atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { fired.Add(1) }, nil)
	}()

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte(`["md"]`), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	// Wait past the debounce window, then stop.
	time.Sleep(400 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, int32(1), fired.Load())
}

func TestRunCreatesMissingWatchDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "extensions.json")

	w, err := New(20*time.Millisecond, target)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() {}, nil)
	}()

	<-done
	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
