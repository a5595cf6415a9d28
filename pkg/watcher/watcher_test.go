package watcher

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

func TestWatchTriggersOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	other := filepath.Join(dir, "other.stl")
	require.NoError(t, os.WriteFile(path, []byte("solid a\n"), 0o644))

	fw, err := NewFileWatcher(150*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	var calls atomic.Int32
	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{path}, func(p string) {
		calls.Add(1)
		changed <- p
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("solid b\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(other, []byte("solid c\n"), 0o644))

	select {
	case p := <-changed:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	err = fw.Watch([]string{filepath.Join(t.TempDir(), "missing", "model.stl")}, func(string) {})
	assert.Error(t, err)
}

func TestRunReturnsWhenClosed(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- fw.Run(context.Background()) }()
	require.NoError(t, fw.Close())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}
}

func TestCallbacksDoNotOverlap(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "part.scad")
	dep := filepath.Join(dir, "dims.scad")

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	var active, peak atomic.Int32
	finished := make(chan string, 2)
	require.NoError(t, fw.Watch([]string{source, dep}, func(p string) {
		n := active.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(100 * time.Millisecond)
		active.Add(-1)
		finished <- p
	}))

	// both files saved together fire independent debounce timers
	fw.handleFileChange(source)
	fw.handleFileChange(dep)

	for i := 0; i < 2; i++ {
		select {
		case <-finished:
		case <-time.After(5 * time.Second):
			t.Fatal("callback did not run")
		}
	}
	assert.Equal(t, int32(1), peak.Load())
}
