package jsonblog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog_data.json")
	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- WatchFile(ctx, path, func() { changed <- struct{}{} }, nil)
	}()

	// Writes to other files in the directory are ignored; the target is
	// rewritten until the watcher, which starts asynchronously, reports it.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-changed:
			break loop
		case <-tick.C:
			os.WriteFile(filepath.Join(dir, "other.json"), []byte(`[]`), 0o644)
			os.WriteFile(path, []byte(sampleJSON), 0o644)
		case <-deadline:
			t.Fatal("no change reported")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("WatchFile returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WatchFile did not return after cancel")
	}
}

func TestWatchFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "blog_data.json")
	if err := WatchFile(context.Background(), path, func() {}, nil); err == nil {
		t.Error("expected error for missing directory")
	}
}
