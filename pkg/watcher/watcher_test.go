package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchReportsDebouncedChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	other := filepath.Join(dir, "other.txt")
	for _, p := range []string{path, other} {
		if err := os.WriteFile(p, []byte("solid a\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	fw, err := NewFileWatcher(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch([]string{path}, func(p string) { changed <- p }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	fw.Start()

	if err := os.WriteFile(other, []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("solid b\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	want, _ := filepath.Abs(path)
	select {
	case got := <-changed:
		if got != want {
			t.Errorf("expected change for %s, got %s", want, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	// Rapid writes collapse into a single callback
	select {
	case got := <-changed:
		t.Errorf("expected one debounced callback, got another for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestCloseWaitsForEventLoop(t *testing.T) {
	fw, err := NewFileWatcher(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	if err := fw.Watch([]string{filepath.Join(t.TempDir(), "model.stl")}, func(string) {}); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	fw.Start()

	if err := fw.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	select {
	case <-fw.done:
	default:
		t.Error("Close returned before the event loop exited")
	}
}

func TestCloseWithoutStart(t *testing.T) {
	fw, err := NewFileWatcher(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}

	closed := make(chan error, 1)
	go func() { closed <- fw.Close() }()

	select {
	case err := <-closed:
		if err != nil {
			t.Errorf("Close failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Close blocked on a watcher that was never started")
	}
}

func TestOnErrorReplacesHandler(t *testing.T) {
	fw, err := NewFileWatcher(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	var got error
	fw.OnError(func(err error) { got = err })

	want := errors.New("queue overflow")
	fw.mu.Lock()
	handler := fw.onError
	fw.mu.Unlock()
	handler(want)

	if got != want {
		t.Errorf("OnError failed: expected %v, got %v", want, got)
	}
}
