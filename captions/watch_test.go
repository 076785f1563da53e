package captions

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsCaptionFile(t *testing.T) {
	cases := map[string]bool{
		"a.yaml":     true,
		"b.YML":      true,
		"c.json":     false,
		"noext":      false,
		"dir/d.yaml": true,
	}
	for path, want := range cases {
		if got := isCaptionFile(path); got != want {
			t.Fatalf("isCaptionFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "live.yaml")
	if err := os.WriteFile(target, []byte("label: live\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestWatcherReportsSettledContent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	// editors often truncate first and write the new content right after
	target := filepath.Join(dir, "live.yaml")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := os.WriteFile(target, []byte("label: Final\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		c, err := Parse(data)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if c.Label != "Final" {
			t.Fatalf("expected label %q after reload, got %q", "Final", c.Label)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	select {
	case _, ok := <-w.Events:
		if ok {
			t.Fatalf("expected closed events channel")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("events channel was not closed")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
