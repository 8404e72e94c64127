package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newsletter-lists.toml")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	w, err := New(Config{Path: path, DebounceDur: 10 * time.Millisecond})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	changes, err := w.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// several writes in a row collapse into one notification
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte{byte('b' + i)}, 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
	}

	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected change notification")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newsletter-lists.toml")

	w, err := New(Config{Path: path, DebounceDur: 10 * time.Millisecond})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	changes, err := w.Start()
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	select {
	case <-changes:
		t.Fatal("Unexpected change notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_IsRelevantEvent(t *testing.T) {
	w := &Watcher{path: "/etc/newsletter-lists/newsletter-lists.toml"}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: w.path, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: w.path, Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: w.path, Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: w.path, Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/etc/newsletter-lists/other.toml", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.isRelevantEvent(tt.event); got != tt.want {
				t.Errorf("isRelevantEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWatcher_StartFailsForMissingDirectory(t *testing.T) {
	w, err := New(Config{Path: filepath.Join(t.TempDir(), "missing", "config.toml")})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	if _, err := w.Start(); err == nil {
		t.Error("Expected error for missing directory")
	}
}
