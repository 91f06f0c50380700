package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcherDetectsChange(t *testing.T) {
	file := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(file, []byte("v1"), 0644); err != nil { t.Fatal(err) }

	updates := make(chan struct{}, 1)

	fw := NewFileWatcher(50)
	defer fw.Stop()
	fw.SetFile(file)
	fw.StartWatch(func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	})

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(file, []byte("v2 longer"), 0644); err != nil { t.Fatal(err) }

	select {
	case <-updates:
	case <-time.After(2 * time.Second):
		t.Fatal("file change never reported")
	}
}

func TestFileWatcherQuietWithoutChanges(t *testing.T) {
	file := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(file, []byte("stable"), 0644); err != nil { t.Fatal(err) }

	fired := false
	fw := NewFileWatcher(30)
	defer fw.Stop()
	fw.SetFile(file)
	fw.StartWatch(func() { fired = true })

	time.Sleep(200 * time.Millisecond)
	if fired { t.Error("watcher fired without a change") }
}
