package watch

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rjeczalik/notify"
)

// FileWatcher polls one file's stats and fires when it changes.
// Polling catches in-place writes that rename-based editors do not emit
// events for on every platform.
type FileWatcher struct {
	filePath  string
	lastStats os.FileInfo
	ticker    *time.Ticker
	mu        sync.Mutex
}

func NewFileWatcher(everyms int) *FileWatcher {
	duration := time.Millisecond * time.Duration(everyms)
	ticker := time.NewTicker(duration)

	return &FileWatcher{
		filePath:  "",
		lastStats: nil,
		ticker:    ticker,
		mu:        sync.Mutex{},
	}
}

func (fw *FileWatcher) StartWatch(onUpdate func()) {
	go func() {
		for range fw.ticker.C {
			fw.mu.Lock()
			path := fw.filePath
			last := fw.lastStats
			fw.mu.Unlock()

			if path == "" { continue }
			stats, err := os.Stat(path)
			if err != nil { continue }

			if last == nil || stats.Size() != last.Size() || stats.ModTime() != last.ModTime() {
				fw.UpdateStats()
				if last != nil { onUpdate() }
			}
		}
	}()
}

func (fw *FileWatcher) SetFile(filePath string) {
	fw.mu.Lock()
	fw.filePath = filePath
	fw.lastStats = nil
	fw.mu.Unlock()
	fw.UpdateStats()
}

// invoke only if stats need a manual refresh, e.g. after own writes
func (fw *FileWatcher) UpdateStats() {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	newStats, _ := os.Stat(fw.filePath)
	fw.lastStats = newStats
}

func (fw *FileWatcher) Stop() {
	fw.ticker.Stop()
}

// DirWatcher reports filesystem events for a directory tree, catching
// the rename-and-replace save strategy of most editors.
type DirWatcher struct {
	dirPath string
	events  chan notify.EventInfo
	mu      sync.Mutex
}

func NewDirWatcher(dirPath string) *DirWatcher {
	abs, _ := filepath.Abs(dirPath)

	return &DirWatcher{
		dirPath: abs,
		mu:      sync.Mutex{},
	}
}

func (dw *DirWatcher) StartWatch(onUpdate func(e notify.EventInfo)) {
	dw.events = make(chan notify.EventInfo, 1)
	path := dw.dirPath + "/..." // any dirs and files inside

	err := notify.Watch(path, dw.events, notify.All)
	if err != nil { log.Println("dir watch:", err); return }

	go func() {
		for e := range dw.events {
			onUpdate(e)
		}
	}()
}

func (dw *DirWatcher) Stop() {
	notify.Stop(dw.events)
	close(dw.events)
}
