package ui

import (
	. "docdiff/internal/config"
	. "docdiff/internal/diff"
	. "docdiff/internal/extract"
	"docdiff/internal/git"
	. "docdiff/internal/logger"
	. "docdiff/internal/render"
	. "docdiff/internal/utils"
	. "docdiff/internal/watch"
	"fmt"
	. "github.com/gdamore/tcell"
	"github.com/gdamore/tcell/encoding"
	"github.com/rjeczalik/notify"
	"os"
	"path/filepath"
)


// Viewer renders two documents side by side with their differences
// highlighted, plus a numbered report panel at the bottom. One shared
// selected id round-trips between the report list and both panes.
type Viewer struct {
	COLUMNS     int // terminal size columns
	ROWS        int // terminal size rows
	LINES_WIDTH int // line numbers gutter width

	Screen Screen // Screen for drawing
	Config Config

	FileA string // left document path
	FileB string // right document path
	NameA string // left display name
	NameB string // right display name

	ContentA string // extracted text, left
	ContentB string // extracted text, right

	Result Result // segments and report items of the applied comparison
	LinesA []Line // per line runs, left pane
	LinesB []Line // per line runs, right pane

	Selected int // shared selected difference id, 0 if none

	YA int // row offset for scrolling, left pane
	XA int // col offset for scrolling, left pane
	YB int // row offset for scrolling, right pane
	XB int // col offset for scrolling, right pane

	Focus int // 0 left pane, 1 right pane, keyboard scroll target

	ReportPanelHeight int  // report panel rows including its header
	ReportScroll      int  // vertical scrolling in report panel
	IsReportMoving    bool // true while dragging the panel boundary

	IsComparing bool   // comparing state is drawn while a compute runs
	CompareKey  string // fingerprint of the applied comparison
	pendingKey  string // fingerprint of the compute in flight

	Status  string // transient status bar message
	Update  bool   // if false the loop will not redraw
	GitMode bool   // left side is the HEAD version of the right file

	FileWatcherA *FileWatcher
	FileWatcherB *FileWatcher
	DirWatcher   *DirWatcher
}

var ViewerGlobal = Viewer{ }

func (v *Viewer) Start(fileA string, fileB string) {
	Log.Info("starting docdiff", fileA, fileB)

	v.Init()
	v.Load(fileA, fileB)

	// main draw cycle
	for {
		if v.Update {
			v.DrawEverything()
			v.Screen.Show()
		}
		v.HandleEvents()
	}
}

// StartGit compares one file's working copy against its HEAD version.
func (v *Viewer) StartGit(file string) {
	Log.Info("starting docdiff in git mode", file)

	v.GitMode = true
	v.Init()
	v.Load(file, file)

	for {
		if v.Update {
			v.DrawEverything()
			v.Screen.Show()
		}
		v.HandleEvents()
	}
}

func (v *Viewer) Init() {
	encoding.Register()
	screen, err := NewScreen()
	if err != nil { fmt.Fprintf(os.Stderr, "%v\n", err); os.Exit(1) }
	v.Screen = screen

	err2 := v.Screen.Init()
	if err2 != nil { fmt.Fprintf(os.Stderr, "%v\n", err2); os.Exit(1) }

	v.Screen.EnableMouse()
	v.Screen.Clear()

	v.COLUMNS, v.ROWS = v.Screen.Size()
	v.LINES_WIDTH = 5
	v.Update = true

	v.ReportPanelHeight = v.Config.ReportHeight
	if v.ReportPanelHeight > v.ROWS-4 { v.ReportPanelHeight = Max(2, v.ROWS-4) }

	watchms := v.Config.WatchMs
	if watchms <= 0 { watchms = 1000 }
	v.FileWatcherA = NewFileWatcher(watchms)
	v.FileWatcherB = NewFileWatcher(watchms)
	v.FileWatcherA.StartWatch(v.onFileUpdate)
	v.FileWatcherB.StartWatch(v.onFileUpdate)
}

// Load extracts both documents and kicks off the first comparison.
func (v *Viewer) Load(fileA string, fileB string) {
	v.FileA, v.FileB = fileA, fileB
	v.NameA, v.NameB = fileA, fileB
	if v.GitMode { v.NameA = fileA + "@HEAD" }

	v.Extract()

	v.FileWatcherB.SetFile(fileB)
	if !v.GitMode { v.FileWatcherA.SetFile(fileA) }

	// rename-and-replace saves do not always touch the watched stats
	v.DirWatcher = NewDirWatcher(filepath.Dir(fileB))
	v.DirWatcher.StartWatch(v.onDirUpdate)

	v.OnCompare()
}

// Extract refreshes both contents from disk according to the mode.
func (v *Viewer) Extract() {
	if v.GitMode {
		content, err := git.LastCommitContent(v.FileA)
		if err != nil {
			Log.Error("git:", err.Error())
			v.Status = "no HEAD version: " + err.Error()
			content = ""
		}
		v.ContentA = content
	} else {
		v.ContentA = ExtractText(v.FileA)
	}
	v.ContentB = ExtractText(v.FileB)

	// documents are shown even before (or without) a comparison
	v.LinesA = BuildLines(v.ContentA, nil)
	v.LinesB = BuildLines(v.ContentB, nil)
}

func (v *Viewer) Exit() {
	v.Screen.Fini()
	os.Exit(0)
}

func (v *Viewer) HandleEvents() {
	v.Update = true
	ev := v.Screen.PollEvent()
	switch ev := ev.(type) {
	case *EventResize:
		v.COLUMNS, v.ROWS = v.Screen.Size()
		if v.ReportPanelHeight > v.ROWS-4 { v.ReportPanelHeight = Max(2, v.ROWS-4) }
		v.DrawEverything()
		v.Screen.Show()

	case *EventMouse:
		mx, my := ev.Position()
		buttons := ev.Buttons()
		v.HandleMouse(mx, my, buttons)

	case *EventKey:
		v.HandleKeyboard(ev.Key(), ev.Rune(), ev.Modifiers())

	case *EventCompareDone:
		// a newer comparison request supersedes this result
		if ev.key != v.pendingKey { v.Update = false; return }
		v.IsComparing = false
		v.CompareKey = ev.key
		v.Result = ev.result
		v.LinesA = ev.linesA
		v.LinesB = ev.linesB
		v.Selected = 0
		v.ReportScroll = 0
		v.Status = ""
		Log.Info("comparison applied,", fmt.Sprint(len(ev.result.Items)), "differences")

	case *EventFilesChanged:
		v.Extract()
		v.OnCompare()
	}
}

func (v *Viewer) onFileUpdate() {
	// watcher goroutine, hand over to the event loop
	v.Screen.PostEvent(NewEventFilesChanged())
}

func (v *Viewer) onDirUpdate(e notify.EventInfo) {
	name := filepath.Base(e.Path())
	if name != filepath.Base(v.FileA) && name != filepath.Base(v.FileB) { return }
	v.Screen.PostEvent(NewEventFilesChanged())
}

// reportTop is the screen row of the report panel header.
func (v *Viewer) reportTop() int {
	return v.ROWS - 1 - v.ReportPanelHeight
}

// paneRows is the number of document content rows, below the pane titles.
func (v *Viewer) paneRows() int {
	return Max(0, v.reportTop()-1)
}

// paneWidth is the left pane width, one separator column follows it.
func (v *Viewer) paneWidth() int {
	return v.COLUMNS / 2
}
