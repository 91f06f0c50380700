package ui

import (
	. "docdiff/internal/diff"
	. "docdiff/internal/extract"
	. "docdiff/internal/logger"
	. "docdiff/internal/render"
	. "docdiff/internal/utils"
	"github.com/atotto/clipboard"
	. "github.com/gdamore/tcell"
	"time"
)

// OnCompare kicks off a comparison for the current contents. Skipped
// when nothing can be compared or the fingerprint is unchanged and no
// compute is in flight.
func (v *Viewer) OnCompare() {
	if !v.CanCompare() {
		v.Result = Result{}
		v.Selected = 0
		v.CompareKey = ""
		return
	}

	key := Fingerprint(v.NameA, v.ContentA, v.NameB, v.ContentB)
	if key == v.CompareKey && !v.IsComparing { return } // redundant recomputation

	v.pendingKey = key
	v.IsComparing = true

	// show the comparing state before the heavy pass runs
	v.DrawEverything()
	v.Screen.Show()

	contentA, contentB := v.ContentA, v.ContentB
	go func() {
		time.Sleep(30 * time.Millisecond) // let the comparing state reach the terminal
		result := Compare(contentA, contentB)
		linesA := BuildLines(contentA, result.SegmentsA)
		linesB := BuildLines(contentB, result.SegmentsB)
		v.Screen.PostEvent(&EventCompareDone{
			when: time.Now(), key: key,
			result: result, linesA: linesA, linesB: linesB,
		})
	}()
}

// CanCompare reports whether both sides hold real comparable content.
// The unsupported-format placeholder is never diffed as content.
func (v *Viewer) CanCompare() bool {
	if v.ContentA == "" || v.ContentB == "" { return false }
	if v.ContentA == Unsupported || v.ContentB == Unsupported { return false }
	return true
}

// OnSegmentClick records the shared selection and brings the segment
// into view in both panes and the report panel.
func (v *Viewer) OnSegmentClick(id int) {
	v.Selected = id
	v.ScrollToSelection()
}

func (v *Viewer) ScrollToSelection() {
	if v.Selected == 0 { return }

	if line := LineOf(v.LinesA, v.Selected); line >= 0 { v.YA = v.fitScroll(line, v.YA) }
	if line := LineOf(v.LinesB, v.Selected); line >= 0 { v.YB = v.fitScroll(line, v.YB) }

	for i, item := range v.Result.Items {
		if item.ID != v.Selected { continue }
		rows := v.ReportPanelHeight - 1
		if i < v.ReportScroll || i >= v.ReportScroll+rows {
			v.ReportScroll = Max(0, i-rows/2)
		}
		break
	}
}

// fitScroll keeps a line visible in a pane, centering when it is not.
func (v *Viewer) fitScroll(line int, offset int) int {
	rows := v.paneRows()
	if rows <= 0 { return offset }
	if line < offset || line >= offset+rows {
		return Max(0, line-rows/2)
	}
	return offset
}

func (v *Viewer) OnNextDiff() {
	items := v.Result.Items
	if len(items) == 0 { return }
	if v.Selected == 0 { v.OnSegmentClick(items[0].ID); return }

	for i, item := range items {
		if item.ID == v.Selected {
			if i+1 < len(items) { v.OnSegmentClick(items[i+1].ID) }
			return
		}
	}
	v.OnSegmentClick(items[0].ID)
}

func (v *Viewer) OnPrevDiff() {
	items := v.Result.Items
	if len(items) == 0 { return }
	if v.Selected == 0 { v.OnSegmentClick(items[len(items)-1].ID); return }

	for i, item := range items {
		if item.ID == v.Selected {
			if i > 0 { v.OnSegmentClick(items[i-1].ID) }
			return
		}
	}
	v.OnSegmentClick(items[len(items)-1].ID)
}

// SegmentByID looks the selected segment up on either side.
func (v *Viewer) SegmentByID(id int) *Segment {
	for i := range v.Result.SegmentsA {
		if v.Result.SegmentsA[i].ID == id { return &v.Result.SegmentsA[i] }
	}
	for i := range v.Result.SegmentsB {
		if v.Result.SegmentsB[i].ID == id { return &v.Result.SegmentsB[i] }
	}
	return nil
}

func (v *Viewer) OnCopy() {
	seg := v.SegmentByID(v.Selected)
	if seg == nil { return }
	if err := clipboard.WriteAll(seg.Text); err != nil {
		Log.Error("clipboard:", err.Error())
		return
	}
	v.Status = "copied segment " + seg.Type.String() + " text"
}

func (v *Viewer) OnForceCompare() {
	v.CompareKey = ""
	v.Extract()
	v.OnCompare()
}

func (v *Viewer) HandleKeyboard(key Key, r rune, mod ModMask) {
	switch key {
	case KeyEscape, KeyCtrlC:
		v.Exit()
	case KeyTab:
		v.Focus = 1 - v.Focus
	case KeyDown:
		v.OnScrollDown(v.Focus, 1)
	case KeyUp:
		v.OnScrollUp(v.Focus, 1)
	case KeyPgDn:
		v.OnScrollDown(v.Focus, v.paneRows())
	case KeyPgUp:
		v.OnScrollUp(v.Focus, v.paneRows())
	case KeyRight:
		if v.Focus == 0 { v.XA++ } else { v.XB++ }
	case KeyLeft:
		if v.Focus == 0 { v.XA = Max(0, v.XA-1) } else { v.XB = Max(0, v.XB-1) }
	case KeyHome:
		v.YA, v.YB, v.XA, v.XB = 0, 0, 0, 0
	case KeyRune:
		switch r {
		case 'q': v.Exit()
		case 'n', ']': v.OnNextDiff()
		case 'p', '[': v.OnPrevDiff()
		case 'c': v.OnCopy()
		case 'e': v.OnExport()
		case 'r': v.OnForceCompare()
		}
	}
}

func (v *Viewer) OnScrollDown(focus int, step int) {
	if focus == 0 {
		v.YA = Min(Max(0, len(v.LinesA)-1), v.YA+step)
	} else {
		v.YB = Min(Max(0, len(v.LinesB)-1), v.YB+step)
	}
}

func (v *Viewer) OnScrollUp(focus int, step int) {
	if focus == 0 { v.YA = Max(0, v.YA-step) } else { v.YB = Max(0, v.YB-step) }
}

func (v *Viewer) HandleMouse(mx int, my int, buttons ButtonMask) {
	// detect report panel drag start event
	if !v.IsReportMoving && buttons & Button1 == 1 && my == v.reportTop() {
		v.IsReportMoving = true
		return
	}
	// detect report panel dragging event
	if v.IsReportMoving && buttons & Button1 == 1 {
		height := v.ROWS - 1 - my
		if height >= 2 && height <= v.ROWS-4 { v.ReportPanelHeight = height }
		return
	}
	// detect report panel drag stop event
	if v.IsReportMoving && buttons & Button1 == 0 {
		v.IsReportMoving = false
		return
	}

	if my > v.reportTop() {
		v.handleReportMouse(my, buttons)
		return
	}

	focus := 0
	if mx > v.paneWidth() { focus = 1 }

	if buttons & WheelDown != 0 { v.OnScrollDown(focus, 2); return }
	if buttons & WheelUp != 0 { v.OnScrollUp(focus, 2); return }

	if buttons & Button1 == 1 {
		v.Focus = focus
		v.handlePaneClick(mx, my, focus)
		return
	}

	v.Update = false
}

func (v *Viewer) handlePaneClick(mx int, my int, focus int) {
	lines, scrollY, scrollX, x0 := v.LinesA, v.YA, v.XA, 0
	if focus == 1 { lines, scrollY, scrollX, x0 = v.LinesB, v.YB, v.XB, v.paneWidth()+1 }

	lineIdx := my - 1 + scrollY
	if my < 1 || lineIdx < 0 || lineIdx >= len(lines) { return }
	line := lines[lineIdx]

	col := mx - x0 - v.LINES_WIDTH + scrollX
	if col < 0 {
		// gutter click selects the line's labeled segment
		if line.Label != 0 { v.OnSegmentClick(line.Label) }
		return
	}

	if seg := SegmentAt(line, col); seg != nil { v.OnSegmentClick(seg.ID) }
}

func (v *Viewer) handleReportMouse(my int, buttons ButtonMask) {
	if buttons & WheelDown != 0 {
		if v.ReportScroll < len(v.Result.Items)-1 { v.ReportScroll++ }
		return
	}
	if buttons & WheelUp != 0 {
		if v.ReportScroll > 0 { v.ReportScroll-- }
		return
	}
	if buttons & Button1 == 0 { v.Update = false; return }

	idx := my - v.reportTop() - 1 + v.ReportScroll
	if idx < 0 || idx >= len(v.Result.Items) { return }
	v.OnSegmentClick(v.Result.Items[idx].ID)
}
