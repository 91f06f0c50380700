package ui

import (
	. "docdiff/internal/diff"
	. "docdiff/internal/render"
	"docdiff/internal/theme"
	. "docdiff/internal/utils"
	"fmt"
	. "github.com/gdamore/tcell"
	"strconv"
)

func (v *Viewer) DrawEverything() {
	v.Screen.Clear()

	paneWidth := v.paneWidth()
	v.DrawPane(v.LinesA, v.NameA, 0, paneWidth, v.YA, v.XA)
	v.DrawPaneSeparator(paneWidth)
	v.DrawPane(v.LinesB, v.NameB, paneWidth+1, v.COLUMNS-paneWidth-1, v.YB, v.XB)
	v.DrawReportPanel()
	v.DrawStatusBar()
}

func (v *Viewer) DrawPane(lines []Line, name string, x0 int, width int, scrollY int, scrollX int) {
	titleStyle := StyleDefault.Foreground(theme.AccentColor).Bold(true)
	v.drawText(x0+1, 0, TruncateString(name, width-2), titleStyle)

	for row := 1; row <= v.paneRows(); row++ {
		lineIdx := row - 1 + scrollY
		if lineIdx >= len(lines) { break }
		line := lines[lineIdx]

		number := CenterNumber(lineIdx+1, v.LINES_WIDTH-1)
		v.drawText(x0, row, number, StyleDefault.Foreground(theme.DimColor))

		// compact marker for the line's first difference
		if line.Label != 0 {
			markerStyle := StyleDefault.Foreground(theme.AccentColor)
			if line.Label == v.Selected { markerStyle = markerStyle.Bold(true) }
			v.Screen.SetContent(x0+v.LINES_WIDTH-1, row, '*', nil, markerStyle)
		}

		x := x0 + v.LINES_WIDTH
		limit := x0 + width
		charIdx := 0
		for _, run := range line.Runs {
			style := v.runStyle(run)
			for _, ch := range run.Text {
				if charIdx < scrollX { charIdx++; continue }
				if x >= limit { break }
				v.Screen.SetContent(x, row, ch, nil, style)
				x++
				charIdx++
			}
		}
	}
}

func (v *Viewer) runStyle(run Run) Style {
	if run.Seg == nil { return StyleDefault }

	if run.Seg.ID == v.Selected {
		return StyleDefault.Background(theme.SelectedColor).Bold(true)
	}
	if run.Seg.Type == Deletion {
		return StyleDefault.Background(theme.RemovedColor)
	}
	return StyleDefault.Background(theme.AddedColor)
}

func (v *Viewer) DrawPaneSeparator(x int) {
	style := StyleDefault.Foreground(theme.DimColor)
	for row := 0; row <= v.paneRows(); row++ {
		v.Screen.SetContent(x, row, '│', nil, style)
	}
}

func (v *Viewer) DrawReportPanel() {
	top := v.reportTop()
	barStyle := StyleDefault.Foreground(theme.DimColor)
	for x := 0; x < v.COLUMNS; x++ {
		v.Screen.SetContent(x, top, '─', nil, barStyle)
	}

	header := fmt.Sprintf(" differences: %d ", len(v.Result.Items))
	if v.IsComparing { header = " comparing... " }
	v.drawText(2, top, header, StyleDefault.Foreground(theme.AccentColor))

	for row := 0; row < v.ReportPanelHeight-1; row++ {
		idx := row + v.ReportScroll
		if idx >= len(v.Result.Items) { break }
		item := v.Result.Items[idx]

		marker, preview := "+", item.TextB
		if item.Type == "deletion" { marker, preview = "-", item.TextA }

		text := fmt.Sprintf("%s %s %s  %q", PadLeft(strconv.Itoa(item.ID), 4), marker, item.Position, preview)
		style := StyleDefault
		if item.ID == v.Selected { style = style.Background(theme.SelectedColor).Bold(true) }
		v.drawText(0, top+1+row, TruncateString(text, v.COLUMNS), style)
	}
}

func (v *Viewer) DrawStatusBar() {
	row := v.ROWS - 1
	style := StyleDefault.Foreground(theme.DimColor)

	status := v.Status
	if status == "" { status = v.promptStatus() }
	v.drawText(1, row, status, style)

	hint := "n/p next/prev  c copy  e export  r recompare  q quit"
	if len(hint) < v.COLUMNS-len(status)-3 {
		v.drawText(v.COLUMNS-len(hint)-1, row, hint, style)
	}
}

// promptStatus describes why nothing useful is on screen yet.
func (v *Viewer) promptStatus() string {
	switch {
	case v.IsComparing:
		return "comparing..."
	case v.ContentA == "" || v.ContentB == "":
		return "nothing to compare: one of the documents is empty"
	case !v.CanCompare():
		return "unsupported format, differences are not computed"
	case v.Selected != 0:
		return "selected difference " + strconv.Itoa(v.Selected)
	}
	return ""
}

func (v *Viewer) drawText(x int, y int, text string, style Style) {
	for _, ch := range text {
		if x >= v.COLUMNS { break }
		v.Screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
