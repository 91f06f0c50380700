package render

import (
	"sort"
	"strings"

	"docdiff/internal/diff"
)

// Run is one alternating piece of a displayed line: plain text when Seg
// is nil, a highlighted difference otherwise.
type Run struct {
	Text string
	Seg  *diff.Segment
}

// Line is the per line breakdown for one document side. Label carries
// the id of the first segment on the line for the compact gutter marker,
// 0 when the line has no differences.
type Line struct {
	Text  string
	Runs  []Run
	Label int
}

// SplitLines splits document text on newlines. Text ending in a newline
// yields a trailing empty line, same as the cursor math assumes.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// BuildLines partitions every line of text into alternating plain and
// highlighted runs. Segments pointing past the last line are dropped
// silently, coordinates are clipped to the line: differences must never
// crash the view.
func BuildLines(text string, segments []diff.Segment) []Line {
	raw := SplitLines(text)

	byLine := make(map[int][]diff.Segment)
	for _, seg := range segments {
		if seg.Line < 0 || seg.Line >= len(raw) { continue }
		byLine[seg.Line] = append(byLine[seg.Line], seg)
	}

	lines := make([]Line, len(raw))
	for i, lineText := range raw {
		group := byLine[i]
		sort.SliceStable(group, func(x, y int) bool { return group[x].StartCol < group[y].StartCol })
		lines[i] = buildLine(lineText, group)
	}
	return lines
}

func buildLine(text string, group []diff.Segment) Line {
	line := Line{Text: text}
	chars := []rune(text)

	if len(group) > 0 { line.Label = group[0].ID }

	pos := 0
	for i := range group {
		start := Clip(group[i].StartCol, 0, len(chars))
		end := Clip(group[i].EndCol, 0, len(chars))
		if start < pos { start = pos } // malformed overlap, first run wins
		if start >= end { continue }

		if start > pos {
			line.Runs = append(line.Runs, Run{Text: string(chars[pos:start])})
		}
		line.Runs = append(line.Runs, Run{Text: string(chars[start:end]), Seg: &group[i]})
		pos = end
	}

	if pos < len(chars) || len(line.Runs) == 0 {
		line.Runs = append(line.Runs, Run{Text: string(chars[pos:])})
	}
	return line
}

func Clip(v int, low int, high int) int {
	if v < low { return low }
	if v > high { return high }
	return v
}

// LineOf finds the line index holding the segment with the given id,
// -1 when it is not rendered. Used to scroll a selection into view.
func LineOf(lines []Line, id int) int {
	for i, line := range lines {
		for _, run := range line.Runs {
			if run.Seg != nil && run.Seg.ID == id { return i }
		}
	}
	return -1
}

// SegmentAt maps a rune column on a line back to the highlighted segment
// covering it, nil for plain text. Drives mouse hit testing.
func SegmentAt(line Line, col int) *diff.Segment {
	pos := 0
	for _, run := range line.Runs {
		next := pos + len([]rune(run.Text))
		if col >= pos && col < next { return run.Seg }
		pos = next
	}
	return nil
}
