package render

import (
	"strings"
	"testing"

	"docdiff/internal/diff"
)

func seg(id int, line int, start int, end int, text string) diff.Segment {
	return diff.Segment{ID: id, Type: diff.Addition, Line: line, StartCol: start, EndCol: end, Text: text}
}

func joinRuns(line Line) string {
	var sb strings.Builder
	for _, run := range line.Runs { sb.WriteString(run.Text) }
	return sb.String()
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{ name: "single line", text: "abc", want: 1 },
		{ name: "two lines", text: "abc\ndef", want: 2 },
		{ name: "trailing newline yields empty final line", text: "abc\n", want: 2 },
		{ name: "empty text is one empty line", text: "", want: 1 },
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(SplitLines(tc.text)); got != tc.want {
				t.Errorf("got %d lines; want %d", got, tc.want)
			}
		})
	}
}

func TestBuildLinesRoundTrip(t *testing.T) {
	text := "hello brave world\nsecond line"
	segments := []diff.Segment{
		seg(1, 0, 6, 11, "brave"),
		seg(2, 1, 0, 6, "second"),
	}

	lines := BuildLines(text, segments)
	for i, line := range lines {
		if joinRuns(line) != line.Text {
			t.Errorf("line %d: runs %q do not rebuild %q", i, joinRuns(line), line.Text)
		}
	}

	// plain, highlighted, plain
	if len(lines[0].Runs) != 3 { t.Fatalf("line 0 got %d runs", len(lines[0].Runs)) }
	if lines[0].Runs[0].Seg != nil || lines[0].Runs[1].Seg == nil || lines[0].Runs[2].Seg != nil {
		t.Error("line 0 run alternation broken")
	}
	if lines[0].Runs[1].Text != "brave" { t.Errorf("highlighted run got %q", lines[0].Runs[1].Text) }
}

func TestBuildLinesLabel(t *testing.T) {
	text := "one two three"
	segments := []diff.Segment{
		seg(7, 0, 8, 13, "three"),
		seg(3, 0, 0, 3, "one"),
	}

	lines := BuildLines(text, segments)
	if lines[0].Label != 3 {
		t.Errorf("label must be the leftmost segment id, got %d", lines[0].Label)
	}

	plain := BuildLines("no diffs here", nil)
	if plain[0].Label != 0 { t.Errorf("plain line label got %d", plain[0].Label) }
}

func TestBuildLinesClipsOutOfRangeColumns(t *testing.T) {
	text := "short"
	lines := BuildLines(text, []diff.Segment{seg(1, 0, 3, 99, "...")})

	if joinRuns(lines[0]) != text { t.Errorf("clipped runs %q do not rebuild %q", joinRuns(lines[0]), text) }
	last := lines[0].Runs[len(lines[0].Runs)-1]
	if last.Seg == nil || last.Text != "rt" { t.Errorf("clipped run got %q", last.Text) }
}

func TestBuildLinesDropsOutOfRangeLine(t *testing.T) {
	lines := BuildLines("only line", []diff.Segment{seg(1, 5, 0, 4, "gone")})

	if len(lines) != 1 { t.Fatalf("got %d lines", len(lines)) }
	for _, run := range lines[0].Runs {
		if run.Seg != nil { t.Error("out of range segment was rendered") }
	}
	if lines[0].Label != 0 { t.Error("dropped segment still labeled the line") }
}

func TestBuildLinesMalformedOverlap(t *testing.T) {
	text := "abcdefgh"
	segments := []diff.Segment{
		seg(1, 0, 0, 5, "abcde"),
		seg(2, 0, 3, 7, "defg"), // overlaps the first, first run wins
	}

	lines := BuildLines(text, segments)
	if joinRuns(lines[0]) != text {
		t.Errorf("overlapping input broke the round trip: %q", joinRuns(lines[0]))
	}
}

func TestBuildLinesEmptyLine(t *testing.T) {
	lines := BuildLines("", nil)
	if len(lines) != 1 { t.Fatalf("got %d lines", len(lines)) }
	if joinRuns(lines[0]) != "" { t.Error("empty line round trip failed") }
	if len(lines[0].Runs) != 1 { t.Errorf("empty line got %d runs", len(lines[0].Runs)) }
}

func TestLineOf(t *testing.T) {
	text := "a\nbb\nccc"
	lines := BuildLines(text, []diff.Segment{seg(4, 2, 0, 3, "ccc")})

	if got := LineOf(lines, 4); got != 2 { t.Errorf("LineOf(4) got %d", got) }
	if got := LineOf(lines, 99); got != -1 { t.Errorf("LineOf(99) got %d", got) }
}

func TestSegmentAt(t *testing.T) {
	text := "hello brave world"
	lines := BuildLines(text, []diff.Segment{seg(1, 0, 6, 11, "brave")})

	if got := SegmentAt(lines[0], 8); got == nil || got.ID != 1 { t.Error("column 8 must hit the segment") }
	if got := SegmentAt(lines[0], 2); got != nil { t.Error("column 2 must be plain") }
	if got := SegmentAt(lines[0], 11); got != nil { t.Error("endCol is exclusive") }
	if got := SegmentAt(lines[0], 500); got != nil { t.Error("past end of line must be plain") }
}
