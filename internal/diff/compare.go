package diff

import (
	. "docdiff/internal/utils"
	"fmt"
	"strings"
)

type SegmentType int8

const (
	Addition SegmentType = iota
	Deletion
)

func (this SegmentType) String() string {
	if this == Addition { return "addition" }
	return "deletion"
}

// Segment is one contiguous highlighted run of added or deleted text,
// anchored to a single line of its document side. StartCol is inclusive,
// EndCol exclusive, both in runes. Ids are unique across both sides.
type Segment struct {
	ID       int
	Type     SegmentType
	Line     int
	StartCol int
	EndCol   int
	Text     string
}

// ReportItem is the flat numbered entry for one segment in the report list.
type ReportItem struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	TextA    string `json:"textA,omitempty"`
	TextB    string `json:"textB,omitempty"`
	Position string `json:"position"`
}

type Result struct {
	Items     []ReportItem
	SegmentsA []Segment
	SegmentsB []Segment
}

// PreviewLength limits report preview texts, overridden from config.
var PreviewLength = 50

// Compare diffs a against b and lays the differences out as per line
// segments for both sides plus the numbered report list. An empty side
// yields an empty result without running the diff at all.
func Compare(a string, b string) Result {
	if a == "" || b == "" { return Result{} }
	return Segments(Diff(a, b))
}

// Segments converts a raw edit script into anchored segments and report
// items. Two independent cursors track the position in each document,
// ids grow monotonically across the whole traversal.
func Segments(ops []Op) Result {
	result := Result{}
	cursorA := Cursor{}
	cursorB := Cursor{}
	id := 1

	for _, op := range ops {
		if op.Text == "" { continue } // tolerated at sequence boundaries

		switch op.Type {
		case Equal:
			// common ground, never highlighted, both cursors move
			cursorA.Advance(op.Text)
			cursorB.Advance(op.Text)
		case Delete:
			result.emit(&cursorA, op.Text, Deletion, &id)
		case Insert:
			result.emit(&cursorB, op.Text, Addition, &id)
		}
	}
	return result
}

// emit splits an op text on newlines and produces one segment per
// non-empty chunk, advancing the cursor exactly like Cursor.Advance
// would for the whole text. Empty chunks only move the bookkeeping.
func (this *Result) emit(cursor *Cursor, text string, segType SegmentType, id *int) {
	chunks := strings.Split(text, "\n")
	for i, chunk := range chunks {
		length := len([]rune(chunk))
		if length > 0 {
			seg := Segment{
				ID:       *id,
				Type:     segType,
				Line:     cursor.Line,
				StartCol: cursor.Col,
				EndCol:   cursor.Col + length,
				Text:     chunk,
			}
			*id++
			if segType == Deletion {
				this.SegmentsA = append(this.SegmentsA, seg)
			} else {
				this.SegmentsB = append(this.SegmentsB, seg)
			}
			this.Items = append(this.Items, newReportItem(seg))
		}

		if i != len(chunks)-1 {
			cursor.Line++
			cursor.Col = 0
		} else {
			cursor.Col += length
		}
	}
}

func newReportItem(seg Segment) ReportItem {
	item := ReportItem{
		ID:       seg.ID,
		Type:     seg.Type.String(),
		Position: fmt.Sprintf("line %d, character %d", seg.Line+1, seg.StartCol+1),
	}
	preview := TruncateString(seg.Text, PreviewLength)
	if seg.Type == Deletion { item.TextA = preview } else { item.TextB = preview }
	return item
}
