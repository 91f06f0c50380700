package diff

import "strings"

// Cursor tracks a running (line, column) position in one document side.
// Columns are counted in runes.
type Cursor struct {
	Line int
	Col  int
}

// Advance consumes text and moves the cursor past it. Text without a
// newline only grows the column; text with newlines moves the line down
// and restarts the column after the last newline.
func (this *Cursor) Advance(text string) {
	count := strings.Count(text, "\n")
	if count == 0 {
		this.Col += len([]rune(text))
		return
	}
	this.Line += count
	last := text[strings.LastIndex(text, "\n")+1:]
	this.Col = len([]rune(last))
}
