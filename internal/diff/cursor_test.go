package diff

import "testing"

func TestCursorAdvance(t *testing.T) {
	tests := []struct {
		name     string
		texts    []string
		wantLine int
		wantCol  int
	}{
		{ name: "no newline", texts: []string{"abc"}, wantLine: 0, wantCol: 3 },
		{ name: "column accumulates", texts: []string{"ab", "cd"}, wantLine: 0, wantCol: 4 },
		{ name: "single newline", texts: []string{"ab\ncd"}, wantLine: 1, wantCol: 2 },
		{ name: "trailing newline", texts: []string{"ab\n"}, wantLine: 1, wantCol: 0 },
		{ name: "consecutive newlines", texts: []string{"\n\n\n"}, wantLine: 3, wantCol: 0 },
		{ name: "newline resets column", texts: []string{"abcdef", "x\nyz"}, wantLine: 1, wantCol: 2 },
		{ name: "empty text", texts: []string{""}, wantLine: 0, wantCol: 0 },
		{ name: "runes not bytes", texts: []string{"привет"}, wantLine: 0, wantCol: 6 },
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cursor := Cursor{}
			for _, text := range tc.texts { cursor.Advance(text) }
			if cursor.Line != tc.wantLine || cursor.Col != tc.wantCol {
				t.Errorf("got (%d, %d); want (%d, %d)", cursor.Line, cursor.Col, tc.wantLine, tc.wantCol)
			}
		})
	}
}
