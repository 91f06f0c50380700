package diff

import (
	"strings"
	"testing"
)

func TestDiffReconstruction(t *testing.T) {
	pairs := []struct {
		name string
		a    string
		b    string
	}{
		{ name: "identical", a: "hello\nworld", b: "hello\nworld" },
		{ name: "suffix added", a: "cat", b: "cats" },
		{ name: "line replaced", a: "line1\nline2", b: "line1\nLINE2" },
		{ name: "all different", a: "abc", b: "xyz" },
		{ name: "multiline churn", a: "a\nb\nc\nd", b: "a\nB\nc\nD\ne" },
		{ name: "unicode", a: "добрый\nдень", b: "добрый\nвечер" },
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			ops := Diff(tc.a, tc.b)

			var fromA, fromB strings.Builder
			for _, op := range ops {
				if op.Type == Equal || op.Type == Delete { fromA.WriteString(op.Text) }
				if op.Type == Equal || op.Type == Insert { fromB.WriteString(op.Text) }
			}

			if fromA.String() != tc.a {
				t.Errorf("equal+delete ops got %q; want %q", fromA.String(), tc.a)
			}
			if fromB.String() != tc.b {
				t.Errorf("equal+insert ops got %q; want %q", fromB.String(), tc.b)
			}
		})
	}
}

func TestDiffEqualOnly(t *testing.T) {
	ops := Diff("same text", "same text")
	for _, op := range ops {
		if op.Type != Equal && op.Text != "" {
			t.Errorf("identical inputs produced a non-equal op %v %q", op.Type, op.Text)
		}
	}
}
