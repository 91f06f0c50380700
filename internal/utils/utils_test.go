package utils

import "testing"

func TestMaxMin(t *testing.T) {
	if Max(3, 5) != 5 { t.Error("Max(3, 5) != 5") }
	if Max(5, 3) != 5 { t.Error("Max(5, 3) != 5") }
	if Min(3, 5) != 3 { t.Error("Min(3, 5) != 3") }
	if Min(5, 3) != 3 { t.Error("Min(5, 3) != 3") }
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		limit int
		want  string
	}{
		{ name: "shorter than limit", s: "cat", limit: 50, want: "cat" },
		{ name: "exactly limit", s: "aaaaa", limit: 5, want: "aaaaa" },
		{ name: "longer than limit", s: "aaaaaab", limit: 5, want: "aaaaa..." },
		{ name: "empty", s: "", limit: 5, want: "" },
		{ name: "multibyte runes", s: "ααααβ", limit: 4, want: "αααα..." },
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateString(tc.s, tc.limit)
			if got != tc.want {
				t.Errorf("TruncateString(%q, %d) got %q; want %q", tc.s, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPadLeft(t *testing.T) {
	if PadLeft("7", 3) != "  7" { t.Error("PadLeft failed") }
}

func TestCenterNumber(t *testing.T) {
	if CenterNumber(7, 3) != " 7 " { t.Errorf("CenterNumber got %q", CenterNumber(7, 3)) }
}
