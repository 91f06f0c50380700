package diff

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/pmezard/go-difflib/difflib"
)

// Fingerprint derives the comparison key for a document pair: identity
// plus content of both sides. Recomputation is skipped while the key
// stays the same, and a stale in-flight result is recognized by it.
func Fingerprint(nameA string, a string, nameB string, b string) string {
	h := sha256.New()
	for _, part := range []string{nameA, a, nameB, b} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Unified renders a classic unified diff for export next to the report.
func Unified(nameA string, a string, nameB string, b string) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: nameA,
		ToFile:   nameB,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}
