package diff

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

type Ope int8

const (
	Equal  Ope = 0
	Insert Ope = 1
	Delete Ope = -1
)

type Op struct {
	Type Ope
	Text string
}

var dmp = diffmatchpatch.New()

// Diff computes the exact character level edit script between a and b.
// No semantic cleanup and no run merging: position math downstream
// depends on exact op boundaries.
func Diff(a string, b string) []Op {
	diffs := dmp.DiffMain(a, b, false)

	ops := make([]Op, 0, len(diffs))
	for _, d := range diffs {
		var t Ope
		switch d.Type {
		case diffmatchpatch.DiffInsert: t = Insert
		case diffmatchpatch.DiffDelete: t = Delete
		default: t = Equal
		}
		ops = append(ops, Op{Type: t, Text: d.Text})
	}
	return ops
}
