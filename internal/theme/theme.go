package theme

import (
	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/styles"
	"github.com/gdamore/tcell"
)

var DocdiffDark = styles.Register(chroma.MustNewStyle("docdiff", chroma.StyleEntries{
	chroma.GenericInserted: "#2E5339",
	chroma.GenericDeleted:  "#5E2B2B",
	chroma.GenericEmph:     "#3A5F8A",
	chroma.Keyword:         "#FF69B4",
	chroma.Comment:         "#a8a8a8",
}))

var AddedColor = tcell.GetColor("#2E5339")
var RemovedColor = tcell.GetColor("#5E2B2B")
var SelectedColor = tcell.GetColor("#3A5F8A")
var AccentColor = tcell.GetColor("#FF69B4")
var DimColor = tcell.GetColor("#a8a8a8")

// Set resolves a chroma style by name and maps its colors onto the
// viewer palette. Unknown names keep the docdiff style.
func Set(name string) {
	style := styles.Get(name)
	if style == nil { style = DocdiffDark }
	AddedColor = tcell.GetColor(style.Get(chroma.GenericInserted).Colour.String())
	RemovedColor = tcell.GetColor(style.Get(chroma.GenericDeleted).Colour.String())
	SelectedColor = tcell.GetColor(style.Get(chroma.GenericEmph).Colour.String())
	AccentColor = tcell.GetColor(style.Get(chroma.Keyword).Colour.String())
	DimColor = tcell.GetColor(style.Get(chroma.Comment).Colour.String())
}

// Override applies explicit config colors on top of the style palette.
func Override(added string, removed string, selected string) {
	if added != "" { AddedColor = tcell.GetColor(added) }
	if removed != "" { RemovedColor = tcell.GetColor(removed) }
	if selected != "" { SelectedColor = tcell.GetColor(selected) }
}
