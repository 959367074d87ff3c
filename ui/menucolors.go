package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette of the setup and color screens, matched to the
// default felt-green board.
var MenuColors = struct {
	Border     tcell.Color
	CardBG     tcell.Color
	Title      tcell.Color
	Label      tcell.Color
	Hint       tcell.Color
	ButtonBG   tcell.Color
	ButtonText tcell.Color
}{
	Border:     tcell.PaletteColor(65),  // moss
	CardBG:     tcell.PaletteColor(235), // near black
	Title:      tcell.PaletteColor(255),
	Label:      tcell.PaletteColor(250),
	Hint:       tcell.PaletteColor(244),
	ButtonBG:   tcell.PaletteColor(22), // board green
	ButtonText: tcell.PaletteColor(255),
}
