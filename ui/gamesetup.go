package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/board"
	"reversi-local/engine"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig, bool)
	onCancel func()
	onColors func()

	sizes     [][2]int
	size      [2]int
	first     board.Piece
	showHints bool
}

var boardSizes = [][2]int{{6, 6}, {8, 8}, {10, 10}}

// NewGameSetup creates a new game setup form preset to defaults. onStart
// receives the chosen game and whether legal moves should be marked.
func NewGameSetup(defaults engine.GameConfig, showHints bool, onStart func(engine.GameConfig, bool), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:   onStart,
		onCancel:  onCancel,
		onColors:  onColors,
		size:      [2]int{defaults.Width, defaults.Height},
		first:     defaults.FirstPlayer,
		showHints: showHints,
	}
	if !setup.first.Valid() {
		setup.first = board.Black
	}

	// A configured size outside the presets is offered as an extra option.
	setup.sizes = boardSizes
	sizeIndex := -1
	for i, s := range setup.sizes {
		if s == setup.size {
			sizeIndex = i
		}
	}
	if sizeIndex < 0 {
		setup.sizes = append(append([][2]int{}, boardSizes...), setup.size)
		sizeIndex = len(setup.sizes) - 1
	}
	sizeOptions := make([]string, len(setup.sizes))
	for i, s := range setup.sizes {
		sizeOptions[i] = fmt.Sprintf("%dx%d", s[0], s[1])
	}

	firstOptions := []string{"Black", "White"}
	firstIndex := 0
	if setup.first == board.White {
		firstIndex = 1
	}

	form := tview.NewForm()

	form.AddDropDown("Board Size", sizeOptions, sizeIndex, func(option string, index int) {
		if index >= 0 && index < len(setup.sizes) {
			setup.size = setup.sizes[index]
		}
	})

	form.AddDropDown("First Player", firstOptions, firstIndex, func(option string, index int) {
		setup.first = board.Black
		if index == 1 {
			setup.first = board.White
		}
	})

	form.AddCheckbox("Show Legal Moves", showHints, func(checked bool) {
		setup.showHints = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.GameConfig(), setup.showHints)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetTitleColor(MenuColors.Title)
	form.SetBorderColor(MenuColors.Border)
	form.SetBackgroundColor(MenuColors.CardBG)
	form.SetLabelColor(MenuColors.Label)
	form.SetFieldBackgroundColor(MenuColors.ButtonBG)
	form.SetFieldTextColor(MenuColors.ButtonText)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	// Create help text
	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	// Create flex layout with form and help text
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// GameConfig returns the game currently selected in the form.
func (s *GameSetupUI) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		Width:       s.size[0],
		Height:      s.size[1],
		FirstPlayer: s.first,
	}
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
