package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"reversi-local/board"
	"reversi-local/engine"
	"reversi-local/types"
)

// GameInfoPanel displays the score and turn alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardState == nil || p.boardState.Board == nil {
		p.box.SetText("")
		return
	}
	s := p.boardState
	black, white := s.Board.Count(board.Black), s.Board.Count(board.White)

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Board:[-:-:-] %dx%d\n", s.Width(), s.Height())
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", s.MoveNumber)
	if s.HasLastMove {
		text += fmt.Sprintf("[white]Last:[-:-:-] %s\n", engine.FormatPoint(s.LastMove))
	}

	text += "\n[white::b]Discs[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("%s[white]● Black[-:-:-] %d\n", p.marker(board.Black), black)
	text += fmt.Sprintf("%s[white]○ White[-:-:-] %d\n", p.marker(board.White), white)

	if s.Finished() {
		text += fmt.Sprintf("\n[yellow::b]%s[-:-:-]\n", s.Outcome)
	}

	p.box.SetText(text)
}

// marker flags the side to move.
func (p *GameInfoPanel) marker(piece board.Piece) string {
	if !p.boardState.Finished() && p.boardState.ToMove == piece {
		return "[yellow]>[-] "
	}
	return "  "
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(boardUI *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, boardUI, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, boardUI *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	// Store panel reference in board for updates
	infoPanel := NewGameInfoPanel()
	boardUI.infoPanel = infoPanel
	if boardUI.BoardState != nil {
		infoPanel.SetBoardState(boardUI.BoardState)
	}

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(boardUI.Box, 0, 1, true)       // Board (flexible, takes remaining space)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 6, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, boardUI *BoardUI) {
	gameFrame.Clear()

	// Calculate board dimensions
	boardWidth := 20 // default for 8x8
	boardHeight := 10
	if boardUI.BoardState != nil && boardUI.BoardState.Width() > 0 {
		boardWidth = boardUI.BoardState.Width()*2 + 4 // 2 chars per cell + coordinates
		boardHeight = boardUI.BoardState.Height() + 2 // + coordinates
	}

	// Center board with flex spacers
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)                 // left spacer
	centerRow.AddItem(boardUI.Box, boardWidth, 0, true) // board (fixed width)
	centerRow.AddItem(nil, 0, 1, false)                 // right spacer

	gameFrame.AddItem(centerRow, boardHeight, 0, true) // center row (fixed height)
	gameFrame.AddItem(nil, 0, 1, false)                // bottom spacer
}
