// Package ui specifies custom controls for tview to assist in playing Reversi in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/board"
	"reversi-local/config"
	"reversi-local/engine"
	"reversi-local/types"
)

// Indexes into BoardUI.styles.
const (
	styleBoard = iota
	styleBlack
	styleWhite
	styleBoardAlt
	styleCursorFG
	styleLastPlayedBG
	styleCursorBG
	styleLine
	styleHint
)

type BoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	finished   bool
	// selX and selY are play-area coordinates; 0 means nothing is selected.
	selX      int
	selY      int
	showHints bool
	notice    string
	app       *tview.Application
	eng       engine.GameEngine
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

// ToggleHints switches legal-move markers on or off and returns the new state.
func (g *BoardUI) ToggleHints() bool {
	g.showHints = !g.showHints
	g.refreshHint()
	return g.showHints
}

// SetHints sets whether legal moves are marked.
func (g *BoardUI) SetHints(enabled bool) {
	g.showHints = enabled
}

func (g *BoardUI) SelectedTile() *board.Point {
	if g.selX == 0 && g.selY == 0 {
		return nil
	}
	return &board.Point{X: g.selX, Y: g.selY}
}

func (g *BoardUI) MoveSelection(h, v int) {
	if g.BoardState == nil || g.BoardState.Width() == 0 || g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		if g.BoardState.HasLastMove {
			g.selX = g.BoardState.LastMove.X
			g.selY = g.BoardState.LastMove.Y
		} else {
			// No move made yet, use board center
			g.selX = g.BoardState.Width() / 2
			g.selY = g.BoardState.Height() / 2
		}
		return
	}
	if g.selX+h < 1 || g.selX+h > g.BoardState.Width() {
		return
	}
	if g.selY+v < 1 || g.selY+v > g.BoardState.Height() {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *BoardUI) ResetSelection() {
	g.selX = 0
	g.selY = 0
}

func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	boardUI := &BoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		showHints:  c.Game.ShowHints,
	}
	boardUI.SetConfig(c)
	boardUI.Box.SetDrawFunc(boardUI.draw)
	return boardUI
}

func (g *BoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	state := g.BoardState
	if state == nil || state.Width() == 0 {
		return x, y, 1, 1
	}
	// 2 characters per cell for square appearance
	boardW, boardH := state.Width()*2, state.Height()
	theme := g.cfg.Theme

	for by := 1; by <= state.Height(); by++ {
		for bx := 1; bx <= state.Width(); bx++ {
			pt := board.Pt(bx, by)
			bg := g.styles[styleBoard]
			if (bx+by)%2 == 1 {
				bg = g.styles[styleBoardAlt]
			}

			var fg tcell.Color
			var drawRune rune
			piece, occupied := board.PieceOf(state.Board.Cell(pt))
			switch {
			case occupied:
				drawRune = theme.Symbols.BlackDisc
				fg = g.styles[styleBlack]
				if piece == board.White {
					drawRune = theme.Symbols.WhiteDisc
					fg = g.styles[styleWhite]
				}
				if theme.DrawDiscBackground {
					// The disc colour fills the cell; the symbol takes the other colour.
					bg, fg = fg, g.styles[styleWhite]
					if piece == board.White {
						fg = g.styles[styleBlack]
					}
				}
			case g.showHints && !state.Finished() && state.Board.CanPlace(state.ToMove, pt):
				drawRune = theme.Symbols.Hint
				fg = g.styles[styleHint]
			default:
				drawRune = theme.Symbols.BoardSquare
				fg = g.styles[styleLine]
			}

			if bx == g.selX && by == g.selY {
				if theme.DrawCursorBackground {
					bg = g.styles[styleCursorBG]
				} else if !occupied {
					drawRune = theme.Symbols.Cursor
					fg = g.styles[styleCursorFG]
				}
			} else if state.HasLastMove && pt == state.LastMove {
				if theme.DrawLastPlayedBackground {
					bg = g.styles[styleLastPlayedBG]
				}
			}

			drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, bx-1, by-1, x+4, y)
		}
	}
	drawCoordinates(screen, x, y, g)
	// Add offset for coordinate display
	return x, y, boardW + 4, boardH + 2
}

// ConnectEngine connects the board to a game engine and starts the game.
func (g *BoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.notice = ""
	g.eng = e
	g.ResetSelection()

	e.OnMove(func(pt board.Point, piece board.Piece, state *types.BoardState) {
		g.BoardState = state
		g.notice = ""
		g.refreshHint()
		g.queueDraw()
	})

	e.OnSkip(func(piece board.Piece) {
		g.queueDraw()
	})

	e.OnGameEnd(func(outcome string) {
		g.finished = true
		g.BoardState = e.GetBoardState()
		g.ResetSelection()
		g.refreshHint()
		g.queueDraw()
	})

	if err := e.Connect(); err != nil {
		return err
	}

	g.BoardState = e.GetBoardState()
	g.finished = g.BoardState.Finished()
	g.refreshHint()
	return nil
}

func (g *BoardUI) queueDraw() {
	if g.app == nil {
		return
	}
	// Spawn goroutine to avoid deadlock when called from the event loop
	go func() {
		g.app.QueueUpdateDraw(func() {})
	}()
}

// PlayMove places the side to move at the given coordinates.
func (g *BoardUI) PlayMove(x, y int) {
	if g.finished {
		return
	}
	if g.eng == nil {
		return
	}
	err := g.eng.PlayMove(x, y)
	if errors.Is(err, engine.ErrIllegalMove) {
		g.notice = fmt.Sprintf("cannot place at %s", engine.FormatPoint(board.Pt(x, y)))
		g.refreshHint()
	}
}

// Close disconnects the engine.
func (g *BoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // styleBlack
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // styleWhite
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // styleCursorFG
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayedBG
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursorBG
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // styleLine
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // styleHint
	}
	g.cfg = c
}

func (g *BoardUI) refreshHint() {
	// Update info panel if available
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", g.BoardState.Outcome)
		controlsLine = "\n  q · return to menu"
	} else {
		if g.BoardState.Skipped.Valid() {
			statusLine = fmt.Sprintf("  ○ %s had no legal move\n", g.BoardState.Skipped)
		}
		if g.notice != "" {
			statusLine += fmt.Sprintf("  ✗ %s\n", g.notice)
		}

		disc := "●"
		if g.BoardState.ToMove == board.White {
			disc = "○"
		}
		turnLine = fmt.Sprintf("  %s %s to move\n", disc, g.BoardState.ToMove)

		controlsLine = `
  hjkl/↑↓←→ move   ⏎ place
      ? hints   f focus   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (g *BoardUI) IsFinished() bool {
	return g.finished
}

// drawCell draws a board cell (2 characters wide)
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	hCoord := int('a')
	w, h := ui.BoardState.Width(), ui.BoardState.Height()
	if ui.cfg.Theme.FullWidthLetters {
		hCoord = int('ａ')
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursorBG])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[styleLastPlayedBG])
	last := ui.BoardState.LastMove
	hasLast := ui.BoardState.HasLastMove

	for bx := 1; bx <= w; bx++ {
		_style := style
		if bx == ui.selX {
			_style = highlight
		} else if hasLast && bx == last.X {
			_style = lpHighlight
		}
		// 2-char cells
		s.SetContent(x+4+(bx-1)*2, y+h+1, rune(hCoord+bx-1), nil, _style)
		s.SetContent(x+4+(bx-1)*2+1, y+h+1, ' ', nil, _style)
	}

	for by := 1; by <= h; by++ {
		_style := style
		if by == ui.selY {
			_style = highlight
		} else if hasLast && by == last.Y {
			_style = lpHighlight
		}
		tensRune := ' '
		if by >= 10 {
			tensRune = rune('0' + by/10)
		}
		s.SetContent(x+1, y+by-1, tensRune, nil, _style)
		s.SetContent(x+2, y+by-1, rune('0'+by%10), nil, _style)
	}
	s.Show()
}
