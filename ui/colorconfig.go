package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"reversi-local/board"
	"reversi-local/config"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedBoard int
	selectedHint  int
	editingHint   bool // true = editing hint color, false = editing board color
	saveErr       error
}

// Board tones come in pairs so the squares stay checkered.
var boardColors = []struct {
	code int
	alt  int
	name string
}{
	{28, 22, "Felt Green"},
	{34, 28, "Bright Green"},
	{29, 23, "Sea Green"},
	{65, 59, "Moss"},
	{71, 65, "Sage"},
	{22, 16, "Forest"},
	{23, 17, "Deep Teal"},
	{30, 24, "Teal"},
	{24, 18, "Ocean"},
	{94, 58, "Walnut"},
	{130, 94, "Mahogany"},
	{136, 94, "Oak"},
	{240, 236, "Slate"},
	{244, 240, "Gray"},
}

// Hint colors (bright tones that show on a dark board)
var hintColors = []struct {
	code int
	name string
}{
	{154, "Lime"},
	{118, "Chartreuse"},
	{226, "Yellow"},
	{220, "Gold"},
	{214, "Orange"},
	{51, "Cyan"},
	{45, "Sky Blue"},
	{201, "Magenta"},
	{213, "Pink"},
	{196, "Red"},
	{250, "Light Gray"},
	{255, "White"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:           cfg,
		onDone:        onDone,
		selectedBoard: 0,
		selectedHint:  cfg.Theme.Colors.HintColor,
	}
	for i, c := range boardColors {
		if c.code == cfg.Theme.Colors.BoardColor {
			cc.selectedBoard = i
			break
		}
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.SetBorderColor(MenuColors.Border)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	// Moving through the list previews the color
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingHint {
			if index >= 0 && index < len(hintColors) {
				cc.selectedHint = hintColors[index].code
			}
		} else if index >= 0 && index < len(boardColors) {
			cc.selectedBoard = index
		}
	})

	// Enter applies and saves
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingHint {
			cc.cfg.Theme.Colors.HintColor = cc.selectedHint
			// Switch back to board color selection
			cc.editingHint = false
			cc.save()
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.BoardColor = boardColors[cc.selectedBoard].code
		cc.cfg.Theme.Colors.BoardColorAlt = boardColors[cc.selectedBoard].alt
		if cc.save() {
			onDone()
			return
		}
		cc.populateColorList()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetBorderColor(MenuColors.Border)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 32, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// save writes the config and reports whether it succeeded. A failure is
// kept for the list title so the choice still applies for this session.
func (cc *ColorConfigUI) save() bool {
	cc.saveErr = cc.cfg.Save()
	return cc.saveErr == nil
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	// Adding the first item fires the changed func, so remember the selection.
	boardIndex, hint := cc.selectedBoard, cc.selectedHint
	cc.colorList.Clear()

	switch {
	case cc.saveErr != nil:
		cc.colorList.SetTitle(fmt.Sprintf(" Not saved: %v ", cc.saveErr))
	case cc.editingHint:
		cc.colorList.SetTitle(" Select Hint Color (Tab: board) ")
	default:
		cc.colorList.SetTitle(" Select Board Color (Tab: hint) ")
	}

	if cc.editingHint {
		for i, c := range hintColors {
			cc.colorList.AddItem(swatch(c.code, c.name), "", rune('a'+i), nil)
		}
		cc.selectedHint = hint
		for i, c := range hintColors {
			if c.code == hint {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
		return
	}

	for i, c := range boardColors {
		cc.colorList.AddItem(swatch(c.code, c.name), "", rune('a'+i), nil)
	}
	cc.selectedBoard = boardIndex
	cc.colorList.SetCurrentItem(boardIndex)
}

func swatch(code int, name string) string {
	return fmt.Sprintf("[#%06x]████[-] %s (%d)", tcell.PaletteColor(code).Hex(), name, code)
}

// previewBoard is a 6x6 position a few moves in.
var previewBoard = func() *board.Board {
	b, err := board.New(6, 6)
	if err != nil {
		panic(err)
	}
	b = b.Place(board.Black, board.Pt(3, 2))
	return b.Place(board.White, board.Pt(2, 2))
}()

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	theme := cc.cfg.Theme
	entry := boardColors[cc.selectedBoard]
	boardColor := tcell.PaletteColor(entry.code)
	boardAlt := tcell.PaletteColor(entry.alt)
	blackColor := tcell.PaletteColor(theme.Colors.BlackColor)
	whiteColor := tcell.PaletteColor(theme.Colors.WhiteColor)
	lineColor := tcell.PaletteColor(theme.Colors.LineColor)
	hintColor := tcell.PaletteColor(cc.selectedHint)

	startX := x + 2
	startY := y + 1
	w, h := previewBoard.Width(), previewBoard.Height()

	if width < w*2+6 || height < h+4 {
		return x, y, width, height
	}

	for by := 1; by <= h; by++ {
		for bx := 1; bx <= w; bx++ {
			pt := board.Pt(bx, by)
			bg := boardColor
			if (bx+by)%2 == 1 {
				bg = boardAlt
			}

			r, fg := theme.Symbols.BoardSquare, lineColor
			if piece, ok := board.PieceOf(previewBoard.Cell(pt)); ok {
				r, fg = theme.Symbols.BlackDisc, blackColor
				if piece == board.White {
					r, fg = theme.Symbols.WhiteDisc, whiteColor
				}
			} else if previewBoard.CanPlace(board.Black, pt) {
				r, fg = theme.Symbols.Hint, hintColor
			}
			drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), r, bx-1, by-1, startX, startY)
		}
	}

	info := fmt.Sprintf("Board: %d/%d  Hint: %d", entry.code, entry.alt, cc.selectedHint)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+h+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and hint color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingHint = !cc.editingHint
	cc.populateColorList()
}
