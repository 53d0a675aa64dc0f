// Package ui specifies custom controls for tview to assist in playing
// Othello in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termello/config"
	"termello/game"
	"termello/othello"
)

// BoardUI renders a game session as an 8x8 grid of two-character cells
// and turns cursor input into session moves. Both players share the
// keyboard, so everything runs on the tview event loop.
type BoardUI struct {
	Box       *tview.Box
	session   *game.Session
	hint      *tview.TextView
	cfg       *config.Config
	app       *tview.Application
	selRow    int
	selCol    int
	finished  bool
	notice    string
	styles    []tcell.Color
	infoPanel *ScorePanel
	onOver    func(game.Result)
}

// Style indices for the styles slice.
const (
	styleBoard = iota
	styleBoardAlt
	styleBlack
	styleWhite
	styleHint
	styleCursorFG
	styleCursorBG
	styleLastPlayedBG
)

func NewBoardUI(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	board := &BoardUI{
		Box:    tview.NewBox(),
		hint:   hint,
		app:    app,
		selRow: -1,
		selCol: -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if board.session == nil {
			return x, y, 1, 1
		}
		// 2 characters per cell for square appearance
		boardW, boardH := othello.BoardSize*2, othello.BoardSize

		var legal map[othello.Coord]othello.Move
		if !board.finished && board.cfg.Game.ShowLegalMoves {
			legal = board.session.LegalMoves()
		}
		lastMove, _, hasLast := board.session.LastMove()

		for row := 0; row < othello.BoardSize; row++ {
			for col := 0; col < othello.BoardSize; col++ {
				cell := board.session.Board()[row][col]

				bg := styleBoard
				if board.cfg.Theme.CheckerboardCells && (row%2+col%2) == 1 {
					bg = styleBoardAlt
				}

				drawRune := board.cfg.Theme.Symbols.EmptySquare
				fg := board.styles[styleHint]
				switch cell {
				case othello.Black:
					drawRune = board.cfg.Theme.Symbols.BlackDisc
					fg = board.styles[styleBlack]
				case othello.White:
					drawRune = board.cfg.Theme.Symbols.WhiteDisc
					fg = board.styles[styleWhite]
				default:
					if _, ok := legal[othello.Coord{Row: row, Col: col}]; ok {
						drawRune = board.cfg.Theme.Symbols.LegalMove
					}
				}

				if row == board.selRow && col == board.selCol {
					if board.cfg.Theme.DrawCursorBackground {
						bg = styleCursorBG
					} else {
						fg = board.styles[styleCursorFG]
					}
				} else if hasLast && row == lastMove.Row && col == lastMove.Col {
					bg = styleLastPlayedBG
				}

				style := tcell.StyleDefault.Background(board.styles[bg]).Foreground(fg)
				screen.SetContent(x+4+col*2, y+row, drawRune, nil, style)
				screen.SetContent(x+4+col*2+1, y+row, ' ', nil, style)
			}
		}
		drawCoordinates(screen, x, y, board)
		// Add offset for coordinate display
		return x, y, boardW + 4, boardH + 2
	})
	return board
}

// StartGame attaches a fresh session to the board.
func (b *BoardUI) StartGame(session *game.Session) {
	b.session = session
	b.finished = false
	b.notice = ""
	b.ResetSelection()
	b.refreshHint()
}

// SetGameOverFunc registers a callback invoked with the final score once
// the game ends.
func (b *BoardUI) SetGameOverFunc(f func(game.Result)) {
	b.onOver = f
}

// Session returns the attached session, nil before the first game.
func (b *BoardUI) Session() *game.Session {
	return b.session
}

// SelectedTile returns the cursor position, or nil when nothing is
// selected.
func (b *BoardUI) SelectedTile() *othello.Coord {
	if b.selRow == -1 && b.selCol == -1 {
		return nil
	}
	return &othello.Coord{Row: b.selRow, Col: b.selCol}
}

// MoveSelection moves the cursor by (h, v), clamped to the board. The
// first movement places the cursor at the board center.
func (b *BoardUI) MoveSelection(h, v int) {
	if b.finished {
		b.ResetSelection()
		return
	}
	if b.SelectedTile() == nil {
		b.selRow = othello.BoardSize / 2
		b.selCol = othello.BoardSize / 2
		return
	}
	if b.selCol+h < 0 || b.selCol+h >= othello.BoardSize {
		return
	}
	if b.selRow+v < 0 || b.selRow+v >= othello.BoardSize {
		return
	}
	b.selCol += h
	b.selRow += v
}

func (b *BoardUI) ResetSelection() {
	b.selRow = -1
	b.selCol = -1
}

// PlaySelected plays the move under the cursor if it is legal.
func (b *BoardUI) PlaySelected() {
	if b.finished || b.session == nil {
		return
	}
	sel := b.SelectedTile()
	if sel == nil {
		return
	}
	mv, ok := b.session.LegalMoves()[*sel]
	if !ok {
		b.notice = "Illegal move. Pick a marked square."
		b.refreshHint()
		return
	}
	b.notice = ""
	b.session.Play(mv)
	b.afterTurn()
}

// Pass forfeits the turn. Allowed only when the player to move has no
// legal move.
func (b *BoardUI) Pass() {
	if b.finished || b.session == nil {
		return
	}
	if err := b.session.Pass(); err != nil {
		b.notice = "You have legal moves and cannot pass."
		b.refreshHint()
		return
	}
	b.notice = fmt.Sprintf("%s passed.", b.session.Turn().Opponent())
	b.afterTurn()
}

// afterTurn settles the board after a move or pass: it takes forced
// passes automatically and fires the game-over callback.
func (b *BoardUI) afterTurn() {
	if b.session.Over() {
		b.finished = true
		b.ResetSelection()
		b.refreshHint()
		if b.onOver != nil {
			b.onOver(b.session.Result())
		}
		return
	}
	if b.session.MustPass() {
		stuck := b.session.Turn()
		if err := b.session.Pass(); err == nil {
			b.notice = fmt.Sprintf("%s has no moves; turn passes.", stuck)
		}
	}
	b.refreshHint()
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // styleBlack
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // styleWhite
		tcell.PaletteColor(c.Theme.Colors.HintColor),         // styleHint
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // styleCursorFG
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursorBG
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayedBG
	}
	b.cfg = c
}

func (b *BoardUI) refreshHint() {
	if b.infoPanel != nil {
		b.infoPanel.SetSession(b.session)
	}

	var statusLine, turnLine, controlsLine string

	if b.finished {
		result := b.session.Result()
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s (%d-%d)\n", result.Verdict(), result.Black, result.White)
		controlsLine = "\n  q · return to menu"
	} else {
		if b.notice != "" {
			statusLine = fmt.Sprintf("  %s\n\n", b.notice)
		}

		if b.session != nil {
			stone := "●"
			if b.session.Turn() == othello.White {
				stone = "○"
			}
			turnLine = fmt.Sprintf("  %s %s to move\n", stone, b.session.Turn())
		}

		controlsLine = `
  hjkl/↑↓←→ move   ⏎ play
         p pass   q quit`
	}

	b.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (b *BoardUI) IsFinished() bool {
	return b.finished
}

// drawCoordinates labels the columns a-h below the board and the rows
// 1-8 on the left, counted from the top as in Othello notation.
func drawCoordinates(s tcell.Screen, x, y int, board *BoardUI) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(board.styles[styleCursorBG])

	for col := 0; col < othello.BoardSize; col++ {
		_style := style
		if col == board.selCol {
			_style = highlight
		}
		s.SetContent(x+4+col*2, y+othello.BoardSize+1, rune('a'+col), nil, _style)
		s.SetContent(x+4+col*2+1, y+othello.BoardSize+1, ' ', nil, _style)
	}

	for row := 0; row < othello.BoardSize; row++ {
		_style := style
		if row == board.selRow {
			_style = highlight
		}
		s.SetContent(x+2, y+row, rune('1'+row), nil, _style)
	}
	s.Show()
}
