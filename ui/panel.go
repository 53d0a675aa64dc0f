package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termello/game"
	"termello/othello"
)

// ScorePanel displays the running score and turn information alongside
// the board.
type ScorePanel struct {
	box     *tview.TextView
	session *game.Session
}

// NewScorePanel creates a new score panel.
func NewScorePanel() *ScorePanel {
	panel := &ScorePanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *ScorePanel) Box() *tview.TextView {
	return p.box
}

// SetSession updates the panel with the session to display.
func (p *ScorePanel) SetSession(session *game.Session) {
	p.session = session
	p.refresh()
}

// refresh updates the panel text.
func (p *ScorePanel) refresh() {
	if p.session == nil {
		p.box.SetText("")
		return
	}

	result := p.session.Result()

	var text string
	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]● Black:[-:-:-] %d\n", result.Black)
	text += fmt.Sprintf("[white]○ White:[-:-:-] %d\n", result.White)
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.session.MoveNumber())

	if !p.session.Over() {
		text += fmt.Sprintf("\n[white]Turn:[-:-:-] %s\n", p.session.Turn())
		text += fmt.Sprintf("[white]Options:[-:-:-] %d\n", len(p.session.LegalMoves()))
	} else {
		text += fmt.Sprintf("\n[yellow::b]%s[-:-:-]\n", result.Verdict())
	}

	if mv, by, ok := p.session.LastMove(); ok {
		text += fmt.Sprintf("\n[dimgray]last: %s %s[-]\n", by, mv.Coord)
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	infoPanel := NewScorePanel()

	// Store panel reference in board for updates
	board.infoPanel = infoPanel

	// Horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Main vertical flex: board area on top, compact status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 4, 0, false)

	return mainFlex
}

// FormatResultText builds the text for the game-over modal.
func FormatResultText(r game.Result) string {
	verdict := r.Verdict()
	if r.Winner() == othello.Empty {
		verdict = "Draw"
	}
	return fmt.Sprintf("Game Over!\n%s\nBlack: %d  White: %d", verdict, r.Black, r.White)
}
