// Package shell implements the line-based prompt frontend: it renders the
// board as text, reads algebraic moves from an input stream and drives a
// game.Session until the game ends. Input and output are injected so the
// whole loop can be tested against buffers.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"termello/game"
	"termello/othello"
)

// Shell runs an interactive two-player game over plain text I/O.
type Shell struct {
	session *game.Session
	in      *bufio.Scanner
	out     *termenv.Output
}

// New creates a shell around an existing session. Output styling follows
// the termenv profile of out, so writing to a plain buffer produces
// uncolored text.
func New(session *game.Session, in io.Reader, out *termenv.Output) *Shell {
	return &Shell{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays the game to completion, prompting the players in turn. The
// only error it can return is a failure to read input; rejected inputs
// re-prompt and never abort the loop.
func (s *Shell) Run() error {
	for !s.session.Over() {
		moves := s.session.LegalMoves()
		player := s.session.Turn()

		fmt.Fprintln(s.out)
		fmt.Fprint(s.out, s.renderBoard(moves))
		if len(moves) > 0 {
			fmt.Fprintf(s.out, "%s has %d legal move(s).\n", player, len(moves))
		} else {
			fmt.Fprintf(s.out, "%s has no legal moves and must pass.\n", player)
		}

		mv, pass, err := s.promptMove(player, moves)
		if err != nil {
			return err
		}
		if pass {
			if err := s.session.Pass(); err != nil {
				return err
			}
			continue
		}
		s.session.Play(mv)
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Final board:")
	fmt.Fprint(s.out, s.renderBoard(nil))
	result := s.session.Result()
	fmt.Fprintf(s.out, "Score - Black: %d, White: %d\n", result.Black, result.White)
	fmt.Fprintf(s.out, "%s.\n", result.Verdict())
	return nil
}

// promptMove reads input until the player enters a legal move, or "pass"
// when no moves exist. pass is true when the turn is forfeited.
func (s *Shell) promptMove(player othello.Cell, moves map[othello.Coord]othello.Move) (mv othello.Move, pass bool, err error) {
	for {
		fmt.Fprintf(s.out, "%s to move (e.g. d3) or 'pass': ", player)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return othello.Move{}, false, err
			}
			return othello.Move{}, false, io.ErrUnexpectedEOF
		}
		entry := strings.ToLower(strings.TrimSpace(s.in.Text()))

		if entry == "pass" {
			if len(moves) > 0 {
				fmt.Fprintln(s.out, "You have legal moves and cannot pass.")
				continue
			}
			return othello.Move{}, true, nil
		}

		pos, perr := othello.ParseCoord(entry)
		if perr != nil {
			fmt.Fprintln(s.out, "Invalid input. Use a column letter (a-h) followed by a row number (1-8).")
			continue
		}
		mv, ok := moves[pos]
		if !ok {
			fmt.Fprintln(s.out, "Illegal move. Choose one of the marked squares.")
			continue
		}
		return mv, false, nil
	}
}
