package shell

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"termello/game"
	"termello/othello"
)

// newTestShell wires a shell to buffers with the Ascii profile so the
// output is plain text.
func newTestShell(session *game.Session, input string) (*Shell, *bytes.Buffer) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	return New(session, strings.NewReader(input), out), &buf
}

func TestRenderInitialBoard(t *testing.T) {
	session := game.NewSession()
	sh, _ := newTestShell(session, "")

	got := sh.renderBoard(session.LegalMoves())
	want := "" +
		"  a b c d e f g h\n" +
		"1 . . . . . . . .\n" +
		"2 . . . . . . . .\n" +
		"3 . . . * . . . .\n" +
		"4 . . * W B . . .\n" +
		"5 . . . B W * . .\n" +
		"6 . . . . * . . .\n" +
		"7 . . . . . . . .\n" +
		"8 . . . . . . . .\n"
	if got != want {
		t.Errorf("board rendering mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderWithoutHighlights(t *testing.T) {
	session := game.NewSession()
	sh, _ := newTestShell(session, "")

	if got := sh.renderBoard(nil); strings.Contains(got, "*") {
		t.Errorf("render without legal moves should not mark squares:\n%s", got)
	}
}

func TestPromptRejections(t *testing.T) {
	session := game.NewSession()
	sh, buf := newTestShell(session, "pass\nx9\nq1\na1\nd3\n")

	mv, pass, err := sh.promptMove(othello.Black, session.LegalMoves())
	if err != nil {
		t.Fatalf("promptMove returned error: %v", err)
	}
	if pass {
		t.Fatal("promptMove should not report a pass")
	}
	if mv.Coord != (othello.Coord{Row: 2, Col: 3}) {
		t.Fatalf("expected d3 to be accepted, got %s", mv.Coord)
	}

	out := buf.String()
	if !strings.Contains(out, "cannot pass") {
		t.Error("pass with legal moves should be rejected with a message")
	}
	if strings.Count(out, "Invalid input") != 2 {
		t.Errorf("expected 2 unparseable-input rejections, output:\n%s", out)
	}
	if !strings.Contains(out, "Illegal move") {
		t.Error("parseable but illegal coordinate should be rejected with a message")
	}
}

func TestRunFinishesGame(t *testing.T) {
	// One empty square left; Black's a1 captures b1 and fills the board.
	var b othello.Board
	for row := 0; row < othello.BoardSize; row++ {
		for col := 0; col < othello.BoardSize; col++ {
			b[row][col] = othello.Black
		}
	}
	b[0][0] = othello.Empty
	b[0][1] = othello.White

	sh, buf := newTestShell(game.NewSessionFrom(&b, othello.Black), "a1\n")
	if err := sh.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Black has 1 legal move(s).") {
		t.Errorf("expected legal move count, output:\n%s", out)
	}
	if !strings.Contains(out, "Score - Black: 64, White: 0") {
		t.Errorf("expected final score line, output:\n%s", out)
	}
	if !strings.Contains(out, "Black wins.") {
		t.Errorf("expected verdict, output:\n%s", out)
	}
}

func TestRunForcedPass(t *testing.T) {
	// Black is stuck, passes, then White's c1 wipes the last black disc
	// and ends the game.
	var b othello.Board
	b[0][0] = othello.White
	b[0][1] = othello.Black

	sh, buf := newTestShell(game.NewSessionFrom(&b, othello.Black), "pass\nc1\n")
	if err := sh.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Black has no legal moves and must pass.") {
		t.Errorf("expected forced-pass notice, output:\n%s", out)
	}
	if !strings.Contains(out, "Score - Black: 0, White: 3") {
		t.Errorf("expected final score line, output:\n%s", out)
	}
	if !strings.Contains(out, "White wins.") {
		t.Errorf("expected verdict, output:\n%s", out)
	}
}

func TestRunOverBeforeFirstPrompt(t *testing.T) {
	// Neither player can capture anything; Run reports the result
	// without prompting.
	var b othello.Board
	b[0][0] = othello.Black

	sh, buf := newTestShell(game.NewSessionFrom(&b, othello.Black), "")
	if err := sh.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "to move") {
		t.Errorf("finished game should not prompt, output:\n%s", out)
	}
	if !strings.Contains(out, "Score - Black: 1, White: 0") {
		t.Errorf("expected final score line, output:\n%s", out)
	}
}

func TestRunInputClosed(t *testing.T) {
	sh, _ := newTestShell(game.NewSession(), "")
	if err := sh.Run(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}
