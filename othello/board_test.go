package othello

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	wantWhite := []Coord{{3, 3}, {4, 4}}
	wantBlack := []Coord{{3, 4}, {4, 3}}
	for _, pos := range wantWhite {
		if b[pos.Row][pos.Col] != White {
			t.Errorf("expected White at %s, got %v", pos, b[pos.Row][pos.Col])
		}
	}
	for _, pos := range wantBlack {
		if b[pos.Row][pos.Col] != Black {
			t.Errorf("expected Black at %s, got %v", pos, b[pos.Row][pos.Col])
		}
	}

	empties := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == Empty {
				empties++
			}
		}
	}
	if empties != 60 {
		t.Errorf("expected 60 empty squares, got %d", empties)
	}
}

func TestScore(t *testing.T) {
	b := NewBoard()
	black, white := b.Score()
	if black != 2 || white != 2 {
		t.Errorf("initial score should be 2-2, got %d-%d", black, white)
	}

	// Counts plus empties always cover the whole board.
	b[0][0] = Black
	b[7][7] = White
	black, white = b.Score()
	empties := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == Empty {
				empties++
			}
		}
	}
	if black+white+empties != BoardSize*BoardSize {
		t.Errorf("score %d+%d plus %d empties should equal 64", black, white, empties)
	}
}

func TestFull(t *testing.T) {
	b := NewBoard()
	if b.Full() {
		t.Error("initial board should not be full")
	}

	var full Board
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			full[row][col] = Black
		}
	}
	if !full.Full() {
		t.Error("board with 64 discs should be full")
	}
}

func TestCopy(t *testing.T) {
	b := NewBoard()
	nb := b.Copy()
	nb[0][0] = Black
	if b[0][0] != Empty {
		t.Error("mutating the copy should not affect the original")
	}
}

func TestOpponent(t *testing.T) {
	if Black.Opponent() != White {
		t.Error("opponent of Black should be White")
	}
	if White.Opponent() != Black {
		t.Error("opponent of White should be Black")
	}
}

func TestOnBoard(t *testing.T) {
	for _, tc := range []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{7, 7, true},
		{-1, 0, false},
		{0, -1, false},
		{8, 0, false},
		{0, 8, false},
	} {
		if got := OnBoard(tc.row, tc.col); got != tc.want {
			t.Errorf("OnBoard(%d, %d) = %v, want %v", tc.row, tc.col, got, tc.want)
		}
	}
}
