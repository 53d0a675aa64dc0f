// Package othello implements the rules of Othello/Reversi on a standard
// 8x8 board: move legality, disc flipping, terminal detection and scoring.
// All functions are pure or mutate only the board they are called on; the
// package holds no state of its own.
package othello

// BoardSize is the side length of the (square) board.
const BoardSize = 8

// Cell is the content of a single board square.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

// Opponent returns the opposing color. Only valid for Black and White.
func (c Cell) Opponent() Cell {
	if c == Black {
		return White
	}
	return Black
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Coord is a board position. Row 0 is the top row, Col 0 the left column.
type Coord struct {
	Row int
	Col int
}

// Board is indexed as board[row][col].
type Board [BoardSize][BoardSize]Cell

// NewBoard returns a board with the standard Othello starting position:
// White on d4/e5, Black on e4/d5.
func NewBoard() *Board {
	b := &Board{}
	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// OnBoard reports whether (row, col) is within the board.
func OnBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Full reports whether the board has no empty squares left.
func (b *Board) Full() bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// Score counts the discs of each color. Empty squares count for neither,
// so black + white + empties is always 64.
func (b *Board) Score() (black, white int) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b[row][col] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}
