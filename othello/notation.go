package othello

import (
	"fmt"
	"strings"
)

// Algebraic coordinate system:
// - Columns: a-h, left to right
// - Rows: 1-8, top to bottom
// - Example: d3 is column 3, row 2 in zero-based board coordinates.

// ParseCoord converts an algebraic coordinate like "d3" into board
// coordinates. Input must be exactly a column letter followed by a row
// digit; anything else is rejected.
func ParseCoord(s string) (Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("invalid coordinate: %q", s)
	}
	colChar, rowChar := s[0], s[1]
	if colChar < 'a' || colChar > 'h' || rowChar < '1' || rowChar > '8' {
		return Coord{}, fmt.Errorf("invalid coordinate: %q", s)
	}
	return Coord{Row: int(rowChar - '1'), Col: int(colChar - 'a')}, nil
}

// String renders the coordinate in algebraic form, e.g. "d3".
func (c Coord) String() string {
	if !OnBoard(c.Row, c.Col) {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(c.Col), c.Row+1)
}
