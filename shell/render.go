package shell

import (
	"strings"

	"termello/othello"
)

// Board text markers. Styling is layered on top via termenv and degrades
// to these bare characters on the Ascii profile.
const (
	markEmpty = "."
	markBlack = "B"
	markWhite = "W"
	markLegal = "*"
)

// renderBoard returns the board as text: a header row of column letters,
// then 8 rows prefixed with 1-based row numbers. Squares that are keys of
// legal are overlaid with the legal-move marker; the board itself is
// never touched.
func (s *Shell) renderBoard(legal map[othello.Coord]othello.Move) string {
	blackStyle := s.out.String(markBlack).Bold()
	whiteStyle := s.out.String(markWhite).Foreground(s.out.Color("7"))
	legalStyle := s.out.String(markLegal).Foreground(s.out.Color("2"))
	emptyStyle := s.out.String(markEmpty).Faint()

	var sb strings.Builder
	sb.WriteString(" ")
	for col := 0; col < othello.BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte('a' + col))
	}
	sb.WriteByte('\n')

	for row := 0; row < othello.BoardSize; row++ {
		sb.WriteByte(byte('1' + row))
		for col := 0; col < othello.BoardSize; col++ {
			sb.WriteByte(' ')
			if _, ok := legal[othello.Coord{Row: row, Col: col}]; ok {
				sb.WriteString(legalStyle.String())
				continue
			}
			switch s.session.Board()[row][col] {
			case othello.Black:
				sb.WriteString(blackStyle.String())
			case othello.White:
				sb.WriteString(whiteStyle.String())
			default:
				sb.WriteString(emptyStyle.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
