package othello

// directions spans the 8 rays (orthogonal and diagonal) used both for
// legality checking and flip collection.
var directions = []struct{ dRow, dCol int }{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Move is a candidate placement together with the opponent discs it would
// flip. A Move is only meaningful for the board it was computed from and
// must be discarded once the board changes.
type Move struct {
	Coord
	Flips []Coord
}

// DiscsToFlip returns the opponent discs that would be captured if player
// placed a disc at (row, col). The result is empty (never an error) when
// the square is off the board, occupied, or the placement captures
// nothing. A placement is legal exactly when the result is non-empty.
func (b *Board) DiscsToFlip(player Cell, row, col int) []Coord {
	if !OnBoard(row, col) || b[row][col] != Empty {
		return nil
	}

	opp := player.Opponent()
	var flips []Coord
	for _, d := range directions {
		mark := len(flips)
		r, c := row+d.dRow, col+d.dCol
		for OnBoard(r, c) && b[r][c] == opp {
			flips = append(flips, Coord{Row: r, Col: c})
			r += d.dRow
			c += d.dCol
		}
		// The run counts only if it ends on one of the player's own
		// discs, bracketing the opponent discs in between.
		if !OnBoard(r, c) || b[r][c] != player {
			flips = flips[:mark]
		}
	}
	return flips
}

// ValidMoves scans every square and returns the legal moves for player,
// keyed by coordinate. Lookups are by coordinate; map iteration order is
// not part of the contract.
func (b *Board) ValidMoves(player Cell) map[Coord]Move {
	moves := make(map[Coord]Move)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if flips := b.DiscsToFlip(player, row, col); len(flips) > 0 {
				pos := Coord{Row: row, Col: col}
				moves[pos] = Move{Coord: pos, Flips: flips}
			}
		}
	}
	return moves
}

// Apply places player's disc at the move target and flips the captured
// discs, mutating the board in place. The move must have been computed
// from this board's current state; Apply does not re-validate.
func (b *Board) Apply(mv Move, player Cell) {
	b[mv.Row][mv.Col] = player
	for _, pos := range mv.Flips {
		b[pos.Row][pos.Col] = player
	}
}

// HasValidMove reports whether player has at least one legal move,
// stopping at the first one found.
func (b *Board) HasValidMove(player Cell) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if len(b.DiscsToFlip(player, row, col)) > 0 {
				return true
			}
		}
	}
	return false
}

// GameOver reports whether the game has ended: the board is full or
// neither color can move. A full board can never have legal moves, but
// the full check stays as an explicit terminal condition.
func (b *Board) GameOver() bool {
	return b.Full() || (!b.HasValidMove(Black) && !b.HasValidMove(White))
}
