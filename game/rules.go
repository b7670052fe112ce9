package game

// Length of a winning line.
const lineLength = 4

// IsWinning reports whether the active player would complete a line by landing on (row, col).
// The queried cell counts as the active player's regardless of what it holds, so the
// check can run before the piece is placed.
func (b *Board) IsWinning(row, col int) bool {
	return b.isWinningHoriz(row, col) ||
		b.isWinningVert(row, col) ||
		b.isWinningDiagNWSE(row, col) ||
		b.isWinningDiagSWNE(row, col)
}

func (b *Board) isWinningHoriz(row, col int) bool {
	return b.scan(row, col, row, 0, 0, 1)
}

func (b *Board) isWinningVert(row, col int) bool {
	return b.scan(row, col, 0, col, 1, 0)
}

func (b *Board) isWinningDiagNWSE(row, col int) bool {
	d := min(row, col)
	return b.scan(row, col, row-d, col-d, 1, 1)
}

func (b *Board) isWinningDiagSWNE(row, col int) bool {
	d := min(b.size-row-1, col)
	return b.scan(row, col, row+d, col-d, -1, 1)
}

// scan walks from (row0, col0) in direction (drow, dcol) until it leaves the board,
// counting consecutive matches.
func (b *Board) scan(row, col, row0, col0, drow, dcol int) bool {
	n := 0
	for r, c := row0, col0; b.inBounds(r, c); r, c = r+drow, c+dcol {
		isThis := r == row && c == col
		if isThis || b.at(r, c) == b.active {
			n++
			if n >= lineLength {
				return true
			}
		} else {
			n = 0
		}
	}
	return false
}
