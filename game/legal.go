package game

import "iter"

// LegalMovesIter lazily enumerates resolvable moves: North, East, South, West, each by
// increasing offset. Search trees index their children by this order.
type LegalMovesIter struct {
	board *Board
	base  Move
	done  bool
}

func (b *Board) LegalMoves() *LegalMovesIter {
	return &LegalMovesIter{board: b, base: NewMove(North, 0)}
}

// Next returns the next legal move, or false once every entry point has been tried.
func (it *LegalMovesIter) Next() (LegalMove, bool) {
	for !it.done {
		base := it.base
		next, ok := base.succ(it.board)
		it.base = next
		it.done = !ok
		if m, ok := base.Annotated(it.board); ok {
			return m, true
		}
	}
	return LegalMove{}, false
}

// All yields every legal move with its index in enumeration order.
func (b *Board) All() iter.Seq2[int, LegalMove] {
	return func(yield func(int, LegalMove) bool) {
		it := b.LegalMoves()
		for i := 0; ; i++ {
			m, ok := it.Next()
			if !ok || !yield(i, m) {
				return
			}
		}
	}
}

// NthLegalMove returns the i-th legal move in enumeration order.
func (b *Board) NthLegalMove(i int) (LegalMove, bool) {
	for j, m := range b.All() {
		if j == i {
			return m, true
		}
	}
	return LegalMove{}, false
}
