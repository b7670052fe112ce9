package searcher

import (
	"fmt"

	"pushfour/game"
)

// Verdict is the proven result of a position for the player to move there.
type Verdict int

const (
	Uncertain Verdict = iota
	CertainWin
	CertainLoss
	CertainDraw
)

func (v Verdict) String() string {
	switch v {
	case Uncertain:
		return "uncertain"
	case CertainWin:
		return "certain win"
	case CertainLoss:
		return "certain loss"
	case CertainDraw:
		return "certain draw"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Searcher picks a move for the player to move on a board.
type Searcher interface {
	Search(board *game.Board) Result
}
