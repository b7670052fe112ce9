package searcher

import (
	"pushfour/game"

	"golang.org/x/exp/rand"
)

// ChooseWinningOrRandom returns an immediately winning move if there is one, otherwise a
// uniformly random legal move. This is the playout policy.
func ChooseWinningOrRandom(b *game.Board, rng *rand.Rand) game.LegalMove {
	_, _, m := chooseFirst(b, rng)
	return m
}

// chooseFirst samples a legal move in a single reservoir pass, stopping early on a
// winning move. It also returns the number of moves seen and the index of the chosen move.
func chooseFirst(b *game.Board, rng *rand.Rand) (n int, index int, move game.LegalMove) {
	for i, m := range b.All() {
		n++
		if m.IsWinning() {
			return n, i, m
		}
		if rng.Intn(n) == 0 {
			index, move = i, m
		}
	}
	if n == 0 {
		panic("no legal moves on an ongoing board")
	}
	return n, index, move
}

// rollout plays b to the end and scores the result for the player who made the last move
// before b was handed over.
func rollout(b *game.Board, rng *rand.Rand) float64 {
	score := LOSS // the opponent moves first
	for {
		m := ChooseWinningOrRandom(b, rng)
		switch b.MakeLegalMove(m) {
		case game.Won:
			return score
		case game.Drawn:
			return DRAW
		}
		score = WIN - score
	}
}
