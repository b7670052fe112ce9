package agent

import (
	"pushfour/game"
	"pushfour/searcher"

	"golang.org/x/exp/rand"
)

// RandomAgent plays the playout policy: a winning move when there is one, otherwise any.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(src rand.Source) *RandomAgent {
	return &RandomAgent{rng: rand.New(src)}
}

func (a *RandomAgent) Choose(board *game.Board) (game.LegalMove, error) {
	return searcher.ChooseWinningOrRandom(board, a.rng), nil
}
