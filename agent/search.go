package agent

import (
	"pushfour/experiments/metrics"
	"pushfour/game"
	"pushfour/searcher"

	"github.com/rs/zerolog/log"
)

type SearchAgent struct {
	searcher searcher.Searcher
	last     metrics.SearchMetric
}

func NewSearchAgent(s searcher.Searcher) *SearchAgent {
	return &SearchAgent{searcher: s}
}

func (a *SearchAgent) Choose(board *game.Board) (game.LegalMove, error) {
	result := a.searcher.Search(board)
	a.last = result.Metric

	switch result.Verdict {
	case searcher.CertainWin, searcher.CertainLoss, searcher.CertainDraw:
		log.Info().Msgf("%s: %s in %d move(s)", board.Active().Name(), result.Verdict, result.Depth)
	}
	return result.Move, nil
}

func (a *SearchAgent) LastMetric() metrics.SearchMetric {
	return a.last
}
