package searcher

import (
	"time"

	"pushfour/experiments/metrics"
	"pushfour/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

// Result is the outcome of one search call.
type Result struct {
	Move     game.LegalMove
	Verdict  Verdict
	Depth    int // plies the verdict is forced in
	Episodes int
	Metric   metrics.SearchMetric
}

type MCTS struct {
	duration time.Duration
	episodes int
	seed     uint64
	seeded   bool
	calls    uint64
	metrics  metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithSeed makes searches reproducible. Each call still draws from its own stream.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
		m.seeded = true
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	if m.episodes > 0 && m.duration > 0 {
		panic("Must specify either search episodes or duration, not both")
	}
	return m
}

// Search grows a fresh tree for the player to move on board and returns the best move.
// It stops early once the root's result is proven.
func (m *MCTS) Search(board *game.Board) Result {
	if board.Outcome() != game.Ongoing {
		panic("cannot search a finished game")
	}

	e := newExplorer(m.source(), m.metrics)
	root := node{}

	m.metrics.Start()
	var episodes int
	if m.episodes > 0 {
		episodes = m.iterate(e, &root, board)
	} else {
		episodes = m.countdown(e, &root, board)
	}
	metric := m.metrics.Complete()

	verdict, depth := root.verdict()
	metric.Verdict = verdict.String()
	metric.Depth = depth
	log.Debug().Msgf("searched %d episodes: %s", episodes, verdict)

	return Result{
		Move:     root.bestMove(board),
		Verdict:  verdict,
		Depth:    depth,
		Episodes: episodes,
		Metric:   metric,
	}
}

func (m *MCTS) source() rand.Source {
	m.calls++
	if m.seeded {
		return rand.NewSource(m.seed + m.calls)
	}
	return rand.NewSource(uint64(time.Now().UnixNano()))
}

func (m *MCTS) iterate(e *explorer, root *node, board *game.Board) int {
	i := 0
	for i < m.episodes && !root.isCertain() {
		root.explore(e, board.Clone())
		m.metrics.AddEpisode()
		i++
	}
	return i
}

// countdown runs whole episodes until the deadline passes; at least one always runs.
func (m *MCTS) countdown(e *explorer, root *node, board *game.Board) int {
	deadline := time.Now().Add(m.duration)
	i := 0
	for !root.isCertain() && (i == 0 || time.Now().Before(deadline)) {
		root.explore(e, board.Clone())
		m.metrics.AddEpisode()
		i++
	}
	return i
}
