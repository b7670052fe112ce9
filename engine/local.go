package engine

import (
	"fmt"
	"io"
	"time"

	"pushfour/agent"
	"pushfour/experiments/metrics"
	"pushfour/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// WithPresenter renders the board to w before the first move and after every move.
func WithPresenter(w io.Writer) Option {
	return func(e *LocalEngine) {
		e.presenter = w
	}
}

type LocalEngine struct {
	board     *game.Board
	agents    [2]agent.Agent // Player1, Player2
	presenter io.Writer
}

func NewLocalEngine(board *game.Board, agents [2]agent.Agent, options ...Option) *LocalEngine {
	for _, a := range agents {
		if a == nil {
			panic("need an agent for each player")
		}
	}
	e := &LocalEngine{
		board:  board,
		agents: agents,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) agentFor(player game.Entry) agent.Agent {
	if player == game.Player1 {
		return e.agents[0]
	}
	return e.agents[1]
}

// Run executes the entire game loop until the game is won or no entry point is left.
func (e *LocalEngine) Run() (game.Entry, metrics.GameMetric, []metrics.MoveMetric, error) {
	id := uuid.New().String()
	logger := log.With().Str("game", id).Logger()

	gameMetric := metrics.GameMetric{
		ID:             id,
		Size:           e.board.Size(),
		Blocks:         countBlocks(e.board),
		StartingPlayer: e.board.Active().Name(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	logger.Info().Msgf("%s is starting", e.board.Active().Name())
	e.present("")

	// A generated board may have no open entry point at all
	for step := 1; e.board.Outcome() == game.Ongoing && e.board.NLegal() > 0; step++ {
		player := e.board.Active()
		a := e.agentFor(player)

		m, err := a.Choose(e.board.Clone())
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s failed to choose a move: %w", player.Name(), err)
		}
		if _, err := e.board.MakeMove(m.Move()); err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%s chose an unplayable move: %w", player.Name(), err)
		}

		moveMetric := metrics.MoveMetric{
			Step:   step,
			Player: player.Name(),
			Move:   m.Move().String(),
		}
		if r, ok := a.(agent.Reporter); ok {
			moveMetric.SearchMetric = r.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		logger.Debug().Msgf("step %d: %s plays %s", step, player.Name(), m.Move())
		e.present(fmt.Sprintf("%s plays %s", player.Name(), m.Move()))
	}

	winner := e.board.Winner()
	gameMetric.Winner = winner.Name()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner == game.Empty {
		logger.Info().Msgf("game drawn after %d moves", len(moveMetrics))
		e.present("draw")
	} else {
		logger.Info().Msgf("%s won after %d moves", winner.Name(), len(moveMetrics))
		e.present(fmt.Sprintf("%s wins", winner.Name()))
	}

	return winner, gameMetric, moveMetrics, nil
}

func (e *LocalEngine) present(caption string) {
	if e.presenter == nil {
		return
	}
	if caption != "" {
		fmt.Fprintln(e.presenter, caption)
	}
	fmt.Fprint(e.presenter, e.board)
}

func countBlocks(b *game.Board) int {
	n := 0
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			if entry, _ := b.Get(row, col); entry == game.Block {
				n++
			}
		}
	}
	return n
}
