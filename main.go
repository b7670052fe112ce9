package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pushfour/agent"
	"pushfour/engine"
	"pushfour/experiments"
	"pushfour/experiments/metrics"
	"pushfour/game"
	"pushfour/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	mode := flag.String("mode", "play", "play: one game on the terminal; arena: many games recorded to csv")
	size := flag.Int("size", meta.SIZE, "Board size")
	blocks := flag.Int("blocks", meta.BLOCKS, "Number of blocks on the generated board")
	player1 := flag.String("player1", "human", "Player1 kind: human, mcts or random")
	player2 := flag.String("player2", "mcts", "Player2 kind: human, mcts or random")
	episodes := flag.Int("episodes", meta.EPISODES, "Search episodes per move; overrides duration")
	duration := flag.Duration("duration", meta.DURATION, "Search time per move")
	seed := flag.Uint64("seed", 0, "Seed for board generation and random agents, 0 for the clock")
	games := flag.Int("games", meta.GAMES, "Games per pairing in arena mode")
	results := flag.String("results", meta.RESULTS_DIR, "Directory for arena records")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *episodes > 0 {
		*duration = 0
	}

	switch *mode {
	case "play":
		err := play(*size, *blocks, [2]string{*player1, *player2}, *episodes, *duration, *seed)
		if err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
	case "arena":
		configs := []metrics.AgentConfig{
			{ID: 1, Kind: *player1, Episodes: *episodes, Duration: *duration},
			{ID: 2, Kind: *player2, Episodes: *episodes, Duration: *duration},
		}
		dir, err := experiments.RunMatch("arena", *results, configs, *games, experiments.Board{Size: *size, Blocks: *blocks})
		if err != nil {
			log.Fatal().Err(err).Msg("arena aborted")
		}
		log.Info().Msgf("records written to %s", dir)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func play(size, blocks int, kinds [2]string, episodes int, duration time.Duration, seed uint64) error {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	board := game.GenerateBoard(size, blocks, rand.NewSource(seed))

	var agents [2]agent.Agent
	for i, kind := range kinds {
		a, err := newAgent(kind, episodes, duration, seed+uint64(i)+1)
		if err != nil {
			return err
		}
		agents[i] = a
	}

	e := engine.NewLocalEngine(board, agents, engine.WithPresenter(os.Stdout))
	_, _, _, err := e.Run()
	return err
}

func newAgent(kind string, episodes int, duration time.Duration, seed uint64) (agent.Agent, error) {
	switch kind {
	case "human":
		return agent.NewHumanAgent(os.Stdin, os.Stdout), nil
	case metrics.KindRandom:
		return agent.NewRandomAgent(rand.NewSource(seed)), nil
	case metrics.KindMCTS:
		mcts := experiments.CreateMCTS(metrics.AgentConfig{Kind: kind, Episodes: episodes, Duration: duration})
		return agent.NewSearchAgent(mcts), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}
