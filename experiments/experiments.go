package experiments

import (
	"errors"
	"fmt"
	"time"

	"pushfour/agent"
	"pushfour/engine"
	"pushfour/experiments/metrics"
	"pushfour/game"
	"pushfour/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Board describes the boards every game of an experiment is played on.
type Board struct {
	Size   int
	Blocks int
}

// RunMatch pairs every config against every other and plays games per pairing on fresh
// generated boards, alternating which agent starts. It returns the directory of the records.
func RunMatch(name, baseDir string, configs []metrics.AgentConfig, games int, board Board) (string, error) {
	if len(configs) < 2 {
		return "", errors.New("need at least two agent configs")
	}
	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return runExperiment(name, baseDir, configs, matchUps, games, board)
}

func runExperiment(name, baseDir string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, games int, board Board) (string, error) {
	for _, config := range configs {
		if _, err := createAgent(config); err != nil {
			return "", err
		}
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < games; i++ {
			// Alternate the starting agent
			config1, config2 := matchup[0], matchup[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}

			winner, gameMetric, moveMetrics, err := runGame(config1, config2, board)
			if err != nil {
				return "", fmt.Errorf("failed to run matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				Index:      count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(matchUps), i+1, games, winnerName(winner))
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(baseDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays config1 as Player1 against config2 as Player2.
func runGame(config1, config2 metrics.AgentConfig, board Board) (game.Entry, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := createAgent(config1)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	agent2, err := createAgent(config2)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}

	b := game.GenerateBoard(board.Size, board.Blocks, newSource())
	e := engine.NewLocalEngine(b, [2]agent.Agent{agent1, agent2})
	return e.Run()
}

func createAgent(config metrics.AgentConfig) (agent.Agent, error) {
	switch config.Kind {
	case metrics.KindRandom:
		return agent.NewRandomAgent(newSource()), nil
	case metrics.KindMCTS:
		if (config.Episodes > 0) == (config.Duration > 0) {
			return nil, fmt.Errorf("agent %d must set exactly one of episodes or duration", config.ID)
		}
		return agent.NewSearchAgent(CreateMCTS(config)), nil
	default:
		return nil, fmt.Errorf("agent %d has unknown kind %q", config.ID, config.Kind)
	}
}

func CreateMCTS(config metrics.AgentConfig) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}

func newSource() rand.Source {
	return rand.NewSource(uint64(time.Now().UnixNano()))
}

func winnerName(winner game.Entry) string {
	if winner == game.Empty {
		return "draw"
	}
	return winner.Name()
}
