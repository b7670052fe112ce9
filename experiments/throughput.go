package experiments

import (
	"fmt"
	"time"

	"pushfour/experiments/metrics"
)

// RunThroughput plays each duration-budgeted search agent against itself on every board
// size, so that episodes per move can be compared across sizes.
func RunThroughput(baseDir string, durations []time.Duration, sizes []int, games int) ([]string, error) {
	configs := []metrics.AgentConfig{}
	for i, duration := range durations {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Kind: metrics.KindMCTS, Duration: duration})
	}

	// Same config for both players in each game
	// for the same playing strength and similar game length
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	dirs := []string{}
	for _, size := range sizes {
		dir, err := runExperiment(fmt.Sprintf("throughput_%d", size), baseDir, configs, matchUps, games, Board{Size: size})
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}
