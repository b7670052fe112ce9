// meta/meta.go
package meta

import "time"

// SIZE defines the default board size.
const SIZE = 7

// BLOCKS defines the default number of blocks on a generated board.
const BLOCKS = 3

// EPISODES defines the default number of episodes for MCTS.
const EPISODES = 0

// DURATION defines the default search time per move.
const DURATION = 2 * time.Second

// GAMES defines the number of games per pairing in arena mode.
const GAMES = 10

// RESULTS_DIR is where arena mode stores its records.
const RESULTS_DIR = "experiments"
