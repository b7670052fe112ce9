package searcher

// Hyperparameters for MCTS

// Scores from the perspective of the player to move
const WIN = 1.0
const LOSS = 1 - WIN
const DRAW = (WIN + LOSS) / 2

// Jeffreys prior Beta(½,½) pseudo-counts added to every playout record
const PRIOR = 0.5
