package searcher

import (
	"fmt"

	"pushfour/experiments/metrics"
	"pushfour/game"

	"golang.org/x/exp/rand"
)

type kind int

const (
	unvisited kind = iota
	probabilistic
	certainWin
	certainLoss
	certainDraw
)

// certain records how many plies the result is forced in, and which child forces it.
type certain struct {
	depth int
	index int
}

func (c certain) parent(index int) certain {
	return certain{depth: c.depth + 1, index: index}
}

func (c certain) less(other certain) bool {
	if c.depth != other.depth {
		return c.depth < other.depth
	}
	return c.index < other.index
}

// stats is the playout record of a position: score is the sum of outcomes for the player
// to move, plus the prior. children follow the board's legal move order.
type stats struct {
	score    float64
	nplay    float64
	children []node
}

func newStats(nchildren int, sample float64) *stats {
	return &stats{
		score:    PRIOR + sample,
		nplay:    PRIOR + PRIOR + 1,
		children: make([]node, nchildren),
	}
}

// node is a position in the search tree. Its value and verdict are from the point of
// view of the player to move there. The zero value is an unvisited node.
type node struct {
	kind    kind
	certain certain
	stats   *stats
}

func newCertain(k kind, depth, index int) node {
	return node{kind: k, certain: certain{depth: depth, index: index}}
}

func (n *node) isCertain() bool {
	return n.kind == certainWin || n.kind == certainLoss || n.kind == certainDraw
}

func (n *node) verdict() (Verdict, int) {
	switch n.kind {
	case certainWin:
		return CertainWin, n.certain.depth
	case certainLoss:
		return CertainLoss, n.certain.depth
	case certainDraw:
		return CertainDraw, n.certain.depth
	default:
		return Uncertain, 0
	}
}

func (n *node) value() float64 {
	switch n.kind {
	case certainWin:
		return WIN
	case certainLoss:
		return LOSS
	case certainDraw:
		return DRAW
	case probabilistic:
		return n.stats.score / n.stats.nplay
	default:
		panic("node is unvisited")
	}
}

// explorer carries the private random stream of one search call.
type explorer struct {
	rng     *rand.Rand
	policy  thompson
	metrics metrics.Collector
}

func newExplorer(src rand.Source, collector metrics.Collector) *explorer {
	return &explorer{
		rng:     rand.New(src),
		policy:  newThompson(src),
		metrics: collector,
	}
}

// explore runs one simulation through n and returns its score for the player to move.
// It takes ownership of b. A node may replace itself with a new kind along the way.
func (n *node) explore(e *explorer, b *game.Board) float64 {
	switch n.kind {
	case unvisited:
		return n.exploreUnvisited(e, b)
	case probabilistic:
		return n.exploreProbabilistic(e, b)
	default:
		return n.value()
	}
}

func (n *node) exploreUnvisited(e *explorer, b *game.Board) float64 {
	nchildren, index, move := chooseFirst(b, e.rng)

	switch b.MakeLegalMove(move) {
	case game.Won:
		*n = newCertain(certainWin, 1, index)
		return WIN
	case game.Drawn:
		// Only the last open edge cell can be filled, and every legal move lands on it
		*n = newCertain(certainDraw, 1, index)
		return DRAW
	}

	sample := rollout(b, e.rng)
	e.metrics.AddFullPlayout()
	*n = node{kind: probabilistic, stats: newStats(nchildren, sample)}
	return sample
}

func (n *node) exploreProbabilistic(e *explorer, b *game.Board) float64 {
	p := n.stats
	if folded, ok := p.fold(); ok {
		*n = folded
		return n.value()
	}
	if len(p.children) != b.NLegal() {
		panic(fmt.Sprintf("node has %d children but board has %d legal moves", len(p.children), b.NLegal()))
	}

	// With no child left open the node has already folded
	index := p.pick(e.policy.estimate)
	child := &p.children[index]
	if child.isCertain() {
		panic(fmt.Sprintf("selected settled child %d", index))
	}

	m, ok := b.NthLegalMove(index)
	if !ok {
		panic(fmt.Sprintf("board has no legal move %d", index))
	}
	// No move here ends the game: the first visit would have found it
	b.MakeLegalMove(m)
	childScore := child.explore(e, b)

	score := WIN - childScore
	p.score += score
	p.nplay++

	if folded, ok := p.fold(); ok {
		*n = folded
		return n.value()
	}
	return score
}

// fold replaces a probabilistic node by an exact verdict once its children prove one.
func (p *stats) fold() (node, bool) {
	var loss, win, draw *certain
	nwin, ndraw := 0, 0
	for i := range p.children {
		child := &p.children[i]
		switch child.kind {
		case certainLoss:
			c := child.certain.parent(i)
			if loss == nil || c.less(*loss) {
				loss = &c
			}
		case certainWin:
			nwin++
			c := child.certain.parent(i)
			if win == nil || win.less(c) {
				win = &c
			}
		case certainDraw:
			ndraw++
			c := child.certain.parent(i)
			if draw == nil || draw.less(c) {
				draw = &c
			}
		}
	}

	n := len(p.children)
	if loss != nil {
		return newCertain(certainWin, loss.depth, loss.index), true
	}
	if win != nil && nwin == n {
		return newCertain(certainLoss, win.depth, win.index), true
	}
	if draw != nil && nwin+ndraw == n {
		return newCertain(certainDraw, draw.depth, draw.index), true
	}
	return node{}, false
}

// rank scores a child from the parent's point of view.
func (n *node) rank(estimate estimator) rank {
	switch n.kind {
	case certainLoss:
		return rank{class: classWinning, value: WIN, tiebreak: -n.certain.depth}
	case certainWin:
		return rank{class: classLosing, value: LOSS, tiebreak: n.certain.depth}
	case certainDraw:
		// Settled: only taken once nothing is left to simulate
		return rank{class: classDrawn, value: DRAW}
	case probabilistic:
		// The child's record counts wins for the opponent
		return rank{class: classOpen, value: estimate(n.stats.nplay-n.stats.score, n.stats.score)}
	default:
		return rank{class: classOpen, value: estimate(PRIOR, PRIOR)}
	}
}

// finalRank ranks a child for the move actually played: a proven draw is weighed
// against the posterior means of unresolved children.
func (n *node) finalRank() rank {
	if n.kind == certainDraw {
		return rank{class: classOpen, value: DRAW}
	}
	return n.rank(posteriorMean)
}

// pick returns the index of the child to descend into.
func (p *stats) pick(estimate estimator) int {
	return p.argmax(func(n *node) rank { return n.rank(estimate) })
}

// best returns the index of the child to play.
func (p *stats) best() int {
	return p.argmax((*node).finalRank)
}

func (p *stats) argmax(rankOf func(n *node) rank) int {
	if len(p.children) == 0 {
		panic("node has no children")
	}

	best := 0
	bestRank := rankOf(&p.children[0])
	for i := 1; i < len(p.children); i++ {
		if r := rankOf(&p.children[i]); r.greater(bestRank) {
			best = i
			bestRank = r
		}
	}
	return best
}

// bestMove returns the move with the greatest expected value for the player to move.
func (n *node) bestMove(b *game.Board) game.LegalMove {
	var index int
	switch n.kind {
	case unvisited:
		panic("node is unvisited")
	case probabilistic:
		index = n.stats.best()
	default:
		index = n.certain.index
	}

	m, ok := b.NthLegalMove(index)
	if !ok {
		panic(fmt.Sprintf("board has no legal move %d", index))
	}
	return m
}
