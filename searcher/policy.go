package searcher

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// rank orders children from the parent's point of view. Higher classes always win;
// within a class the value decides, then the tiebreak.
type rank struct {
	class    int
	value    float64
	tiebreak int
}

const (
	classLosing  = iota // proven win for the opponent
	classDrawn          // proven draw
	classOpen           // unresolved
	classWinning        // proven loss for the opponent
)

func (r rank) greater(other rank) bool {
	if r.class != other.class {
		return r.class > other.class
	}
	if r.value != other.value {
		return r.value > other.value
	}
	return r.tiebreak > other.tiebreak
}

// estimator turns the parent's Beta(alpha, beta) belief over a child into a comparable value.
type estimator func(alpha, beta float64) float64

// thompson draws one sample from the posterior.
type thompson struct {
	src rand.Source
}

func newThompson(src rand.Source) thompson {
	return thompson{src: src}
}

func (t thompson) estimate(alpha, beta float64) float64 {
	if alpha <= 0 || beta <= 0 {
		panic("beta parameters must be positive")
	}
	v := distuv.Beta{Alpha: alpha, Beta: beta, Src: t.src}.Rand()
	if math.IsNaN(v) { // both gamma draws underflowed
		return alpha / (alpha + beta)
	}
	return v
}

// posteriorMean is used once the search is over.
func posteriorMean(alpha, beta float64) float64 {
	return alpha / (alpha + beta)
}
