package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// Board is a square grid where pieces are pushed in from the edges.
// nlegal always equals the number of (side, offset) entry points whose edge cell is Empty.
type Board struct {
	size    int
	active  Entry
	nlegal  int
	outcome Outcome
	cells   []Entry
}

func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	return &Board{
		size:    size,
		active:  Player1,
		nlegal:  4 * size,
		outcome: Ongoing,
		cells:   make([]Entry, size*size),
	}
}

// GenerateBoard returns a new board with filled blocks at distinct cells sampled uniformly from src.
func GenerateBoard(size int, filled int, src rand.Source) *Board {
	b := NewBoard(size)
	n := len(b.cells)
	if filled < 0 || filled > n {
		panic(fmt.Sprintf("cannot place %d blocks on %d cells", filled, n))
	}

	// Partial Fisher-Yates: the first filled indices are a uniform sample without replacement
	rng := rand.New(src)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < filled; i++ {
		j := i + rng.Intn(n-i)
		indices[i], indices[j] = indices[j], indices[i]
		row, col := b.posFor(indices[i])
		b.Set(row, col, Block)
	}
	return b
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Active() Entry {
	return b.active
}

// NLegal is the number of entry points currently open.
func (b *Board) NLegal() int {
	return b.nlegal
}

func (b *Board) Outcome() Outcome {
	return b.outcome
}

// Clone returns a deep copy. Search descends on copies so that dropping a line needs no undo.
func (b *Board) Clone() *Board {
	cells := make([]Entry, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:    b.size,
		active:  b.active,
		nlegal:  b.nlegal,
		outcome: b.outcome,
		cells:   cells,
	}
}

func (b *Board) posFor(index int) (int, int) {
	return index / b.size, index % b.size
}

func (b *Board) indexFor(row, col int) int {
	return row*b.size + col
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// Get returns the entry at (row, col), or false when the cell is off the board.
func (b *Board) Get(row, col int) (Entry, bool) {
	if !b.inBounds(row, col) {
		return Empty, false
	}
	return b.cells[b.indexFor(row, col)], true
}

func (b *Board) at(row, col int) Entry {
	return b.cells[b.indexFor(row, col)]
}

// Set writes entry at (row, col). Filling an edge cell closes one entry point per edge it lies on.
func (b *Board) Set(row, col int, entry Entry) {
	if !b.inBounds(row, col) {
		panic(fmt.Sprintf("cell (%d, %d) is off a board of size %d", row, col, b.size))
	}
	i := b.indexFor(row, col)
	if b.cells[i].IsEmpty() && !entry.IsEmpty() {
		// On a 1x1 board the single cell is the origin of all four sides
		for _, onEdge := range [4]bool{row == 0, row == b.size-1, col == 0, col == b.size-1} {
			if onEdge {
				b.nlegal--
			}
		}
	}
	b.cells[i] = entry
}

// MakeMove resolves m and plays it. An unresolvable move leaves the board untouched.
func (b *Board) MakeMove(m Move) (Outcome, error) {
	lm, ok := m.Annotated(b)
	if !ok {
		return b.outcome, &IllegalMoveError{Move: m}
	}
	return b.MakeLegalMove(lm), nil
}

// MakeLegalMove places the active entry on the landing cell of m and advances the game.
func (b *Board) MakeLegalMove(m LegalMove) Outcome {
	if b.outcome != Ongoing {
		panic("cannot move on a finished game")
	}
	active := b.active
	b.Set(m.row, m.col, active)
	switch {
	case m.isWinning:
		b.outcome = Won
	case b.nlegal == 0:
		b.outcome = Drawn
	default:
		b.active = active.Flip()
	}
	return b.outcome
}

// Pass hands the turn to the other player without placing a piece.
func (b *Board) Pass() {
	if b.outcome != Ongoing {
		panic("cannot pass on a finished game")
	}
	b.active = b.active.Flip()
}

// Winner is the player who completed a line, or Empty while the game is not won.
func (b *Board) Winner() Entry {
	if b.outcome != Won {
		return Empty
	}
	return b.active
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for i := 0; i < b.size; i++ {
		fmt.Fprintf(&sb, "%2d", i)
	}
	sb.WriteString("\n")
	for row := 0; row < b.size; row++ {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 0; col < b.size; col++ {
			sb.WriteString(b.at(row, col).String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
