package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError is returned when a Move does not resolve against the board.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%s: illegal move", e.Move)
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

// Move is an unvalidated entry point: the side a piece is pushed from and its offset along that edge.
type Move struct {
	Side   Side
	Offset int
}

func NewMove(side Side, offset int) Move {
	return Move{Side: side, Offset: offset}
}

func (m Move) String() string {
	return fmt.Sprintf("%s %d", m.Side, m.Offset)
}

// succ returns the next entry point in enumeration order.
func (m Move) succ(b *Board) (Move, bool) {
	if m.Offset+1 < b.size {
		return NewMove(m.Side, m.Offset+1), true
	}
	side, ok := m.Side.Next()
	if !ok {
		return m, false
	}
	return NewMove(side, 0), true
}

// Origin is the edge cell the piece enters through.
func (m Move) Origin(b *Board) (int, int) {
	switch m.Side {
	case North:
		return 0, m.Offset
	case East:
		return m.Offset, b.size - 1
	case South:
		return b.size - 1, m.Offset
	case West:
		return m.Offset, 0
	default:
		panic("unknown side")
	}
}

// direction is the inward step for the side.
func (m Move) direction() (int, int) {
	switch m.Side {
	case North:
		return 1, 0
	case East:
		return 0, -1
	case South:
		return -1, 0
	case West:
		return 0, 1
	default:
		panic("unknown side")
	}
}

func (m Move) IsLegal(b *Board) bool {
	entry, ok := b.Get(m.Origin(b))
	return ok && entry.IsEmpty()
}

// Target is where the piece comes to rest: it slides inward from the origin through
// empty cells and stops before the first occupied cell or the far edge.
func (m Move) Target(b *Board) (int, int, bool) {
	if !m.IsLegal(b) {
		return 0, 0, false
	}
	row, col := m.Origin(b)
	drow, dcol := m.direction()
	for {
		next, ok := b.Get(row+drow, col+dcol)
		if !ok || !next.IsEmpty() {
			return row, col, true
		}
		row, col = row+drow, col+dcol
	}
}

// Annotated resolves m against b, proving its legality at this instant.
func (m Move) Annotated(b *Board) (LegalMove, bool) {
	row, col, ok := m.Target(b)
	if !ok {
		return LegalMove{}, false
	}
	return LegalMove{
		base:      m,
		row:       row,
		col:       col,
		isWinning: b.IsWinning(row, col),
	}, true
}

// LegalMove is a Move resolved against a specific board.
type LegalMove struct {
	base      Move
	row       int
	col       int
	isWinning bool
}

func (m LegalMove) Move() Move {
	return m.base
}

func (m LegalMove) Row() int {
	return m.row
}

func (m LegalMove) Col() int {
	return m.col
}

func (m LegalMove) IsWinning() bool {
	return m.isWinning
}

func (m LegalMove) String() string {
	return fmt.Sprintf("%s -> (%d, %d)", m.base, m.row, m.col)
}

// ParseSide accepts a side's initial or full name.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	default:
		return North, fmt.Errorf("invalid side %q", s)
	}
}
