package game

// Entry is the content of a single board cell.
type Entry int

const (
	Empty Entry = iota
	Block
	Player1
	Player2
)

func (e Entry) IsEmpty() bool {
	return e == Empty
}

// Flip swaps the two players, and Empty with Block.
func (e Entry) Flip() Entry {
	switch e {
	case Empty:
		return Block
	case Block:
		return Empty
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		panic("unknown entry")
	}
}

// String renders the entry as a two column glyph.
func (e Entry) String() string {
	switch e {
	case Empty:
		return "  "
	case Block:
		return "█▋"
	case Player1:
		return "●1"
	case Player2:
		return "○2"
	default:
		return "??"
	}
}

// Name is used in logs and records.
func (e Entry) Name() string {
	switch e {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	case Block:
		return "block"
	default:
		return ""
	}
}

// Side is the board edge a piece is pushed in from.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// Next returns the side that follows s in enumeration order.
func (s Side) Next() (Side, bool) {
	if s >= West {
		return s, false
	}
	return s + 1, true
}

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Outcome is the state of a game. It only ever moves from Ongoing to Won or Drawn.
type Outcome int

const (
	Ongoing Outcome = iota
	Drawn
	Won
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Drawn:
		return "drawn"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}
