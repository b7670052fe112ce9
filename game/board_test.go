package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEntry(t *testing.T) {
	t.Run("flipping entries", func(t *testing.T) {
		require.Equal(t, Block, Empty.Flip())
		require.Equal(t, Empty, Block.Flip())
		require.Equal(t, Player2, Player1.Flip())
		require.Equal(t, Player1, Player2.Flip())
	})

	t.Run("checking emptiness", func(t *testing.T) {
		require.True(t, Empty.IsEmpty())
		require.False(t, Block.IsEmpty())
		require.False(t, Player1.IsEmpty())
		require.False(t, Player2.IsEmpty())
	})
}

func TestSideNext(t *testing.T) {
	next, ok := North.Next()
	require.True(t, ok)
	require.Equal(t, East, next)
	next, ok = East.Next()
	require.True(t, ok)
	require.Equal(t, South, next)
	next, ok = South.Next()
	require.True(t, ok)
	require.Equal(t, West, next)
	_, ok = West.Next()
	require.False(t, ok, "West should be the last side")
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(10)

	require.Equal(t, 10, b.Size())
	require.Equal(t, Player1, b.Active(), "Player1 should move first")
	require.Equal(t, 40, b.NLegal(), "Every entry point should be open")
	require.Equal(t, Ongoing, b.Outcome())
	require.Panics(t, func() { NewBoard(0) }, "Should panic on an empty board")
}

func TestGenerateBoard(t *testing.T) {
	t.Run("placing distinct blocks", func(t *testing.T) {
		b := GenerateBoard(8, 20, rand.NewSource(7))

		blocks := 0
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				if e, _ := b.Get(row, col); e == Block {
					blocks++
				}
			}
		}
		require.Equal(t, 20, blocks, "Should place exactly the requested blocks")
		require.Equal(t, countLegal(b), b.NLegal(), "Block placement should keep nlegal in sync")
	})

	t.Run("filling every cell", func(t *testing.T) {
		b := GenerateBoard(3, 9, rand.NewSource(1))

		require.Equal(t, 0, b.NLegal())
		require.Equal(t, 0, countLegal(b))
	})

	t.Run("panics with too many blocks", func(t *testing.T) {
		require.Panics(t, func() { GenerateBoard(2, 5, rand.NewSource(1)) })
	})
}

func TestBoardSetThenGet(t *testing.T) {
	b := NewBoard(10)
	b.Set(5, 7, Player1)

	e, ok := b.Get(5, 6)
	require.True(t, ok)
	require.Equal(t, Empty, e)
	e, _ = b.Get(6, 8)
	require.Equal(t, Empty, e)
	e, _ = b.Get(5, 7)
	require.Equal(t, Player1, e)

	b.Set(5, 7, Block)
	e, _ = b.Get(5, 7)
	require.Equal(t, Block, e)

	_, ok = b.Get(10, 0)
	require.False(t, ok, "Off-board reads should report false")
	_, ok = b.Get(0, -1)
	require.False(t, ok, "Off-board reads should report false")
	require.Panics(t, func() { b.Set(-1, 0, Block) }, "Off-board writes should panic")
}

func TestBoardSetNLegal(t *testing.T) {
	b := NewBoard(5)

	b.Set(2, 2, Block)
	require.Equal(t, 20, b.NLegal(), "Interior cells should not close entry points")
	b.Set(0, 2, Block)
	require.Equal(t, 19, b.NLegal(), "Edge cells should close one entry point")
	b.Set(4, 4, Block)
	require.Equal(t, 17, b.NLegal(), "Corner cells should close two entry points")
	b.Set(4, 4, Player1)
	require.Equal(t, 17, b.NLegal(), "Overwriting a filled cell should not change nlegal")
}

func TestBoardWinning(t *testing.T) {
	// Each case plays the moves for Player1, passing between them
	cases := []struct {
		name   string
		blocks [][2]int
		moves  []Move
	}{
		{
			name:  "vertical",
			moves: []Move{NewMove(North, 4), NewMove(North, 4), NewMove(North, 4), NewMove(North, 4)},
		},
		{
			name:  "horizontal",
			moves: []Move{NewMove(East, 4), NewMove(East, 4), NewMove(East, 4), NewMove(East, 4)},
		},
		{
			name:   "diagonal nw-se",
			blocks: [][2]int{{4, 4}, {5, 5}, {6, 6}, {7, 7}},
			moves:  []Move{NewMove(North, 4), NewMove(North, 5), NewMove(North, 6), NewMove(North, 7)},
		},
		{
			name:   "diagonal sw-ne",
			blocks: [][2]int{{4, 7}, {5, 6}, {6, 5}, {7, 4}},
			moves:  []Move{NewMove(North, 4), NewMove(North, 5), NewMove(North, 6), NewMove(North, 7)},
		},
		{
			name:   "diagonal sw-ne at west edge",
			blocks: [][2]int{{4, 0}, {3, 1}, {2, 2}, {1, 3}},
			moves:  []Move{NewMove(North, 0), NewMove(North, 1), NewMove(North, 2), NewMove(North, 3)},
		},
		{
			name:   "diagonal sw-ne at east edge",
			blocks: [][2]int{{4, 6}, {3, 7}, {2, 8}, {1, 9}},
			moves:  []Move{NewMove(North, 6), NewMove(North, 7), NewMove(North, 8), NewMove(North, 9)},
		},
		{
			name:   "diagonal sw-ne completed in the middle",
			blocks: [][2]int{{8, 6}, {7, 7}, {6, 8}, {5, 9}},
			moves:  []Move{NewMove(South, 6), NewMove(South, 7), NewMove(South, 9), NewMove(South, 8)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(10)
			for _, cell := range tc.blocks {
				b.Set(cell[0], cell[1], Block)
			}
			last := len(tc.moves) - 1
			for _, m := range tc.moves[:last] {
				got, err := b.MakeMove(m)
				require.NoError(t, err)
				require.Equal(t, Ongoing, got)
				b.Pass()
			}

			got, err := b.MakeMove(tc.moves[last])

			require.NoError(t, err)
			require.Equal(t, Won, got, "Fourth piece should complete the line")
			require.Equal(t, Player1, b.Winner())
		})
	}
}

func TestBoardDraw(t *testing.T) {
	// The only cell of a 1x1 board is the origin of all four sides
	b := NewBoard(1)
	require.Equal(t, 4, b.NLegal())
	stale, ok := NewMove(North, 0).Annotated(b)
	require.True(t, ok)

	got, err := b.MakeMove(NewMove(West, 0))

	require.NoError(t, err)
	require.Equal(t, Drawn, got, "Filling the last edge cell should draw")
	require.Equal(t, 0, b.NLegal())
	require.Equal(t, Empty, b.Winner())
	require.Panics(t, func() { b.MakeLegalMove(stale) }, "Should panic when moving on a finished game")
	require.Panics(t, func() { b.Pass() }, "Should panic when passing on a finished game")
}

func TestBoardIllegalMove(t *testing.T) {
	t.Run("occupied origin", func(t *testing.T) {
		b := NewBoard(5)
		_, err := b.MakeMove(NewMove(West, 2))
		require.NoError(t, err)
		b.Set(0, 3, Block)
		before := b.Clone()

		got, err := b.MakeMove(NewMove(North, 3))

		require.ErrorIs(t, err, ErrIllegalMove)
		var illegal *IllegalMoveError
		require.ErrorAs(t, err, &illegal)
		require.Equal(t, NewMove(North, 3), illegal.Move)
		require.Equal(t, Ongoing, got)
		require.Equal(t, before, b, "Board should be unchanged")
	})

	t.Run("offset off the board", func(t *testing.T) {
		b := NewBoard(5)
		before := b.Clone()

		_, err := b.MakeMove(NewMove(South, 5))
		require.ErrorIs(t, err, ErrIllegalMove)
		_, err = b.MakeMove(NewMove(East, -1))
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, before, b, "Board should be unchanged")
	})
}

func TestLegalMovesIter(t *testing.T) {
	t.Run("counting against nlegal while filling corners", func(t *testing.T) {
		b := NewBoard(2)
		require.Equal(t, b.NLegal(), countLegal(b))
		b.Set(0, 0, Block)
		require.Equal(t, b.NLegal(), countLegal(b))
		b.Set(1, 1, Block)
		require.Equal(t, b.NLegal(), countLegal(b))
		b.Set(0, 1, Block)
		require.Equal(t, b.NLegal(), countLegal(b))
		b.Set(1, 0, Block)
		require.Equal(t, 0, b.NLegal())
		require.Equal(t, 0, countLegal(b))
	})

	t.Run("enumerating in side then offset order", func(t *testing.T) {
		b := NewBoard(2)
		b.Set(0, 0, Block)

		got := []Move{}
		for _, m := range b.All() {
			got = append(got, m.Move())
		}

		expected := []Move{
			NewMove(North, 1),
			NewMove(East, 0), NewMove(East, 1),
			NewMove(South, 0), NewMove(South, 1),
			NewMove(West, 1),
		}
		require.Equal(t, expected, got)
	})

	t.Run("indexing by enumeration order", func(t *testing.T) {
		b := NewBoard(3)

		m, ok := b.NthLegalMove(4)
		require.True(t, ok)
		require.Equal(t, NewMove(East, 1), m.Move())
		_, ok = b.NthLegalMove(12)
		require.False(t, ok)
	})

	t.Run("matching nlegal over random games", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for game := 0; game < 20; game++ {
			b := GenerateBoard(6, rng.Intn(10), rand.NewSource(uint64(game)))
			for b.Outcome() == Ongoing && b.NLegal() > 0 {
				require.Equal(t, b.NLegal(), countLegal(b))
				n := countLegal(b)
				m, ok := b.NthLegalMove(rng.Intn(n))
				require.True(t, ok)
				b.MakeLegalMove(m)
			}
			require.Equal(t, b.NLegal(), countLegal(b))
		}
	})
}

func TestMoveResolution(t *testing.T) {
	t.Run("sliding to the far edge", func(t *testing.T) {
		b := NewBoard(5)

		row, col, ok := NewMove(West, 2).Target(b)

		require.True(t, ok)
		require.Equal(t, 2, row)
		require.Equal(t, 4, col)
	})

	t.Run("stopping before an occupied cell", func(t *testing.T) {
		b := NewBoard(5)
		b.Set(3, 1, Block)

		row, col, ok := NewMove(North, 1).Target(b)
		require.True(t, ok)
		require.Equal(t, 2, row)
		require.Equal(t, 1, col)

		row, col, ok = NewMove(South, 1).Target(b)
		require.True(t, ok)
		require.Equal(t, 4, row, "Should land on the origin when the next cell is occupied")
		require.Equal(t, 1, col)
	})

	t.Run("occupied origin has no target", func(t *testing.T) {
		b := NewBoard(2)
		b.Set(0, 0, Block)

		require.True(t, NewMove(North, 1).IsLegal(b))
		require.False(t, NewMove(North, 0).IsLegal(b))
		require.False(t, NewMove(West, 0).IsLegal(b))
		require.True(t, NewMove(West, 1).IsLegal(b))
		_, ok := NewMove(North, 0).Annotated(b)
		require.False(t, ok)
	})

	t.Run("annotating a winning move", func(t *testing.T) {
		b := NewBoard(4)
		m := NewMove(North, 0)
		for i := 0; i < 3; i++ {
			_, err := b.MakeMove(m)
			require.NoError(t, err)
			b.Pass()
		}

		lm, ok := m.Annotated(b)

		require.True(t, ok)
		require.True(t, lm.IsWinning())
		require.Equal(t, 0, lm.Row())
		require.Equal(t, 0, lm.Col())
	})
}

func TestMakeMoveProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for game := 0; game < 30; game++ {
		b := GenerateBoard(5, rng.Intn(8), rand.NewSource(uint64(100+game)))
		for b.Outcome() == Ongoing {
			m := NewMove(Side(rng.Intn(4)), rng.Intn(7)-1)
			before := b.Clone()
			lm, ok := m.Annotated(b)

			_, err := b.MakeMove(m)

			if !ok {
				require.ErrorIs(t, err, ErrIllegalMove)
				require.Equal(t, before, b, "Illegal move should leave the board unchanged")
				continue
			}
			require.NoError(t, err)
			require.Equal(t, lm.IsWinning(), hasLine(b, before.Active()),
				"Pre-placement win check should agree with a full scan")
			for row := 0; row < b.Size(); row++ {
				for col := 0; col < b.Size(); col++ {
					got, _ := b.Get(row, col)
					old, _ := before.Get(row, col)
					if row == lm.Row() && col == lm.Col() {
						require.Equal(t, Empty, old)
						require.Equal(t, before.Active(), got)
					} else {
						require.Equal(t, old, got, "Only the landing cell should change")
					}
				}
			}
		}
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard(2)
	b.Set(0, 0, Block)
	b.Set(1, 1, Player2)

	expected := "    0 1\n 0 █▋  \n 1   ○2\n"
	require.Equal(t, expected, b.String())
}

func countLegal(b *Board) int {
	n := 0
	for range b.All() {
		n++
	}
	return n
}

// hasLine scans the whole board for four in a row of entry.
func hasLine(b *Board, entry Entry) bool {
	directions := [][2]int{{0, 1}, {1, 0}, {1, 1}, {-1, 1}}
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			for _, d := range directions {
				n := 0
				for k := 0; k < lineLength; k++ {
					if e, ok := b.Get(row+k*d[0], col+k*d[1]); ok && e == entry {
						n++
					}
				}
				if n == lineLength {
					return true
				}
			}
		}
	}
	return false
}
