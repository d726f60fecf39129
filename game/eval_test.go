package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("opening is balanced", func(t *testing.T) {
		require.Equal(t, 0, Evaluate(NewGame()))
	})

	t.Run("scoring from Black's perspective", func(t *testing.T) {
		gs := NewGame()
		gs.Apply(Coord{2, 3}, Black)

		require.Equal(t, 5, Evaluate(gs), "Black gains the weight of (2,3)")

		gs.Apply(Coord{2, 2}, White)

		require.Equal(t, -15, Evaluate(gs), "White's disc at (2,2) counts against Black")
	})

	t.Run("weights are symmetric", func(t *testing.T) {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				w := Weight(Coord{row, col})
				require.Equal(t, w, Weight(Coord{col, row}))
				require.Equal(t, w, Weight(Coord{Size - 1 - row, col}))
				require.Equal(t, w, Weight(Coord{row, Size - 1 - col}))
			}
		}
	})
}
