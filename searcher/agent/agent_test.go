package agent

import (
	"testing"

	"reversi/game"
	"reversi/searcher"

	"github.com/stretchr/testify/require"
)

func TestMinimaxAgent(t *testing.T) {
	a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(2), searcher.WithMetrics()))

	move, metric := a.FindMove(game.NewGame())

	require.Equal(t, game.Coord{Row: 2, Col: 3}, move)
	require.Equal(t, 2, metric.Depth)
	require.Positive(t, metric.Nodes)
	require.Equal(t, "minimax(depth=2)", a.Name())
}

func TestRandomAgent(t *testing.T) {
	t.Run("choosing legal moves reproducibly", func(t *testing.T) {
		a1 := NewRandomAgent(42)
		a2 := NewRandomAgent(42)
		gs1 := game.NewGame()
		gs2 := game.NewGame()

		for !gs1.IsTerminal() {
			m1, _ := a1.FindMove(gs1)
			m2, _ := a2.FindMove(gs2)

			require.Equal(t, m1, m2, "Same seed should give the same moves")
			require.True(t, gs1.IsLegal(m1))
			gs1.Apply(m1, gs1.Active())
			gs2.Apply(m2, gs2.Active())
		}
	})

	t.Run("panicking without legal moves", func(t *testing.T) {
		b, err := game.ParseBoard("BB......", "........", "........", "........", "........", "........", "........", "........")
		require.NoError(t, err)

		require.Panics(t, func() { NewRandomAgent(1).FindMove(game.FromBoard(b, game.White)) })
	})
}
