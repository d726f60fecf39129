package game

import "fmt"

// Size is the width and height of the board.
const Size = 8

// Color is the content of a cell. Empty doubles as "no player" for the active side.
type Color uint8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other side. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		panic(fmt.Sprintf("unknown color %d", c))
	}
}

// Coord is a zero-indexed (row, column) cell position.
type Coord struct {
	Row int
	Col int
}

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Status tags the result of applying a move.
type Status int

const (
	Rejected Status = iota
	Accepted
	GameOver
)

func (s Status) String() string {
	switch s {
	case Rejected:
		return "rejected"
	case Accepted:
		return "accepted"
	case GameOver:
		return "game over"
	default:
		panic(fmt.Sprintf("unknown status %d", s))
	}
}

// Outcome is the final result of a game, Undecided while it is in progress.
type Outcome int

const (
	Undecided Outcome = iota
	BlackWins
	WhiteWins
	Draw
)

// Winner returns the winning color, or Empty for a draw or an unfinished game.
func (o Outcome) Winner() Color {
	switch o {
	case Undecided, Draw:
		return Empty
	case BlackWins:
		return Black
	case WhiteWins:
		return White
	default:
		panic(fmt.Sprintf("unknown outcome %d", o))
	}
}

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	case Draw:
		return "draw"
	default:
		panic(fmt.Sprintf("unknown outcome %d", o))
	}
}

// Result describes what a call to Apply did.
type Result struct {
	Status  Status
	Outcome Outcome // Set when Status is GameOver
	Flipped int     // Opponent discs turned by the move
	Passed  bool    // The opponent had no move and the mover plays again
}

// Evaluator scores a state, positive values favouring Black.
type Evaluator func(*GameState) int
