package game

// Board holds the color of every cell, indexed [row][col].
type Board [Size][Size]Color

// directions to scan from a placed disc
var directions = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// StartingBoard returns the four-disc cross opening.
func StartingBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

func (b *Board) at(c Coord) Color {
	return b[c.Row][c.Col]
}

// count tallies discs of each color.
func (b *Board) count() (black, white int) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch b[row][col] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// bracketed returns how many opponent discs a disc of color mover at c would
// enclose in direction d, or 0 when the run is not closed by a mover's disc.
func (b *Board) bracketed(c, d Coord, mover Color) int {
	opponent := mover.Opponent()
	next := Coord{c.Row + d.Row, c.Col + d.Col}
	run := 0
	for next.InBounds() && b.at(next) == opponent {
		run++
		next = Coord{next.Row + d.Row, next.Col + d.Col}
	}
	if run == 0 || !next.InBounds() || b.at(next) != mover {
		return 0
	}
	return run
}

// canPlace reports whether mover may place a disc at the empty cell c.
func (b *Board) canPlace(c Coord, mover Color) bool {
	if b.at(c) != Empty {
		return false
	}
	for _, d := range directions {
		if b.bracketed(c, d, mover) > 0 {
			return true
		}
	}
	return false
}

// flip turns every bracketed run around c to mover's color and returns the number of discs flipped.
func (b *Board) flip(c Coord, mover Color) int {
	flipped := 0
	for _, d := range directions {
		run := b.bracketed(c, d, mover)
		next := c
		for i := 0; i < run; i++ {
			next = Coord{next.Row + d.Row, next.Col + d.Col}
			b[next.Row][next.Col] = mover
		}
		flipped += run
	}
	return flipped
}
