package game

// weights scores each cell by its strategic value: corners and edges high, the squares
// next to a corner low, the centre near zero. Shared read-only.
var weights = [Size][Size]int{
	{100, -20, 50, 25, 25, 50, -20, 100},
	{-20, 80, 25, 10, 10, 25, 80, -20},
	{50, 25, 20, 5, 5, 20, 25, 50},
	{25, 10, 5, 0, 0, 5, 10, 25},
	{25, 10, 5, 0, 0, 5, 10, 25},
	{50, 25, 20, 5, 5, 20, 25, 50},
	{-20, 80, 25, 10, 10, 25, 80, -20},
	{100, -20, 50, 25, 25, 50, -20, 100},
}

// Weight returns the positional weight of a cell.
func Weight(c Coord) int {
	return weights[c.Row][c.Col]
}

// Evaluate sums the weights of Black's discs minus the weights of White's discs. Black is
// always the maximizing side, regardless of who is to move.
func Evaluate(gs *GameState) int {
	total := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			switch gs.board[row][col] {
			case Black:
				total += weights[row][col]
			case White:
				total -= weights[row][col]
			}
		}
	}
	return total
}
