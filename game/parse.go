package game

import "fmt"

// ParseBoard reads a board from Size rows of Size characters: 'B' for Black, 'W' for White
// and '.' for an empty cell.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	for row, line := range rows {
		if len(line) != Size {
			return b, fmt.Errorf("row %d: expected %d cells, got %d", row, Size, len(line))
		}
		for col, ch := range line {
			switch ch {
			case 'B':
				b[row][col] = Black
			case 'W':
				b[row][col] = White
			case '.':
				b[row][col] = Empty
			default:
				return b, fmt.Errorf("row %d col %d: unexpected cell %q", row, col, ch)
			}
		}
	}
	return b, nil
}
