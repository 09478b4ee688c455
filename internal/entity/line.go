package entity

import "fmt"

type LineKind uint8

const (
	LineRow LineKind = iota
	LineColumn
	// LineDiagonal runs from the top-left corner: cells (i, i).
	LineDiagonal
	// LineAntiDiagonal runs from the bottom-left corner: cells (N-1-i, i).
	LineAntiDiagonal
)

func (that LineKind) String() string {
	switch that {
	case LineRow:
		return "row"
	case LineColumn:
		return "column"
	case LineDiagonal:
		return "diagonal"
	case LineAntiDiagonal:
		return "anti-diagonal"
	default:
		return fmt.Sprintf("LineKind(%d)", uint8(that))
	}
}

func (that LineKind) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// Line is one row, column or main diagonal of a board. Index is only
// meaningful for rows and columns.
type Line struct {
	Kind  LineKind `json:"kind"`
	Index int      `json:"index"`
}

// At - returns the i-th position of the line on a board of size n.
func (that Line) At(i, n int) Position {
	switch that.Kind {
	case LineRow:
		return Position{Row: that.Index, Col: i}
	case LineColumn:
		return Position{Row: i, Col: that.Index}
	case LineDiagonal:
		return Position{Row: i, Col: i}
	default:
		return Position{Row: n - 1 - i, Col: i}
	}
}

// Cells - returns the n positions of the line in order.
func (that Line) Cells(n int) []Position {
	positions := make([]Position, n)
	for i := range positions {
		positions[i] = that.At(i, n)
	}
	return positions
}

func (that Line) String() string {
	switch that.Kind {
	case LineRow, LineColumn:
		return fmt.Sprintf("%s %d", that.Kind, that.Index)
	default:
		return that.Kind.String()
	}
}

// LineCount - returns the number of lines on a board of size n: n rows, n
// columns and the two main diagonals.
func LineCount(n int) int {
	if n < 1 {
		return 0
	}
	return 2*n + 2
}

// LineAt - returns the i-th line of a board of size n in scan order: rows,
// columns, diagonal, anti-diagonal. i must be below LineCount(n).
func LineAt(n, i int) Line {
	switch {
	case i < n:
		return Line{Kind: LineRow, Index: i}
	case i < 2*n:
		return Line{Kind: LineColumn, Index: i - n}
	case i == 2*n:
		return Line{Kind: LineDiagonal}
	default:
		return Line{Kind: LineAntiDiagonal}
	}
}
