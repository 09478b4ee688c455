package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
)

var (
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrBoardNotSquare   = errors.New("board is not square")
)

// Position addresses a cell by row and column, both zero based.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a square N×N grid stored row-major. The only ways to build one
// keep every row at exactly N cells.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard - creates an empty board of the given size.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

// BoardFromRows - copies rows into a new board, rejecting ragged input.
func BoardFromRows(rows [][]Cell) (*Board, error) {
	board, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}

	for row, cells := range rows {
		if len(cells) != board.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBoardNotSquare, row, len(cells), board.size)
		}
		copy(board.cells[row*board.size:], cells)
	}

	return board, nil
}

// ParseBoard - builds a board from one string per row, using X, O and _ (or .) for empty.
func ParseBoard(rows ...string) (*Board, error) {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		row = strings.ReplaceAll(row, " ", "")

		cells[i] = make([]Cell, 0, len(row))
		for _, r := range row {
			switch r {
			case '_', '.':
				cells[i] = append(cells[i], EmptyCell)
			default:
				mark, err := ParseMark(string(r))
				if err != nil {
					return nil, fmt.Errorf("row %d: %w", i, err)
				}
				cells[i] = append(cells[i], Marked(mark))
			}
		}
	}

	return BoardFromRows(cells)
}

func (that *Board) Size() int {
	if that == nil {
		return 0
	}
	return that.size
}

// Contains - reports whether pos lies on the board.
func (that *Board) Contains(pos Position) bool {
	n := that.Size()
	return pos.Row >= 0 && pos.Row < n && pos.Col >= 0 && pos.Col < n
}

// At - returns the cell at pos. pos must lie on the board.
func (that *Board) At(pos Position) Cell {
	return that.cells[pos.Row*that.size+pos.Col]
}

// Place - writes mark into an empty cell.
func (that *Board) Place(pos Position, mark Mark) error {
	if !that.Contains(pos) {
		return fmt.Errorf("%w: row %d, col %d", ErrInvalidCell, pos.Row, pos.Col)
	}

	idx := pos.Row*that.size + pos.Col
	if !that.cells[idx].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	that.cells[idx] = Marked(mark)

	return nil
}

// Full - reports whether no empty cell is left.
func (that *Board) Full() bool {
	for _, cell := range that.cells {
		if cell.IsEmpty() {
			return false
		}
	}
	return true
}

// Rows - returns a copy of the board as a slice of rows.
func (that *Board) Rows() [][]Cell {
	rows := make([][]Cell, that.size)
	for row := range rows {
		rows[row] = make([]Cell, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}
	return rows
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := 0; row < that.Size(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < that.size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(that.cells[row*that.size+col].String())
		}
	}
	return sb.String()
}

func (that *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Rows())
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows [][]Cell
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal board: %w", err)
	}

	board, err := BoardFromRows(rows)
	if err != nil {
		return err
	}

	*that = *board

	return nil
}
