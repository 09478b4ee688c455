package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	for _, size := range []int{1, 3, 15} {
		board, err := NewBoard(size)
		require.NoError(t, err)

		assert.Equal(t, size, board.Size())
		assert.Len(t, board.Rows(), size)
		for _, row := range board.Rows() {
			for _, cell := range row {
				assert.True(t, cell.IsEmpty())
			}
		}
	}

	_, err := NewBoard(-1)
	assert.ErrorIs(t, err, ErrInvalidBoardSize)
}

func TestBoardFromRows(t *testing.T) {
	t.Run("Rejects ragged rows", func(t *testing.T) {
		// Given: a 2-row input whose second row is short
		rows := [][]Cell{{EmptyCell, EmptyCell}, {EmptyCell}}

		// When: building a board
		_, err := BoardFromRows(rows)

		// Then: ErrBoardNotSquare is returned
		assert.ErrorIs(t, err, ErrBoardNotSquare)
	})

	t.Run("Rejects non-square input", func(t *testing.T) {
		_, err := ParseBoard("XO_", "___")

		assert.ErrorIs(t, err, ErrBoardNotSquare)
	})

	t.Run("Rejects empty input", func(t *testing.T) {
		_, err := BoardFromRows(nil)

		assert.ErrorIs(t, err, ErrInvalidBoardSize)
	})

	t.Run("Copies the input", func(t *testing.T) {
		// Given: a board built from rows
		rows := [][]Cell{{Marked(MarkX), EmptyCell}, {EmptyCell, Marked(MarkO)}}
		board, err := BoardFromRows(rows)
		require.NoError(t, err)

		// When: the caller changes its rows afterwards
		rows[0][1] = Marked(MarkO)

		// Then: the board is unaffected
		assert.True(t, board.At(Position{Row: 0, Col: 1}).IsEmpty())
	})
}

func TestParseBoard(t *testing.T) {
	board, err := ParseBoard("X O _", "_ . O", "x _ _")
	require.NoError(t, err)

	assert.Equal(t, "X O _\n_ _ O\nX _ _", board.String())

	_, err = ParseBoard("XZ", "__")
	assert.ErrorIs(t, err, ErrInvalidMark)
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places a mark on an empty cell", func(t *testing.T) {
		board, err := NewBoard(3)
		require.NoError(t, err)

		require.NoError(t, board.Place(Position{Row: 2, Col: 1}, MarkO))

		assert.True(t, board.At(Position{Row: 2, Col: 1}).Is(MarkO))
		assert.False(t, board.Full())
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		board, err := ParseBoard("X_", "__")
		require.NoError(t, err)

		err = board.Place(Position{}, MarkO)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.True(t, board.At(Position{}).Is(MarkX))
	})

	t.Run("Rejects positions outside the board", func(t *testing.T) {
		board, err := NewBoard(2)
		require.NoError(t, err)

		for _, pos := range []Position{{Row: -1}, {Col: -1}, {Row: 2}, {Col: 2}} {
			assert.ErrorIs(t, board.Place(pos, MarkX), ErrInvalidCell)
		}
	})
}

func TestBoard_Full(t *testing.T) {
	board, err := ParseBoard("XO", "O_")
	require.NoError(t, err)
	assert.False(t, board.Full())

	require.NoError(t, board.Place(Position{Row: 1, Col: 1}, MarkX))
	assert.True(t, board.Full())
}

func TestBoard_Rows(t *testing.T) {
	board, err := ParseBoard("XO", "_O")
	require.NoError(t, err)

	// When: the caller changes the returned rows
	rows := board.Rows()
	rows[1][0] = Marked(MarkX)

	// Then: the board is unaffected
	assert.True(t, board.At(Position{Row: 1, Col: 0}).IsEmpty())
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Encodes rows with null for empty cells", func(t *testing.T) {
		board, err := ParseBoard("X_", "_O")
		require.NoError(t, err)

		data, err := json.Marshal(board)
		require.NoError(t, err)

		assert.JSONEq(t, `[["X",null],[null,"O"]]`, string(data))
	})

	t.Run("Decodes a square board", func(t *testing.T) {
		var board Board
		require.NoError(t, json.Unmarshal([]byte(`[["O",null],[null,"X"]]`), &board))

		want, err := ParseBoard("O_", "_X")
		require.NoError(t, err)
		assert.Equal(t, want, &board)
	})

	t.Run("Rejects a ragged board", func(t *testing.T) {
		var board Board
		err := json.Unmarshal([]byte(`[["O",null],[null]]`), &board)

		assert.ErrorIs(t, err, ErrBoardNotSquare)
	})

	t.Run("Rejects an unknown mark", func(t *testing.T) {
		var board Board
		err := json.Unmarshal([]byte(`[["Z"]]`), &board)

		assert.ErrorIs(t, err, ErrInvalidMark)
	})
}

func TestLineAt(t *testing.T) {
	for n := 1; n <= 15; n++ {
		require.Equal(t, 2*n+2, LineCount(n))

		assert.Equal(t, Line{Kind: LineRow, Index: 0}, LineAt(n, 0))
		assert.Equal(t, Line{Kind: LineRow, Index: n - 1}, LineAt(n, n-1))
		assert.Equal(t, Line{Kind: LineColumn, Index: 0}, LineAt(n, n))
		assert.Equal(t, Line{Kind: LineColumn, Index: n - 1}, LineAt(n, 2*n-1))
		assert.Equal(t, Line{Kind: LineDiagonal}, LineAt(n, 2*n))
		assert.Equal(t, Line{Kind: LineAntiDiagonal}, LineAt(n, 2*n+1))

		for i := 0; i < LineCount(n); i++ {
			assert.Len(t, LineAt(n, i).Cells(n), n)
		}
	}

	assert.Zero(t, LineCount(0))
	assert.Zero(t, LineCount(-3))
}

func TestLine_Cells(t *testing.T) {
	assert.Equal(t,
		[]Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
		Line{Kind: LineDiagonal}.Cells(3))
	assert.Equal(t,
		[]Position{{Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}},
		Line{Kind: LineAntiDiagonal}.Cells(3))
	assert.Equal(t,
		[]Position{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
		Line{Kind: LineColumn, Index: 1}.Cells(3))
}

func TestMark(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())

	mark, err := ParseMark("O")
	require.NoError(t, err)
	assert.Equal(t, MarkO, mark)

	_, err = ParseMark("")
	assert.ErrorIs(t, err, ErrInvalidMark)

	_, err = json.Marshal(Mark(9))
	assert.Error(t, err)
}
