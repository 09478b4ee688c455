package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, rows ...string) *entity.Game {
	t.Helper()

	game, err := entity.NewGame("123", len(rows))
	require.NoError(t, err)

	game.Board = mustParseBoard(t, rows...)

	return game
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new 3×3 game
		game := newTestGame(t, "___", "___", "___")

		// When: player X makes a turn
		result, err := MakeTurn(game, entity.MarkX, entity.Position{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the mark is placed, the turn passes to O and nobody has won
		assert.False(t, result.HasWinner())
		assert.Equal(t, mustParseBoard(t, "X__", "___", "___"), game.Board)
		assert.Equal(t, entity.MarkO, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, 1, game.Moves)
		assert.Nil(t, game.Winner)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where X took the centre
		game := newTestGame(t, "___", "___", "___")
		_, err := MakeTurn(game, entity.MarkX, entity.Position{Row: 1, Col: 1})
		require.NoError(t, err)

		// When: player O tries to make a move to the same square
		_, err = MakeTurn(game, entity.MarkO, entity.Position{Row: 1, Col: 1})

		// Then: an error ErrCellOccupied must be returned and the game is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, mustParseBoard(t, "___", "_X_", "___"), game.Board)
		assert.Equal(t, entity.MarkO, game.Turn)
		assert.Equal(t, 1, game.Moves)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where X moves first
		game := newTestGame(t, "___", "___", "___")

		// When: player O tries to make a move
		_, err := MakeTurn(game, entity.MarkO, entity.Position{Row: 0, Col: 1})

		// Then: an error ErrNotYourTurn must be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, 0, game.Moves)
	})

	t.Run("Error on invalid cell", func(t *testing.T) {
		for _, pos := range []entity.Position{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}} {
			// Given: a new game
			game := newTestGame(t, "___", "___", "___")

			// When: X plays outside the board
			_, err := MakeTurn(game, entity.MarkX, pos)

			// Then: an error ErrInvalidCell must be returned
			require.ErrorIs(t, err, entity.ErrInvalidCell)
		}
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X is one move from completing column 3 on a 4×4 board
		game := newTestGame(t, "O__X", "O__X", "O__X", "____")

		// When: X completes the column
		result, err := MakeTurn(game, entity.MarkX, entity.Position{Row: 3, Col: 3})
		require.NoError(t, err)

		// Then: X wins on column 3 and the game is finished
		requireWinner(t, result, entity.MarkX)
		assert.Equal(t, entity.Line{Kind: entity.LineColumn, Index: 3}, result.Line())
		assert.True(t, game.IsFinished())
		require.NotNil(t, game.Winner)
		assert.Equal(t, entity.MarkX, *game.Winner)
	})

	t.Run("Last empty cell without a line is a tie", func(t *testing.T) {
		// Given: one empty cell left and no line can be completed
		game := newTestGame(t, "XOX", "XOO", "OX_")

		// When: X fills the last cell
		result, err := MakeTurn(game, entity.MarkX, entity.Position{Row: 2, Col: 2})
		require.NoError(t, err)

		// Then: the game is a tie
		assert.False(t, result.HasWinner())
		assert.True(t, game.IsTie())
	})

	t.Run("Move after game finished", func(t *testing.T) {
		// Given: a game that X already won
		game := newTestGame(t, "XXX", "OO_", "___")
		game.Finish(ptr(entity.MarkX))
		game.Turn = entity.MarkO

		// When: player O tries to make a move
		_, err := MakeTurn(game, entity.MarkO, entity.Position{Row: 1, Col: 2})

		// Then: an error ErrGameFinished must be returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Single cell board is won by the first move", func(t *testing.T) {
		// Given: a 1×1 game
		game := newTestGame(t, "_")

		// When: X plays the only cell
		result, err := MakeTurn(game, entity.MarkX, entity.Position{})
		require.NoError(t, err)

		// Then: X wins rather than tying
		requireWinner(t, result, entity.MarkX)
		assert.False(t, game.IsTie())
	})
}
