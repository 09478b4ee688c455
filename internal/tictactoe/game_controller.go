package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-backend/internal/entity"
)

// MakeTurn - places mark at pos and moves the game to its next state.
// On error the game is left untouched.
func MakeTurn(gameInstance *entity.Game, mark entity.Mark, pos entity.Position) (entity.WinResult, error) {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return entity.NoWinner(), err
	}

	if gameInstance.Turn != mark {
		return entity.NoWinner(), apperror.ErrNotYourTurn
	}

	if err := gameInstance.Board.Place(pos, mark); err != nil {
		return entity.NoWinner(), fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Moves++

	return updateGameStatus(gameInstance, mark), nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, mark entity.Mark) entity.WinResult {
	result := Evaluate(gameInstance.Board)

	switch winner, ok := result.Winner(); {
	case ok:
		gameInstance.Finish(&winner)
	case gameInstance.Board.Full():
		gameInstance.Finish(nil)
	default:
		gameInstance.Turn = mark.Opponent()
	}

	return result
}
