package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/tictactoe-backend/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-backend/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type statsRepo interface {
	RecordResult(ctx context.Context, result entity.GameResult) error
	Stats(ctx context.Context) ([]entity.PlayerStats, error)
}

// BoardLimits bounds the size of new games.
type BoardLimits struct {
	MinSize int
	MaxSize int
}

type GameManager struct {
	logger    *slog.Logger
	gameRepo  gameRepo
	statsRepo statsRepo
	limits    BoardLimits
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, statsRepo statsRepo, limits BoardLimits) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:  gameRepo,
		statsRepo: statsRepo,
		limits:    limits,
	}
}

// CreateGame - starts a new game on an empty size×size board.
func (that *GameManager) CreateGame(ctx context.Context, size int) (*entity.Game, error) {
	if size < that.limits.MinSize || size > that.limits.MaxSize {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", apperror.ErrInvalidBoardSize, size, that.limits.MinSize, that.limits.MaxSize)
	}

	game, err := entity.NewGame(pkg.GenerateGameID(), size)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	that.logger.Debug("game created", "game_id", game.ID, "size", size)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// MakeTurn - applies a move, saves the game and reports a winner to the stats
// recorder. A failed report is logged and does not fail the move.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, mark entity.Mark, pos entity.Position) (*entity.Game, entity.WinResult, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, entity.NoWinner(), fmt.Errorf("failed to get game: %w", err)
	}

	result, err := tictactoe.MakeTurn(game, mark, pos)
	if err != nil {
		return nil, entity.NoWinner(), fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, entity.NoWinner(), fmt.Errorf("failed update game: %w", err)
	}

	if winner, ok := result.Winner(); ok {
		that.recordWin(ctx, game, winner, result.Line())
	} else if game.IsTie() {
		that.logger.Info("game finished in a tie", "game_id", game.ID)
	}

	return game, result, nil
}

func (that *GameManager) recordWin(ctx context.Context, game *entity.Game, winner entity.Mark, line entity.Line) {
	log := that.logger.With("method", "recordWin", "game_id", game.ID)

	log.Info("game won", "winner", winner.String(), "line", line.String())

	err := that.statsRepo.RecordResult(ctx, entity.GameResult{Player: winner, Result: entity.ResultWin})
	if err != nil {
		log.Error("failed to record game result", "error", err)
	}
}

// RecordResult - stores a result reported directly by a client.
func (that *GameManager) RecordResult(ctx context.Context, result entity.GameResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	if err := that.statsRepo.RecordResult(ctx, result); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *GameManager) Stats(ctx context.Context) ([]entity.PlayerStats, error) {
	stats, err := that.statsRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}
