package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rocketscienceinc/tictactoe-backend/internal/entity"
)

// StatsRepository counts recorded wins per player.
type StatsRepository interface {
	RecordResult(ctx context.Context, result entity.GameResult) error
	Stats(ctx context.Context) ([]entity.PlayerStats, error)
}

type dbStats struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) StatsRepository {
	return &dbStats{
		pool: pool,
	}
}

func (that *dbStats) RecordResult(ctx context.Context, result entity.GameResult) error {
	query := `INSERT INTO games (player, result) VALUES ($1, $2)`

	if _, err := that.pool.Exec(ctx, query, result.Player.String(), result.Result); err != nil {
		return fmt.Errorf("can't save game result: %w", err)
	}

	return nil
}

func (that *dbStats) Stats(ctx context.Context) ([]entity.PlayerStats, error) {
	query := `SELECT player, COUNT(*) AS count FROM games GROUP BY player ORDER BY player`

	rows, err := that.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't query stats: %w", err)
	}
	defer rows.Close()

	stats := make([]entity.PlayerStats, 0, len(entity.Marks))
	for rows.Next() {
		var stat entity.PlayerStats
		if err = rows.Scan(&stat.Player, &stat.Count); err != nil {
			return nil, fmt.Errorf("can't scan stats row: %w", err)
		}
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read stats rows: %w", err)
	}

	return stats, nil
}
