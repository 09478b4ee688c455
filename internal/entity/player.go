package entity

import (
	"errors"
	"fmt"
)

// ResultWin is the only result the stats recorder accepts.
const ResultWin = "win"

var ErrInvalidResult = errors.New("invalid game result")

// GameResult is one recorded outcome for a player.
type GameResult struct {
	Player Mark   `json:"player"`
	Result string `json:"result"`
}

func (that GameResult) Validate() error {
	if that.Player != MarkX && that.Player != MarkO {
		return fmt.Errorf("%w: %w", ErrInvalidResult, ErrInvalidMark)
	}

	if that.Result != ResultWin {
		return fmt.Errorf("%w: result %q", ErrInvalidResult, that.Result)
	}

	return nil
}

// PlayerStats is the number of recorded wins for one player.
type PlayerStats struct {
	Player string `json:"player"`
	Count  int64  `json:"count"`
}
