package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a hot-seat match on an N×N board. A finished game with no Winner is a tie.
type Game struct {
	ID        string    `json:"id"`
	Board     *Board    `json:"board"`
	Winner    *Mark     `json:"winner,omitempty"`
	Status    string    `json:"status"`
	Turn      Mark      `json:"player_turn"`
	Moves     int       `json:"moves"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGame - creates an ongoing game with an empty board where X moves first.
func NewGame(id string, size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return &Game{
		ID:        id,
		Board:     board,
		Status:    StatusOngoing,
		Turn:      MarkX,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == nil
}

// Finish - marks the game as finished; a nil winner records a tie.
func (that *Game) Finish(winner *Mark) {
	that.Winner = winner
	that.Status = StatusFinished
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
