package entity

import (
	"errors"
	"fmt"
)

// Mark identifies one of the two players. MarkX is the zero value, so an unset
// Mark field (a zero GameResult, a stored game without player_turn) reads as X.
// NewGame always sets Turn explicitly.
type Mark uint8

const (
	MarkX Mark = iota
	MarkO
)

var ErrInvalidMark = errors.New("invalid mark")

// Marks is the fixed enumeration order used when scanning a board for winners.
var Marks = [...]Mark{MarkX, MarkO}

func ParseMark(s string) (Mark, error) {
	switch s {
	case "X", "x":
		return MarkX, nil
	case "O", "o":
		return MarkO, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMark, s)
	}
}

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(that))
	}
}

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

func (that Mark) MarshalText() ([]byte, error) {
	if that != MarkX && that != MarkO {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMark, uint8(that))
	}
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}
