package entity

import "fmt"

// WinResult is the outcome of evaluating a board. The zero value means no winner.
type WinResult struct {
	winner Mark
	line   Line
	won    bool
}

func NoWinner() WinResult {
	return WinResult{}
}

func Won(mark Mark, line Line) WinResult {
	return WinResult{winner: mark, line: line, won: true}
}

func (that WinResult) HasWinner() bool {
	return that.won
}

func (that WinResult) Winner() (Mark, bool) {
	return that.winner, that.won
}

// Line - returns the completed line; only meaningful when HasWinner is true.
func (that WinResult) Line() Line {
	return that.line
}

func (that WinResult) String() string {
	if !that.won {
		return "no winner"
	}
	return fmt.Sprintf("winner: %s (%s)", that.winner, that.line)
}
