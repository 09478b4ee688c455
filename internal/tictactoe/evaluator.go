package tictactoe

import "github.com/rocketscienceinc/tictactoe-backend/internal/entity"

// Evaluate - reports whether either mark has completed a row, column or main
// diagonal of the board.
//
// Both marks are checked in entity.Marks order and a later match overwrites an
// earlier one, so on a board where X and O both hold a full line, O is
// reported. For each mark the first completed line in scan order (rows,
// columns, diagonal, anti-diagonal) is the one returned.
//
// Evaluate does not modify the board and keeps no state, so it is safe to
// call concurrently on boards nobody is writing to.
func Evaluate(board *entity.Board) entity.WinResult {
	result := entity.NoWinner()

	if board.Size() == 0 {
		return result
	}

	for _, mark := range entity.Marks {
		if line, ok := completedLine(board, mark); ok {
			result = entity.Won(mark, line)
		}
	}

	return result
}

// completedLine - returns the first line fully held by mark.
func completedLine(board *entity.Board, mark entity.Mark) (entity.Line, bool) {
	n := board.Size()

	for i := 0; i < entity.LineCount(n); i++ {
		line := entity.LineAt(n, i)
		if filledBy(board, line, mark) {
			return line, true
		}
	}

	return entity.Line{}, false
}

// filledBy - an empty cell or the other mark anywhere on the line fails it.
func filledBy(board *entity.Board, line entity.Line, mark entity.Mark) bool {
	n := board.Size()

	for i := 0; i < n; i++ {
		if !board.At(line.At(i, n)).Is(mark) {
			return false
		}
	}

	return true
}
