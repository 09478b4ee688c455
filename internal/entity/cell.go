package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Cell is a single board square: either empty or holding a Mark.
type Cell struct {
	mark     Mark
	occupied bool
}

// EmptyCell is the zero Cell.
var EmptyCell = Cell{}

func Marked(mark Mark) Cell {
	return Cell{mark: mark, occupied: true}
}

func (that Cell) Mark() (Mark, bool) {
	return that.mark, that.occupied
}

func (that Cell) IsEmpty() bool {
	return !that.occupied
}

// Is - reports whether the cell holds the given mark.
func (that Cell) Is(mark Mark) bool {
	return that.occupied && that.mark == mark
}

func (that Cell) String() string {
	if !that.occupied {
		return "_"
	}
	return that.mark.String()
}

func (that Cell) MarshalJSON() ([]byte, error) {
	if !that.occupied {
		return []byte("null"), nil
	}
	return json.Marshal(that.mark)
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*that = EmptyCell
		return nil
	}

	var mark Mark
	if err := json.Unmarshal(data, &mark); err != nil {
		return fmt.Errorf("failed to unmarshal cell: %w", err)
	}

	*that = Marked(mark)

	return nil
}
