package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/rstms/memview/dump"
)

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(name) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Left, fmt.Errorf("%w: '%s'", ErrInvalidDirection, name)
}

func (v *Viewer) position(pos Position) *Position {
	p := PositionOf(v.clamp(pos.Index()))
	return &p
}

// Select sets anchor and cursor to pos.
func (v *Viewer) Select(pos Position) {
	if len(v.data) == 0 {
		return
	}
	v.start = v.position(pos)
	v.end = v.position(pos)
}

// Extend moves the cursor to pos, keeping the anchor.
func (v *Viewer) Extend(pos Position) {
	if v.start == nil {
		v.Select(pos)
		return
	}
	v.end = v.position(pos)
}

// Toggle clears the selection when pos is inside it and selects pos otherwise.
func (v *Viewer) Toggle(pos Position) {
	if v.IsSelected(pos) {
		v.Clear()
		return
	}
	v.Select(pos)
}

func (v *Viewer) Clear() {
	v.start = nil
	v.end = nil
}

// Move shifts the cursor one cell or one row. Without extend the anchor
// follows the cursor.
func (v *Viewer) Move(dir Direction, extend bool) {
	if v.end == nil || len(v.data) == 0 {
		return
	}
	index := v.end.Index()
	switch dir {
	case Left:
		index--
	case Right:
		index++
	case Up:
		index -= dump.RowSize
	case Down:
		index += dump.RowSize
	}
	pos := PositionOf(v.clamp(index))
	if extend && v.start != nil {
		v.end = &pos
		return
	}
	v.Select(pos)
}

// Selection returns the inclusive index range of the selection.
func (v *Viewer) Selection() (int, int, bool) {
	if v.start == nil || v.end == nil {
		return 0, 0, false
	}
	start := v.start.Index()
	end := v.end.Index()
	if start > end {
		start, end = end, start
	}
	return start, end, true
}

func (v *Viewer) Cursor() (Position, bool) {
	if v.end == nil {
		return Position{}, false
	}
	return *v.end, true
}

func (v *Viewer) IsSelected(pos Position) bool {
	start, end, ok := v.Selection()
	if !ok {
		return false
	}
	index := pos.Index()
	return index >= start && index <= end
}

func (v *Viewer) SelectedBytes() []byte {
	start, end, ok := v.Selection()
	if !ok {
		return []byte{}
	}
	return v.data[start : end+1]
}

// SelectedHex returns the hex cells of the selection separated by spaces.
func (v *Viewer) SelectedHex() string {
	return strings.Join(v.selectedCells(func(row dump.Row, col int) string { return row.Hex[col] }), " ")
}

// SelectedASCII returns the ascii cells of the selection.
func (v *Viewer) SelectedASCII() string {
	return strings.Join(v.selectedCells(func(row dump.Row, col int) string { return row.ASCII[col] }), "")
}

func (v *Viewer) selectedCells(cell func(dump.Row, int) string) []string {
	start, end, ok := v.Selection()
	if !ok {
		return nil
	}
	cells := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		pos := PositionOf(i)
		cells = append(cells, cell(v.rows[pos.Row], pos.Col))
	}
	return cells
}

// WriteSelection writes the raw selected bytes to w.
func (v *Viewer) WriteSelection(w io.Writer) (int, error) {
	n, err := w.Write(v.SelectedBytes())
	if err != nil {
		return n, fmt.Errorf("failed writing selection: %v", err)
	}
	return n, nil
}
