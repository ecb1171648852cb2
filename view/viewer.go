package view

import (
	"github.com/rs/zerolog/log"

	"github.com/rstms/memview/dump"
)

// Position addresses one cell of the dump.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) Index() int {
	return p.Row*dump.RowSize + p.Col
}

func PositionOf(index int) Position {
	return Position{Row: index / dump.RowSize, Col: index % dump.RowSize}
}

// Match is one occurrence of a search query.
type Match struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

func (m Match) End() int {
	return m.Start + m.Length - 1
}

func (m Match) Contains(index int) bool {
	return index >= m.Start && index <= m.End()
}

// Viewer holds a loaded buffer together with its search and selection state.
type Viewer struct {
	data    []byte
	rows    []dump.Row
	matches []Match
	current int
	start   *Position
	end     *Position
}

func New(data []byte) *Viewer {
	v := Viewer{}
	v.Load(data)
	return &v
}

// Load replaces the buffer and resets matches and selection.
func (v *Viewer) Load(data []byte) {
	v.data = data
	v.rows = dump.FormatAuto(data)
	v.matches = nil
	v.current = -1
	v.start = nil
	v.end = nil
	log.Debug().Int("bytes", len(data)).Int("rows", len(v.rows)).Msg("loaded")
}

func (v *Viewer) Rows() []dump.Row {
	return v.rows
}

func (v *Viewer) Len() int {
	return len(v.data)
}

func (v *Viewer) clamp(index int) int {
	if index >= len(v.data) {
		index = len(v.data) - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

// Mark reports the display style of the cell at index, selection first.
func (v *Viewer) Mark(index int) dump.Style {
	pos := PositionOf(index)
	switch {
	case v.IsSelected(pos):
		return dump.StyleSelected
	case v.IsHighlighted(pos):
		return dump.StyleMatch
	}
	return dump.StyleNone
}

// Text renders the dump with matches and selection highlighted.
func (v *Viewer) Text() string {
	return dump.Text(v.rows, v.Mark)
}
