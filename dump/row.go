package dump

import (
	"fmt"
)

const RowSize = 16

// Row is one formatted line of a dump covering up to RowSize bytes.
type Row struct {
	Offset string   `json:"offset"`
	Hex    []string `json:"hex"`
	ASCII  []string `json:"ascii"`
}

func (r Row) Len() int {
	return len(r.Hex)
}

// Format partitions data into RowSize chunks and renders each one.
// Empty input yields an empty (non-nil) slice.
func Format(data []byte) []Row {
	rows := make([]Row, 0, RowCount(len(data)))
	for i := 0; i < len(data); i += RowSize {
		end := i + RowSize
		if end > len(data) {
			end = len(data)
		}
		rows = append(rows, formatRow(i, data[i:end]))
	}
	return rows
}

// RowCount returns the number of rows Format produces for size bytes.
func RowCount(size int) int {
	return (size + RowSize - 1) / RowSize
}

func formatRow(offset int, chunk []byte) Row {
	row := Row{
		Offset: FormatOffset(offset),
		Hex:    make([]string, len(chunk)),
		ASCII:  make([]string, len(chunk)),
	}
	for i, b := range chunk {
		row.Hex[i] = hexCells[b]
		row.ASCII[i] = asciiCells[b]
	}
	return row
}

// FormatOffset renders a byte offset as 0x followed by at least 4 uppercase
// hex digits. Wider offsets are never truncated.
func FormatOffset(offset int) string {
	return fmt.Sprintf("0x%04X", offset)
}

// IsPrintable reports whether b is an ASCII graphic or ASCII whitespace byte.
func IsPrintable(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return b >= '!' && b <= '~'
}

var hexCells [256]string
var asciiCells [256]string

func init() {
	for x := 0; x < 256; x++ {
		b := byte(x)
		hexCells[x] = fmt.Sprintf("%02X", b)
		if IsPrintable(b) {
			asciiCells[x] = string(rune(b))
		} else {
			asciiCells[x] = "."
		}
	}
}
