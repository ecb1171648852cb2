package dump

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrMalformedCell = errors.New("malformed hex cell")

// Bytes decodes the hex cells of rows back into the bytes they were
// formatted from.
func Bytes(rows []Row) ([]byte, error) {
	size := 0
	for _, row := range rows {
		size += row.Len()
	}
	data := make([]byte, 0, size)
	for i, row := range rows {
		if len(row.Hex) != len(row.ASCII) {
			return nil, fmt.Errorf("row %d: hex/ascii length mismatch: %d != %d", i, len(row.Hex), len(row.ASCII))
		}
		for j, cell := range row.Hex {
			if len(cell) != 2 {
				return nil, fmt.Errorf("row %d cell %d: %w: '%s'", i, j, ErrMalformedCell, cell)
			}
			value, err := strconv.ParseUint(cell, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("row %d cell %d: %w: '%s'", i, j, ErrMalformedCell, cell)
			}
			data = append(data, byte(value))
		}
	}
	return data, nil
}
