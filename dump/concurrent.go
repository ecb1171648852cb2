package dump

import (
	"github.com/sourcegraph/conc/iter"
)

const DefaultConcurrentThreshold = 1024 * 1024

// ConcurrentThreshold is the input size above which callers switch to
// FormatConcurrent.
var ConcurrentThreshold = DefaultConcurrentThreshold

// FormatConcurrent produces the same rows as Format, rendering chunks on
// separate goroutines. Row order always follows chunk order.
func FormatConcurrent(data []byte) []Row {
	offsets := make([]int, RowCount(len(data)))
	for i := range offsets {
		offsets[i] = i * RowSize
	}
	rows := iter.Map(offsets, func(offset *int) Row {
		end := *offset + RowSize
		if end > len(data) {
			end = len(data)
		}
		return formatRow(*offset, data[*offset:end])
	})
	if rows == nil {
		rows = []Row{}
	}
	return rows
}

// FormatAuto picks Format or FormatConcurrent based on ConcurrentThreshold.
func FormatAuto(data []byte) []Row {
	if ConcurrentThreshold > 0 && len(data) > ConcurrentThreshold {
		return FormatConcurrent(data)
	}
	return Format(data)
}
