package dump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func sequence(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i * 7)
	}
	return data
}

func TestFormatEmpty(t *testing.T) {
	rows := Format([]byte{})
	require.NotNil(t, rows)
	require.Len(t, rows, 0)
	require.Len(t, Format(nil), 0)

	buf, err := json.Marshal(Format(nil))
	require.Nil(t, err)
	require.Equal(t, "[]", string(buf))
}

func TestFormatSingleByte(t *testing.T) {
	rows := Format([]byte{0x41})
	require.Len(t, rows, 1)
	require.Equal(t, "0x0000", rows[0].Offset)
	require.Equal(t, []string{"41"}, rows[0].Hex)
	require.Equal(t, []string{"A"}, rows[0].ASCII)
}

func TestFormatZeroRow(t *testing.T) {
	rows := Format(make([]byte, 16))
	require.Len(t, rows, 1)
	require.Equal(t, "0x0000", rows[0].Offset)
	for i := 0; i < 16; i++ {
		require.Equal(t, "00", rows[0].Hex[i])
		require.Equal(t, ".", rows[0].ASCII[i])
	}
}

func TestFormatSpaces(t *testing.T) {
	rows := Format(bytes.Repeat([]byte{0x20}, 17))
	require.Len(t, rows, 2)
	require.Equal(t, "0x0000", rows[0].Offset)
	require.Len(t, rows[0].Hex, 16)
	for i := 0; i < 16; i++ {
		require.Equal(t, "20", rows[0].Hex[i])
		require.Equal(t, " ", rows[0].ASCII[i])
	}
	require.Equal(t, "0x0010", rows[1].Offset)
	require.Equal(t, []string{"20"}, rows[1].Hex)
	require.Equal(t, []string{" "}, rows[1].ASCII)
}

func TestFormatHighByte(t *testing.T) {
	rows := Format([]byte{'x', 0xFF, 0x80, 0x7F})
	require.Equal(t, []string{"78", "FF", "80", "7F"}, rows[0].Hex)
	require.Equal(t, []string{"x", ".", ".", "."}, rows[0].ASCII)
}

func TestFormatWhitespace(t *testing.T) {
	rows := Format([]byte{0x09})
	require.Equal(t, []string{"09"}, rows[0].Hex)
	require.Equal(t, []string{"\t"}, rows[0].ASCII)

	rows = Format([]byte("\n\v\f\r"))
	require.Equal(t, []string{"\n", "\v", "\f", "\r"}, rows[0].ASCII)
}

func TestFormatHexPadding(t *testing.T) {
	rows := Format([]byte{5, 0x0A, 255})
	require.Equal(t, []string{"05", "0A", "FF"}, rows[0].Hex)
}

func TestFormatProperties(t *testing.T) {
	for _, size := range []int{0, 1, 15, 16, 17, 31, 32, 33, 255, 256, 1000} {
		data := sequence(size)
		rows := Format(data)
		require.Equal(t, (size+15)/16, len(rows), "size %d", size)
		total := 0
		for i, row := range rows {
			require.Equal(t, len(row.Hex), len(row.ASCII))
			require.Equal(t, fmt.Sprintf("0x%04X", i*16), row.Offset)
			if i < len(rows)-1 {
				require.Equal(t, 16, row.Len())
			} else if size%16 == 0 {
				require.Equal(t, 16, row.Len())
			} else {
				require.Equal(t, size%16, row.Len())
			}
			total += row.Len()
		}
		require.Equal(t, size, total)
		require.Equal(t, rows, Format(data))
	}
}

func TestFormatDoesNotModifyInput(t *testing.T) {
	data := sequence(40)
	saved := append([]byte{}, data...)
	Format(data)
	require.Equal(t, saved, data)
}

func TestFormatOffset(t *testing.T) {
	require.Equal(t, "0x0000", FormatOffset(0))
	require.Equal(t, "0x1A40", FormatOffset(0x1A40))
	require.Equal(t, "0xFFF0", FormatOffset(0xFFF0))
	require.Equal(t, "0x10000", FormatOffset(0x10000))

	rows := Format(make([]byte, 0x10001))
	require.Equal(t, "0xFFF0", rows[len(rows)-2].Offset)
	require.Equal(t, "0x10000", rows[len(rows)-1].Offset)
}

func TestIsPrintable(t *testing.T) {
	count := 0
	for x := 0; x < 256; x++ {
		if IsPrintable(byte(x)) {
			count++
		}
	}
	// 94 graphic characters plus 6 whitespace characters
	require.Equal(t, 100, count)
	require.True(t, IsPrintable('!'))
	require.True(t, IsPrintable('~'))
	require.False(t, IsPrintable(0x7F))
	require.False(t, IsPrintable(0x00))
	require.False(t, IsPrintable(0xA0))
}

func TestRowJSON(t *testing.T) {
	buf, err := json.Marshal(Format([]byte("A\x00")))
	require.Nil(t, err)
	require.Equal(t, `[{"offset":"0x0000","hex":["41","00"],"ascii":["A","."]}]`, string(buf))
}

func TestFormatConcurrent(t *testing.T) {
	for _, size := range []int{0, 1, 16, 17, 4099} {
		data := sequence(size)
		require.Equal(t, Format(data), FormatConcurrent(data))
	}
	require.NotNil(t, FormatConcurrent(nil))
}

func TestFormatAuto(t *testing.T) {
	saved := ConcurrentThreshold
	defer func() { ConcurrentThreshold = saved }()
	ConcurrentThreshold = 32
	data := sequence(100)
	require.Equal(t, Format(data), FormatAuto(data))
	require.Equal(t, Format(data[:8]), FormatAuto(data[:8]))
}
