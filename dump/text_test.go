package dump

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestParseBytes(t *testing.T) {
	data := sequence(70)
	decoded, err := Bytes(Format(data))
	require.Nil(t, err)
	require.Equal(t, data, decoded)

	decoded, err = Bytes(nil)
	require.Nil(t, err)
	require.Len(t, decoded, 0)
}

func TestParseBytesErrors(t *testing.T) {
	_, err := Bytes([]Row{{Offset: "0x0000", Hex: []string{"4G"}, ASCII: []string{"."}}})
	require.ErrorIs(t, err, ErrMalformedCell)

	_, err = Bytes([]Row{{Offset: "0x0000", Hex: []string{"100"}, ASCII: []string{"."}}})
	require.ErrorIs(t, err, ErrMalformedCell)

	_, err = Bytes([]Row{{Offset: "0x0000", Hex: []string{"41"}, ASCII: []string{}}})
	require.NotNil(t, err)
}

func TestText(t *testing.T) {
	color.NoColor = true
	text := Text(Format([]byte("AB\tC")), nil)
	expected := "0x0000  41 42 09 43 " + strings.Repeat("   ", 4) + "- " + strings.Repeat("   ", 8) +
		" |AB.C" + strings.Repeat(" ", 12) + "|\n"
	require.Equal(t, expected, text)
}

func TestTextFullRows(t *testing.T) {
	color.NoColor = true
	text := Text(Format([]byte("0123456789abcdefXYZ")), nil)
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "0x0000  30 31 32 33 34 35 36 37 - 38 39 61 62 63 64 65 66  |0123456789abcdef|", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "0x0010  58 59 5A "))
	require.True(t, strings.HasSuffix(lines[1], "|XYZ             |"))
	require.Equal(t, len(lines[0]), len(lines[1]))
}

func TestTextEmpty(t *testing.T) {
	require.Equal(t, "", Text(Format(nil), nil))
}

func TestTextMarks(t *testing.T) {
	color.NoColor = false
	defer func() { color.NoColor = true }()
	marked := []int{}
	text := Text(Format([]byte("ABCD")), func(index int) Style {
		if index == 1 {
			marked = append(marked, index)
			return StyleMatch
		}
		if index == 2 {
			return StyleSelected
		}
		return StyleNone
	})
	require.Equal(t, []int{1}, marked)
	require.Contains(t, text, matchColor.Sprint("42"))
	require.Contains(t, text, selectedColor.Sprint("C"))
	require.Contains(t, text, "41 ")
}
