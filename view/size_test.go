package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeParse(t *testing.T) {

	size, err := SizeParse("123")
	require.Nil(t, err)
	require.Equal(t, int64(123), size)

	size, err = SizeParse("1K")
	require.Nil(t, err)
	require.Equal(t, int64(1024), size)

	size, err = SizeParse("1.5k")
	require.Nil(t, err)
	require.Equal(t, int64(1024+(1024/2)), size)

	size, err = SizeParse("1MB")
	require.Nil(t, err)
	require.Equal(t, int64(1024*1024), size)

	G := int64(1024 * 1024 * 1024)
	size, err = SizeParse("1.25G")
	require.Nil(t, err)
	require.Equal(t, G+G/4, size)

	size, err = SizeParse(".1K")
	require.Nil(t, err)
	require.Equal(t, int64(102), size)

	size, err = SizeParse("1PB")
	require.Nil(t, err)
	require.Equal(t, int64(1024*1024*1024*1024*1024), size)

	size, err = SizeParse("0x0010")
	require.Nil(t, err)
	require.Equal(t, int64(16), size)

	size, err = SizeParse("0x1A40")
	require.Nil(t, err)
	require.Equal(t, int64(0x1A40), size)
}

func TestSizeParseErrors(t *testing.T) {
	_, err := SizeParse("")
	require.NotNil(t, err)
	_, err = SizeParse("12Q")
	require.NotNil(t, err)
	_, err = SizeParse("0xZZ")
	require.NotNil(t, err)
	_, err = SizeParse("1.2.3")
	require.NotNil(t, err)

	// larger than int64
	_, err = SizeParse("9000P")
	require.NotNil(t, err)
	_, err = SizeParse("99999999999999999999")
	require.NotNil(t, err)
	_, err = SizeParse("0x10000000000000000")
	require.NotNil(t, err)

	size, err := SizeParse("8P")
	require.Nil(t, err)
	require.Equal(t, 8*PB, size)
}

func TestSizeFormat(t *testing.T) {
	ViperSet("no_humanize", false)

	require.Equal(t, "0", FormatSize(int64(0)))
	require.Equal(t, "123", FormatSize(int64(123)))
	require.Equal(t, "1K", FormatSize(int64(1024)))
	require.Equal(t, "2K", FormatSize(int64(2048)))
	require.Equal(t, "1.25G", FormatSize(int64(1342177280)))
	require.Equal(t, "1K", FormatSize(int64(1025)))
	require.Equal(t, "1.25K", FormatSize(int64(1024+256)))
	require.Equal(t, "1.5K", FormatSize(int64(1024+512)))

	ViperSet("no_humanize", true)
	defer ViperSet("no_humanize", false)
	require.Equal(t, "1536", FormatSize(int64(1024+512)))
}
