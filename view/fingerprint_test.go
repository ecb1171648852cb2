package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	ViperSet("hash_key", "")
	a, err := Fingerprint([]byte("Hello"))
	require.Nil(t, err)
	b, err := Fingerprint([]byte("Hello"))
	require.Nil(t, err)
	require.Equal(t, a, b)
	c, err := Fingerprint([]byte("hello"))
	require.Nil(t, err)
	require.NotEqual(t, a, c)
	require.Len(t, FormatFingerprint(a), 16)
}

func TestFingerprintKey(t *testing.T) {
	defer ViperSet("hash_key", "")

	ViperSet("hash_key", "00112233")
	_, err := Fingerprint([]byte("Hello"))
	require.ErrorIs(t, err, ErrInvalidHashKey)

	ViperSet("hash_key", "not hex")
	_, err = Fingerprint([]byte("Hello"))
	require.ErrorIs(t, err, ErrInvalidHashKey)

	ViperSet("hash_key", "")
	a, err := Fingerprint([]byte("Hello"))
	require.Nil(t, err)
	ViperSet("hash_key", "0000000000000000000000000000000000000000000000000000000000000000")
	b, err := Fingerprint([]byte("Hello"))
	require.Nil(t, err)
	require.NotEqual(t, a, b)
}

func TestInfo(t *testing.T) {
	ViperSet("hash_key", "")
	ViperSet("no_humanize", false)
	v := New(make([]byte, 1024+512))
	info, err := v.Info("zeros.bin")
	require.Nil(t, err)
	require.Equal(t, "zeros.bin", info.Name)
	require.Equal(t, 1536, info.Size)
	require.Equal(t, "1.5K", info.DisplaySize)
	require.Equal(t, 96, info.Rows)
	require.Equal(t, "0x05F0", info.LastOffset)

	info, err = New(nil).Info("")
	require.Nil(t, err)
	require.Equal(t, 0, info.Rows)
	require.Equal(t, "", info.LastOffset)
}
