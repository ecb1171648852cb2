package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyWindow(t *testing.T) {
	data := []byte("0123456789")

	window, err := applyWindow(data, "", "")
	require.Nil(t, err)
	require.Equal(t, data, window)

	window, err = applyWindow(data, "2", "3")
	require.Nil(t, err)
	require.Equal(t, []byte("234"), window)

	window, err = applyWindow(data, "0x8", "1K")
	require.Nil(t, err)
	require.Equal(t, []byte("89"), window)

	window, err = applyWindow(data, "10", "")
	require.Nil(t, err)
	require.Len(t, window, 0)

	_, err = applyWindow(data, "11", "")
	require.NotNil(t, err)

	_, err = applyWindow(data, "bogus", "")
	require.NotNil(t, err)

	_, err = applyWindow(data, "0", "bogus")
	require.NotNil(t, err)

	_, err = applyWindow(data, "0", "9000P")
	require.NotNil(t, err)

	_, err = applyWindow(data, "9000P", "")
	require.NotNil(t, err)

	window, err = applyWindow(data, "4", "8P")
	require.Nil(t, err)
	require.Equal(t, []byte("456789"), window)
}

func TestCommands(t *testing.T) {
	names := []string{}
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"dump", "search", "select", "export", "info", "restore", "mount"} {
		require.Contains(t, names, name)
	}
	require.NotNil(t, searchCmd.PersistentFlags().Lookup("mode"))
	require.NotNil(t, selectCmd.PersistentFlags().Lookup("output"))
}

func TestOptionKey(t *testing.T) {
	require.Equal(t, "memview.no_humanize", optionKey("no-humanize"))
	require.Equal(t, "memview.debug", optionKey("debug"))
}
