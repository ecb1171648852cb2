package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rstms/memview/dump"
)

func TestViperSetDefaults(t *testing.T) {
	ViperSetDefaults()
	require.Equal(t, int64(dump.DefaultConcurrentThreshold), ViperGetInt64("concurrent_threshold"))
	require.Equal(t, "info", ViperGetString("log_level"))

	ViperSet("concurrent_threshold", 4096)
	defer ViperSet("concurrent_threshold", dump.DefaultConcurrentThreshold)
	require.Equal(t, int64(4096), ViperGetInt64("concurrent_threshold"))
}
