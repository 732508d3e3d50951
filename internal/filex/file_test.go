package filex

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreviewDir_CreatesDirectory(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	got, err := PreviewDir()
	require.NoError(t, err)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestPreviewDir_Idempotent(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	first, err := PreviewDir()
	require.NoError(t, err)

	second, err := PreviewDir()
	require.NoError(t, err)
	require.Equal(t, first, second)
}
