package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCacheEmptyDir(t *testing.T) {
	files, err := ListCache(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListCacheMissingDir(t *testing.T) {
	_, err := ListCache(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestListCacheReportsFilesWithSizes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vocab.bpe"), []byte("abcdef"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	files, err := ListCache(dir)
	require.NoError(t, err)
	require.Len(t, files, 1, "directories are not cache files")
	assert.Equal(t, "vocab.bpe", files[0].Name)
	assert.Equal(t, int64(6), files[0].Size)
}
