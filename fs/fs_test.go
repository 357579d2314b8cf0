package fs

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSecureDirAlreadyHere(t *testing.T) {
	tmpPath := path.Join(os.TempDir(), "config")
	os.Mkdir(tmpPath, 0740)
	defer os.RemoveAll(tmpPath)
	fpath := CreateSecureFolder(tmpPath)
	require.NotNil(t, fpath)

	npath := CreateSecureFolder(tmpPath)
	require.Equal(t, fpath, npath)
	b, e := Exists(npath)
	require.True(t, b)
	require.NoError(t, e)
	b, e = Exists(path.Join(tmpPath, "blou"))
	require.False(t, b)
	require.NoError(t, e)

	file := path.Join(tmpPath, "secured")
	f, err := CreateSecureFile(file)
	require.NotNil(t, f)
	require.NoError(t, err)
	f.Close()

	info, err := os.Stat(file)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(rwFilePermission), info.Mode().Perm())
}

func TestCreateSecureFolderMakesMissingDir(t *testing.T) {
	tmpPath := path.Join(os.TempDir(), "hashsig-fs-test-missing")
	defer os.RemoveAll(tmpPath)

	exists, err := Exists(tmpPath)
	require.NoError(t, err)
	require.False(t, exists)

	got := CreateSecureFolder(tmpPath)
	require.Equal(t, tmpPath, got)

	exists, err = Exists(tmpPath)
	require.NoError(t, err)
	require.True(t, exists)
}
