package signature

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSaveSecretKeyCreatesMissingParentFolder exercises the
// CreateSecureFolder path: a save into a directory that does not exist yet
// must create it rather than fail.
func TestSaveSecretKeyCreatesMissingParentFolder(t *testing.T) {
	params := testParams(t, 4)
	_, sk, err := GenerateKeyPair(rand.Reader, params)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "nested", "keys")
	path := filepath.Join(dir, "hashsig.secret")

	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, SaveSecretKey(sk, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.False(t, info.IsDir())
}

func TestSaveLoadSecretKeyRoundTrip(t *testing.T) {
	params := testParams(t, 4)
	pk, sk, err := GenerateKeyPair(rand.Reader, params)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hashsig.secret")
	require.NoError(t, SaveSecretKey(sk, path))

	loaded, err := LoadSecretKey(path)
	require.NoError(t, err)
	require.Equal(t, sk.Seed, loaded.Seed)
	require.Equal(t, sk.Parameter, loaded.Parameter)

	loaded.Params = params
	require.NoError(t, RebuildLeafHashes(loaded))

	message := testMessage(0x77)
	sig, err := Sign(loaded, 0, message)
	require.NoError(t, err)
	require.True(t, Verify(pk, 0, message, sig))
}
