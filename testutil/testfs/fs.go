package testfs

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const tempPrefix = "csprtest_"

func NewTempDir(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", tempPrefix)
	require.NoError(t, err)
	return dir, func() {
		require.NoError(t, os.RemoveAll(dir))
	}
}

func NewTempFile(t *testing.T) (*os.File, func()) {
	f, err := ioutil.TempFile("", tempPrefix)
	require.NoError(t, err)
	return f, func() {
		require.NoError(t, f.Close())
		require.NoError(t, os.Remove(f.Name()))
	}
}

// WriteTempFile writes data to a new temp file and returns its path.
func WriteTempFile(t *testing.T, data []byte) (string, func()) {
	f, done := NewTempFile(t)
	_, err := f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	return f.Name(), done
}
