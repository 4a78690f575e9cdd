package cmd

import (
	"bytes"
	"path"
	"testing"

	"cspr/config"
	"cspr/testutil/testcrypto"
	"cspr/testutil/testfs"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, argv ...string) (string, error) {
	var buf bytes.Buffer
	rootCmd.SetOutput(&buf)
	rootCmd.SetArgs(argv)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAccountAddress(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	out, err := execute(t, "--home", dir, "account-address", "--public-key", testcrypto.Ed25519PublicKeyHex)
	require.NoError(t, err)
	require.Equal(t, "account-hash-b6c0e5c9ee25f43f57e577b5821688b9ac164eb7c4c08a24d43d1806ac721342\n", out)

	_, err = execute(t, "--home", dir, "account-address", "--public-key", "05abcd")
	require.Error(t, err)
}

func TestInit(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()
	home := path.Join(dir, "client")

	out, err := execute(t, "--home", home, "init")
	require.NoError(t, err)
	require.Contains(t, out, home)

	cfg, err := config.ReadConfigFile(home)
	require.NoError(t, err)
	require.EqualValues(t, config.DefaultConfig, *cfg)

	_, err = execute(t, "--home", home, "init")
	require.Error(t, err)
}

func TestRoot_InvalidSettings(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	_, err := execute(t, "--home", dir, "--log-level", "loud", "version")
	require.Error(t, err)
	_, err = execute(t, "--home", dir, "--log-level", "trace", "--format", "yaml", "version")
	require.Error(t, err)

	out, err := execute(t, "--home", dir, "--format", "text", "version")
	require.NoError(t, err)
	require.Contains(t, out, "cspr-client")
}
