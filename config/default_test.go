package config

import (
	"bytes"
	"path"
	"strings"
	"testing"

	"cspr/testutil/testfs"

	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultConfigFile(t *testing.T) {
	generatedCfg := GenerateDefaultConfigFile()
	cfg, err := ReadConfig(bytes.NewReader(generatedCfg))
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(strings.NewReader(`log_level = "debug"
format = "json"
`))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, DefaultConfig.ChainName, cfg.ChainName)

	tests := []string{
		`log_level = "loud"`,
		`format = "yaml"`,
		`node_address = "not a url"`,
		`log_level = `,
	}
	for _, in := range tests {
		_, err := ReadConfig(strings.NewReader(in))
		require.Error(t, err, in)
	}
}

func TestHomeDir(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()
	home := path.Join(dir, "home")

	require.Error(t, EnsureHomeDir(home))
	cfg, err := LoadOrDefault(home)
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)

	require.NoError(t, InitHomeDir(home))
	require.NoError(t, EnsureHomeDir(home))
	cfg, err = ReadConfigFile(home)
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)

	exists, err := HomeDirExists(ConfigPath(home))
	require.Error(t, err)
	require.False(t, exists)
}

func TestExpandHomePath(t *testing.T) {
	p, err := ExpandHomePath("/var/cspr")
	require.NoError(t, err)
	require.Equal(t, "/var/cspr", p)

	p, err = ExpandHomePath("~/.cspr-client")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(p, "/.cspr-client"))
	require.False(t, strings.HasPrefix(p, "~"))
}
