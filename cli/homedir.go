package cli

import (
	"cspr/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// GetHomeDir returns the expanded value of the home flag.
func GetHomeDir(cmd *cobra.Command) (string, error) {
	raw, err := cmd.Flags().GetString(FlagHome)
	if err != nil {
		return "", err
	}
	return config.ExpandHomePath(raw)
}

// InitHomeDir creates the home directory named by the home flag and returns
// the path of its config file. An existing directory is an error.
func InitHomeDir(cmd *cobra.Command) (string, error) {
	homeDir, err := GetHomeDir(cmd)
	if err != nil {
		return "", err
	}
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.Errorf("home directory %s is already initialized", homeDir)
	}
	if err := config.InitHomeDir(homeDir); err != nil {
		return "", err
	}
	return config.ConfigPath(homeDir), nil
}
