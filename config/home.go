package config

import (
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const ConfigFilename = "config.toml"

// ExpandHomePath resolves a leading ~ in p to the user's home directory.
func ExpandHomePath(p string) (string, error) {
	res, err := homedir.Expand(p)
	if err != nil {
		return "", errors.Wrapf(err, "error expanding home path %s", p)
	}
	return res, nil
}

func ConfigPath(homePath string) string {
	return path.Join(homePath, ConfigFilename)
}

func HomeDirExists(p string) (bool, error) {
	stat, err := os.Stat(p)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	if !stat.IsDir() {
		return false, errors.New("home dir path exists, but is a file")
	}
	return true, nil
}

func EnsureHomeDir(p string) error {
	exists, err := HomeDirExists(p)
	if err != nil {
		return err
	}
	if !exists {
		return errors.New("home directory does not exist - try running cspr-client init")
	}
	return nil
}

// InitHomeDir creates the home directory with a default config file.
func InitHomeDir(homePath string) error {
	if err := os.MkdirAll(homePath, 0700); err != nil {
		return errors.Wrap(err, "error creating home directory")
	}
	return WriteDefaultConfigFile(homePath)
}
