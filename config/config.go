package config

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=trace debug info warn error fatal"`
	Format      string `mapstructure:"format" validate:"oneof=text json"`
	ChainName   string `mapstructure:"chain_name" validate:"required"`
	NodeAddress string `mapstructure:"node_address" validate:"required,url"`
}

var configValidator = validator.New()

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	config.fillDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// fillDefaults sets every field left out of the file to its default.
func (c *Config) fillDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultConfig.LogLevel
	}
	if c.Format == "" {
		c.Format = DefaultConfig.Format
	}
	if c.ChainName == "" {
		c.ChainName = DefaultConfig.ChainName
	}
	if c.NodeAddress == "" {
		c.NodeAddress = DefaultConfig.NodeAddress
	}
}
