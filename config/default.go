package config

import (
	"bytes"
	"io"
	"os"
	"text/template"

	"cspr/log"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel:    log.LevelWarn.String(),
	Format:      string(log.FormatText),
	ChainName:   "casper",
	NodeAddress: "http://localhost:7777",
}

const defaultConfigTemplateText = `# cspr-client Config File

# Sets the log level. Logs are written to stderr. Can be one of the
# following values:
# - fatal
# - error
# - warn
# - info
# - debug
# - trace
log_level = "{{.LogLevel}}"

# Sets the output format of commands and logs. Can be "text" or "json".
format = "{{.Format}}"

# Sets the name of the chain deploys are built for.
chain_name = "{{.ChainName}}"

# Sets the address of the node's JSON-RPC endpoint.
node_address = "{{.NodeAddress}}"
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(ConfigPath(homeDir), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

// LoadOrDefault reads the config file in homeDir. A missing file yields the
// defaults.
func LoadOrDefault(homeDir string) (*Config, error) {
	if _, err := os.Stat(ConfigPath(homeDir)); os.IsNotExist(err) {
		cfg := DefaultConfig
		return &cfg, nil
	}
	return ReadConfigFile(homeDir)
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(ConfigPath(homeDir), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
