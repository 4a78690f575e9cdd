package cli

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// StdinMarker is the flag value that reads a JSON args array from stdin.
const StdinMarker = "-"

// ReadArgsJSON returns value unless it is StdinMarker, in which case the
// JSON args are read from in. A terminal gets a prompt on stderr first.
func ReadArgsJSON(value string, in *os.File) (string, error) {
	if value != StdinMarker {
		return value, nil
	}
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		fmt.Fprintln(os.Stderr, "Paste or type the JSON args array below.")
		fmt.Fprintln(os.Stderr, "When you are finished, press Ctrl+D.")
	}
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return "", errors.Wrap(err, "error reading JSON args from stdin")
	}
	return strings.TrimSpace(string(data)), nil
}
