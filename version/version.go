package version

import "fmt"

// Set at build time with -ldflags "-X cspr/version.GitTag=...".
var GitCommit string
var GitTag string

// String renders the tag and commit the binary was built from.
func String() string {
	tag, commit := GitTag, GitCommit
	if tag == "" {
		tag = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("%s (%s)", tag, commit)
}
