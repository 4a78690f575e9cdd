package params

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cspr/args"
)

// Field is a named companion value of a Source.
type Field struct {
	Name  string
	Value string
}

func (f Field) set() bool {
	return f.Value != ""
}

func (f Field) String() string {
	return fmt.Sprintf("%s=%s", f.Name, f.Value)
}

// Source is one of a group of mutually exclusive params. When it is the one
// given, every Requires field must be set and every RequiresEmpty field must
// be empty.
type Source struct {
	Name          string
	Value         string
	Requires      []Field
	RequiresEmpty []Field
}

// MissingArgError reports that none of a group of sources was given.
type MissingArgError struct {
	Context string
	Names   []string
}

func (e *MissingArgError) Error() string {
	return fmt.Sprintf(
		"invalid argument '%s': Missing a required arg - exactly one of the following must be provided: %s",
		e.Context,
		quoteList(e.Names),
	)
}

// MissingCompanionError reports a source given without a field it requires.
type MissingCompanionError struct {
	Context  string
	Field    string
	Requires []string
}

func (e *MissingCompanionError) Error() string {
	return fmt.Sprintf(
		"invalid argument '%s': Field %s also requires following fields to be provided: %s",
		e.Context,
		e.Field,
		quoteList(e.Requires),
	)
}

// CheckExactlyOne checks that exactly one of sources is set and that its
// companion rules hold. Conflicts are reported as *args.ConflictError with
// the offending name=value pairs sorted.
func CheckExactlyOne(context string, sources ...Source) error {
	var given []Source
	for _, s := range sources {
		if s.Value != "" {
			given = append(given, s)
		}
	}

	switch len(given) {
	case 0:
		names := make([]string, len(sources))
		for i, s := range sources {
			names[i] = s.Name
		}
		return &MissingArgError{Context: context, Names: names}
	case 1:
	default:
		conflicting := make([]string, len(given))
		for i, s := range given {
			conflicting[i] = Field{Name: s.Name, Value: s.Value}.String()
		}
		sort.Strings(conflicting)
		return &args.ConflictError{Context: context, Args: conflicting}
	}

	source := given[0]
	for _, req := range source.Requires {
		if req.set() {
			continue
		}
		names := make([]string, len(source.Requires))
		for i, r := range source.Requires {
			names[i] = r.Name
		}
		return &MissingCompanionError{Context: context, Field: source.Name, Requires: names}
	}

	var conflicting []string
	for _, f := range source.RequiresEmpty {
		if f.set() {
			conflicting = append(conflicting, f.String())
		}
	}
	if len(conflicting) == 0 {
		return nil
	}
	conflicting = append(conflicting, Field{Name: source.Name, Value: source.Value}.String())
	sort.Strings(conflicting)
	return &args.ConflictError{Context: context, Args: conflicting}
}

func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
