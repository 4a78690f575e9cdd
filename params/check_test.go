package params

import (
	"testing"

	"cspr/args"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckExactlyOne(t *testing.T) {
	entryPoint := Field{"entry_point", "call"}
	noEntryPoint := Field{"entry_point", ""}
	version := Field{"version", "2"}

	tests := []struct {
		name    string
		sources []Source
		err     string
	}{
		{
			"one given",
			[]Source{{Name: "a", Value: "x"}, {Name: "b"}},
			"",
		},
		{
			"none given",
			[]Source{{Name: "a"}, {Name: "b"}},
			`invalid argument 'ctx': Missing a required arg - exactly one of the following must be provided: ["a", "b"]`,
		},
		{
			"two given",
			[]Source{{Name: "b", Value: "2"}, {Name: "a", Value: "1"}, {Name: "c"}},
			"conflicting arguments passed 'ctx' [a=1, b=2]",
		},
		{
			"companion present",
			[]Source{{Name: "a", Value: "1", Requires: []Field{entryPoint}}},
			"",
		},
		{
			"companion missing",
			[]Source{{Name: "a", Value: "1", Requires: []Field{noEntryPoint}}, {Name: "b"}},
			`invalid argument 'ctx': Field a also requires following fields to be provided: ["entry_point"]`,
		},
		{
			"requires empty violated",
			[]Source{{Name: "path", Value: "/x", RequiresEmpty: []Field{version, noEntryPoint}}},
			"conflicting arguments passed 'ctx' [path=/x, version=2]",
		},
		{
			"requires empty holds",
			[]Source{{Name: "path", Value: "/x", RequiresEmpty: []Field{noEntryPoint}}},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckExactlyOne("ctx", tt.sources...)
			if tt.err == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.err)
		})
	}
}

func TestCheckExactlyOne_ErrorTypes(t *testing.T) {
	err := CheckExactlyOne("ctx", Source{Name: "a"})
	var missing *MissingArgError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, []string{"a"}, missing.Names)

	err = CheckExactlyOne("ctx", Source{Name: "a", Value: "1"}, Source{Name: "b", Value: "1"})
	require.Equal(t, args.KindConflict, args.KindOf(err))

	err = CheckExactlyOne("ctx", Source{Name: "a", Value: "1", Requires: []Field{{"b", ""}, {"c", "1"}}})
	var companion *MissingCompanionError
	require.True(t, errors.As(err, &companion))
	require.Equal(t, "a", companion.Field)
	require.Equal(t, []string{"b", "c"}, companion.Requires)
}
