package args

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cspr/args"
	"cspr/cli"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

var testRoot = newTestRoot()

func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "cspr-client", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String(cli.FlagFormat, cli.FormatJSON, "")
	AddCmd(root)
	return root
}

func resetFlags() {
	sessionArgs = nil
	sessionArgsJSON = ""
	paymentArgs = nil
	paymentArgsJSON = ""
	paymentAmount = ""
	showSimple = false
	showJSON = false
	for _, c := range []*cobra.Command{encodeCmd, examplesCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
		})
	}
}

func run(t *testing.T, argv ...string) (string, error) {
	resetFlags()
	var buf bytes.Buffer
	testRoot.SetOutput(&buf)
	testRoot.SetArgs(argv)
	err := testRoot.Execute()
	return buf.String(), err
}

func decodeLines(t *testing.T, out string) []map[string]interface{} {
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestEncode(t *testing.T) {
	out, err := run(t, "args", "encode",
		"--session-arg", "target:account_hash='account-hash-0101010101010101010101010101010101010101010101010101010101010101'",
		"--session-arg", "note:string='a, b'",
		"--payment-amount", "1000",
	)
	require.NoError(t, err)
	lines := decodeLines(t, out)
	require.Len(t, lines, 3)
	require.Equal(t, "target", lines[0]["name"])
	require.Equal(t, "note", lines[1]["name"])
	require.Equal(t, "04000000612c2062", lines[1]["bytes"])
	require.Equal(t, "payment", lines[2]["slot"])
	require.Equal(t, "amount", lines[2]["name"])
	require.Equal(t, "02e803", lines[2]["bytes"])

	out, err = run(t, "args", "encode",
		"--session-args-json", `[{"name":"flag","type":"Bool","value":true}]`,
	)
	require.NoError(t, err)
	lines = decodeLines(t, out)
	require.Len(t, lines, 1)
	require.Equal(t, "01", lines[0]["bytes"])
}

func TestEncode_Errors(t *testing.T) {
	_, err := run(t, "args", "encode",
		"--session-arg", "a:u8='1'",
		"--session-args-json", `[{"name":"a","type":"U8","value":1}]`,
	)
	require.Equal(t, args.KindConflict, args.KindOf(err))

	_, err = run(t, "args", "encode",
		"--payment-amount", "10",
		"--payment-arg", "a:u8='1'",
	)
	require.Equal(t, args.KindConflict, args.KindOf(err))
	require.EqualError(t, err, "conflicting arguments passed 'parse_payment_info' [payment_amount=10, payment_args=a:u8='1']")

	_, err = run(t, "args", "encode", "--payment-amount", "ten")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid payment params")

	_, err = run(t, "args", "encode", "--session-arg", "a:u8='256'")
	require.Equal(t, args.KindRange, args.KindOf(err))

	_, err = run(t, "args", "encode", "--session-args-json", "-", "--payment-args-json", "-")
	require.Error(t, err)
}

func TestExamples(t *testing.T) {
	out, err := run(t, "args", "examples", "--simple")
	require.NoError(t, err)
	require.Equal(t, args.SimpleArgExamples()+"\n", out)

	out, err = run(t, "args", "examples", "--json")
	require.NoError(t, err)
	require.Equal(t, args.JSONArgExamples()+"\n", out)

	_, err = run(t, "args", "examples")
	require.Error(t, err)
	_, err = run(t, "args", "examples", "--simple", "--json")
	require.Error(t, err)
}
