package args

import (
	"fmt"

	"cspr/args"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	showSimple bool
	showJSON   bool
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Prints the supported arg types with examples.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if showSimple == showJSON {
			return errors.New("exactly one of --simple or --json must be provided")
		}
		out := cmd.OutOrStdout()
		if showSimple {
			fmt.Fprintln(out, args.SimpleArgExamples())
			return nil
		}
		fmt.Fprintln(out, args.JSONArgExamples())
		return nil
	},
}

func init() {
	examplesCmd.Flags().BoolVar(&showSimple, "simple", false, "Show the simple arg types and examples.")
	examplesCmd.Flags().BoolVar(&showJSON, "json", false, "Show the JSON arg types and examples.")
	cmd.AddCommand(examplesCmd)
}
