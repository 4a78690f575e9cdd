package cmd

import (
	"fmt"

	"cspr/cli"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes the client's home directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := cli.InitHomeDir(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully initialized cspr-client. Config written to %s.\n", cfgPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
