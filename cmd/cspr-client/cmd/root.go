package cmd

import (
	"fmt"
	"os"

	"cspr/cli"
	"cspr/config"
	"cspr/cmd/cspr-client/cmd/args"
	"cspr/log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "cspr-client",
	Short:         "Builds and inspects Casper deploy arguments.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		homeDir, err := cli.GetHomeDir(cmd)
		if err != nil {
			return err
		}
		cfg, err := config.LoadOrDefault(homeDir)
		if err != nil {
			return errors.Wrap(err, "error loading config")
		}
		if cmd.Flags().Changed(cli.FlagLogLevel) {
			cfg.LogLevel, _ = cmd.Flags().GetString(cli.FlagLogLevel)
		}
		if cmd.Flags().Changed(cli.FlagFormat) {
			cfg.Format, _ = cmd.Flags().GetString(cli.FlagFormat)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		// subcommands read the effective format from the flag
		if err := cmd.Flags().Set(cli.FlagFormat, cfg.Format); err != nil {
			return err
		}

		level, err := log.NewLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		if err := log.SetFormat(log.Format(cfg.Format)); err != nil {
			return err
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.cspr-client", "Home directory for the client's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, cli.FormatText, "Output format. Can be text or json.")
	rootCmd.PersistentFlags().String(cli.FlagLogLevel, config.DefaultConfig.LogLevel, "Log level.")
	args.AddCmd(rootCmd)
}
