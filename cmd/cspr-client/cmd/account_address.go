package cmd

import (
	"fmt"

	"cspr/cli"
	"cspr/crypto"
	"cspr/types"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var accountAddressCmd = &cobra.Command{
	Use:   "account-address",
	Short: "Prints the account hash of a public key.",
	Long: `Prints the formatted account hash of a public key given as hex with a
leading algorithm tag, e.g. 01<ed25519 key> or 02<compressed secp256k1 key>.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString(cli.FlagPublicKey)
		pub, err := crypto.NewPublicKeyFromHex(in)
		if err != nil {
			return errors.Wrap(err, "invalid public key")
		}
		fmt.Fprintln(cmd.OutOrStdout(), types.NewAccountHash(pub).String())
		return nil
	},
}

func init() {
	accountAddressCmd.Flags().String(cli.FlagPublicKey, "", "Hex-encoded public key.")
	_ = accountAddressCmd.MarkFlagRequired(cli.FlagPublicKey)
	rootCmd.AddCommand(accountAddressCmd)
}
