package args

import (
	"context"
	"os"

	"cspr/args"
	"cspr/cli"
	"cspr/cltype"
	"cspr/params"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	sessionArgs     []string
	sessionArgsJSON string
	paymentArgs     []string
	paymentArgsJSON string
	paymentAmount   string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encodes session and payment args.",
	Long: `Encodes session and payment args and prints each arg's name, type and
serialized bytes. Args are given either as repeated simple args or as one JSON
array per slot. Pass - as the JSON value to read it from stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if sessionArgsJSON == cli.StdinMarker && paymentArgsJSON == cli.StdinMarker {
			return errors.New("only one of the JSON args flags can be read from stdin")
		}
		sessionJSON, err := cli.ReadArgsJSON(sessionArgsJSON, os.Stdin)
		if err != nil {
			return err
		}
		paymentJSON, err := cli.ReadArgsJSON(paymentArgsJSON, os.Stdin)
		if err != nil {
			return err
		}

		slots := []args.Slot{{Context: "session", Simple: sessionArgs, JSON: sessionJSON}}
		if paymentAmount == "" {
			slots = append(slots, args.Slot{Context: "payment", Simple: paymentArgs, JSON: paymentJSON})
		}
		assembled, err := args.AssembleSlots(context.Background(), slots...)
		if err != nil {
			return err
		}

		var payment cltype.RuntimeArgs
		if paymentAmount == "" {
			payment = assembled[1]
		} else {
			item, err := params.Payment(params.PaymentStrParams{
				Amount:     paymentAmount,
				ArgsSimple: paymentArgs,
				ArgsJSON:   paymentJSON,
			})
			if err != nil {
				return err
			}
			payment = item.Args
		}

		format, _ := cmd.Flags().GetString(cli.FlagFormat)
		return cli.PrintArgs(
			cmd.OutOrStdout(),
			format,
			cli.ArgSlot{Label: "session", Args: assembled[0]},
			cli.ArgSlot{Label: "payment", Args: payment},
		)
	},
}

func init() {
	encodeCmd.Flags().StringArrayVar(&sessionArgs, cli.FlagSessionArg, nil, "Session arg as name:type='value'. Repeatable.")
	encodeCmd.Flags().StringVar(&sessionArgsJSON, cli.FlagSessionArgsJSON, "", "Session args as a JSON array.")
	encodeCmd.Flags().StringArrayVar(&paymentArgs, cli.FlagPaymentArg, nil, "Payment arg as name:type='value'. Repeatable.")
	encodeCmd.Flags().StringVar(&paymentArgsJSON, cli.FlagPaymentArgsJSON, "", "Payment args as a JSON array.")
	encodeCmd.Flags().StringVar(&paymentAmount, cli.FlagPaymentAmount, "", "Amount of motes for the standard payment.")
	cmd.AddCommand(encodeCmd)
}
