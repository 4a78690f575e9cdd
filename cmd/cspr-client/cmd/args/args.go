package args

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "args",
	Short: "Commands related to encoding deploy arguments.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}
