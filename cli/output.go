package cli

import (
	"encoding/json"
	"io"
	"strconv"

	"cspr/cltype"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// ArgSlot is a labelled set of runtime args, e.g. the session args.
type ArgSlot struct {
	Label string
	Args  cltype.RuntimeArgs
}

type argJSON struct {
	Slot   string        `json:"slot"`
	Index  int           `json:"index"`
	Name   string        `json:"name"`
	CLType cltype.CLType `json:"cl_type"`
	Bytes  string        `json:"bytes"`
}

// PrintArgs writes every arg of slots to w, one JSON object per line when
// format is FormatJSON and as a table otherwise.
func PrintArgs(w io.Writer, format string, slots ...ArgSlot) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		for _, slot := range slots {
			for i, arg := range slot.Args.Args() {
				if err := encoder.Encode(&argJSON{
					Slot:   slot.Label,
					Index:  i,
					Name:   arg.Name,
					CLType: arg.Value.Type,
					Bytes:  arg.Value.Hex(),
				}); err != nil {
					return err
				}
			}
		}
	case FormatText, "":
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{
			"Slot",
			"#",
			"Name",
			"Type",
			"Bytes",
		})
		table.SetAutoWrapText(false)
		for _, slot := range slots {
			for i, arg := range slot.Args.Args() {
				table.Append([]string{
					slot.Label,
					strconv.Itoa(i),
					arg.Name,
					arg.Value.Type.String(),
					arg.Value.Hex(),
				})
			}
		}
		table.Render()
	default:
		return errors.Errorf("invalid output format %q", format)
	}
	return nil
}
