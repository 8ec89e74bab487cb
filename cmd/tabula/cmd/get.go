package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/softgrid/tabula/pkg/tabula"
)

var getByName bool

var getCmd = &cobra.Command{
	Use:   "get <file> <column> <row>",
	Short: "Print one cell, addressed by index or by header/label name",
	Long: `Print a single cell. The column argument resolves against the header
row, the row argument against the label column. An argument that parses as a
non-negative integer is treated as an index unless --names is set.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}
		cell, err := t.Cell(toSelector(args[1]), toSelector(args[2]))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cell)
		return nil
	},
}

// toSelector interprets a CLI argument as a numeric index when possible,
// falling back to name lookup. --names forces name lookup so that a header
// or label that happens to be numeric stays addressable.
func toSelector(arg string) tabula.Selector {
	if !getByName {
		if i, err := strconv.Atoi(arg); err == nil && i >= 0 {
			return tabula.Index(i)
		}
	}
	return tabula.Name(arg)
}

func init() {
	getCmd.Flags().BoolVar(&getByName, "names", false, "always resolve arguments as names, never as indexes")
	rootCmd.AddCommand(getCmd)
}
