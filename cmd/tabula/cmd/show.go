package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/softgrid/tabula/pkg/tabula"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Pretty-print a table file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}
		if showRaw {
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		}
		if t.Height() == 0 {
			log.WithField("table", t.Name()).Debug("table is empty, nothing to show")
			return nil
		}

		w := tablewriter.NewWriter(cmd.OutOrStdout())
		w.SetHeader(t.Headers())
		w.SetAutoFormatHeaders(false)
		w.SetAutoWrapText(false)
		for row := 1; row < t.Height(); row++ {
			cells, err := t.Row(tabula.Index(row))
			if err != nil {
				return err
			}
			w.Append(cells)
		}
		w.Render()
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the diagnostic text rendering instead of a framed table")
	rootCmd.AddCommand(showCmd)
}
