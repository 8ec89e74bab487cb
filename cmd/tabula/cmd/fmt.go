package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Print a table file in canonical serialized form",
	Long: `Parse a table file and print its canonical serialization: every cell
comma-terminated, embedded quotes doubled, comment and blank lines dropped.
With -w the file is rewritten in place instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}
		out := t.Serialize()
		if out != "" {
			out += "\n"
		}
		if fmtWrite {
			if err := os.WriteFile(args[0], []byte(out), 0o644); err != nil {
				return err
			}
			log.WithField("file", args[0]).Debug("rewrote file in canonical form")
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite the file instead of printing")
	rootCmd.AddCommand(fmtCmd)
}
