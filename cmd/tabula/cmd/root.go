// Package cmd implements the tabula command line interface.
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/softgrid/tabula/pkg/tabula"
)

var (
	verbose bool
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "tabula",
	Short: "Inspect and convert delimited table files",
	Long: `tabula reads the comma-delimited table dialect used for game data
sheets (quoted fields, // comment lines, blank-row filtering) and exposes
the result as a rectangular grid addressable by header and label names.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	log.SetOutput(os.Stderr)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadTable reads a file and parses it, naming the table after the file's
// base name without extension. File I/O lives here in the CLI; the library
// core only ever sees text.
func loadTable(path string) (*tabula.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	log.WithFields(logrus.Fields{
		"table": name,
		"bytes": len(data),
	}).Debug("parsing table file")
	return tabula.Parse(name, string(data))
}
