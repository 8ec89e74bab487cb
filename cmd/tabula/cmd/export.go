package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/softgrid/tabula/pkg/tabula"
)

var (
	exportImporter string
	exportOptsFile string
	exportOpts     []string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Convert a table with a registered importer and print JSON",
	Long: `Run a registered importer over a parsed table and print the resulting
object as JSON. Importer options come from a YAML options file and/or
repeated --opt key=value flags; flags win on duplicate keys.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := loadTable(args[0])
		if err != nil {
			return err
		}
		imp, ok := tabula.LookupImporter(exportImporter)
		if !ok {
			return fmt.Errorf("unknown importer %q (registered: %s)",
				exportImporter, strings.Join(tabula.Importers(), ", "))
		}
		opts, err := collectOptions(exportOptsFile, exportOpts)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"importer": imp.Name(),
			"table":    t.Name(),
			"options":  opts,
		}).Debug("running importer")
		obj, err := imp.Import(t, opts)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(obj)
	},
}

// collectOptions merges the YAML options file (if any) with --opt flags.
func collectOptions(file string, flags []string) (tabula.Options, error) {
	opts := tabula.Options{}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return nil, fmt.Errorf("parsing options file %s: %w", file, err)
		}
	}
	for _, kv := range flags {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			return nil, fmt.Errorf("malformed --opt %q, want key=value", kv)
		}
		opts[key] = value
	}
	return opts, nil
}

func init() {
	exportCmd.Flags().StringVar(&exportImporter, "importer", "records", "registered importer to run")
	exportCmd.Flags().StringVar(&exportOptsFile, "options", "", "YAML file of importer options")
	exportCmd.Flags().StringArrayVar(&exportOpts, "opt", nil, "importer option as key=value (repeatable)")
	rootCmd.AddCommand(exportCmd)
}
