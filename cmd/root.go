// =============================================================================
// dobby - Root Command
// =============================================================================
//
// Base command of the CLI. All subcommands (transform, validate, version)
// hang off this command and share its persistent flags.
//
// COMMAND STRUCTURE:
//   dobby
//   ├── transform  (convert an enrollment export to the SN upload format)
//   ├── validate   (run the pipeline for diagnostics only)
//   └── version
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dobby-cli/dobby/internal/config"
	"github.com/dobby-cli/dobby/pkg/logger"
)

// cfgFile is the path to the YAML configuration file.
var cfgFile string

// verbose enables debug-level logging.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dobby",
	Short: "Transform student enrollment exports for SN system upload",
	Long: `dobby converts student enrollment exports from the wide source layout
(74+ columns, semicolon-separated) into the fixed 29-column format required
by the SN system, flagging data-quality problems along the way.

The transformation:
  - Cleans and uppercases addresses, mapping commune codes to names
  - Composes and validates RUTs (IPE ranges are exempt from check digits)
  - Splits full names into first and second names
  - Converts dates to YYYY-MM-DD and normalizes phone numbers
  - Stamps run metadata (RBD, year, level, location)

Validation problems never drop rows: every input row produces exactly one
output row, and all findings are reported at the end of the run.

Example usage:
  dobby transform data/alumnos_ser.csv -o data/upload-sn.csv
  dobby transform data/alumnos_ser.xlsx --rbd 123 --year 2026
  dobby validate data/alumnos_ser.csv`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"dobby.yaml",
		"Path to the YAML configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// newLogger builds the run logger from the persistent flags.
func newLogger() logger.Logger {
	return logger.New(logger.Config{Verbose: verbose})
}

// loadConfig loads the run configuration. An explicitly passed --config
// file must exist; the implicit default falls back to built-in defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Flags().Changed("config") {
		return config.Load(cfgFile)
	}
	return config.LoadOrDefault(cfgFile)
}
