// =============================================================================
// dobby - Transform Command
// =============================================================================
//
// Defines the 'transform' command: runs the full pipeline over one input
// file and writes the SN upload file.
//
// PIPELINE:
//   1. Load configuration (file + flag overrides)
//   2. Parse the input (CSV or XLSX, dispatched on extension)
//   3. Run the transformation pipeline
//   4. Print the run report (and optionally write it as JSON)
//   5. Write the output file (skipped with --dry-run)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dobby-cli/dobby/internal/config"
	"github.com/dobby-cli/dobby/internal/csvparser"
	"github.com/dobby-cli/dobby/internal/csvwriter"
	"github.com/dobby-cli/dobby/internal/report"
	"github.com/dobby-cli/dobby/internal/transformer"
	"github.com/dobby-cli/dobby/internal/xlsxparser"
	"github.com/dobby-cli/dobby/pkg/utils"
)

var (
	outputFile     string
	rbd            int
	year           int
	local          string
	dryRun         bool
	skipValidation bool
	reportFile     string
)

var transformCmd = &cobra.Command{
	Use:   "transform <input-file>",
	Short: "Transform an enrollment export to the SN upload format",
	Long: `Transform a student enrollment export (CSV or XLSX) from the source
format to the 29-column SN system format.

The input must contain the required source columns; a missing column aborts
the run before any output is produced. All other data problems are reported
as issues while the affected rows continue through the pipeline.

Example usage:
  dobby transform data/alumnos_ser.csv
  dobby transform data/alumnos_ser.csv -o data/upload-sn.csv
  dobby transform input.csv --rbd 123 --year 2026 --verbose
  dobby transform input.csv --dry-run --report reports/run.json`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVarP(&outputFile, "output", "o", "",
		"Output CSV file path (default: data/YYYY-MM-DD-HHMM-alumnos-upload-sn.csv)")
	transformCmd.Flags().IntVar(&rbd, "rbd", 574, "School RBD identifier")
	transformCmd.Flags().IntVar(&year, "year", 2025, "Academic year")
	transformCmd.Flags().StringVar(&local, "local", "Principal", "School location")
	transformCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Run the pipeline and report without writing the output file")
	transformCmd.Flags().BoolVar(&skipValidation, "skip-validation", false,
		"Skip RUT and email validation")
	transformCmd.Flags().StringVar(&reportFile, "report", "",
		"Write the run report as JSON to this path")
}

func runTransform(cmd *cobra.Command, inputFile string) error {
	startedAt := time.Now()
	log := newLogger()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	if !utils.FileExists(inputFile) {
		return fmt.Errorf("input file %s does not exist", inputFile)
	}

	out := outputFile
	if out == "" {
		out = utils.DefaultOutputPath("data", startedAt)
	}

	log.Info("loading input", "file", inputFile)
	data, err := parseInput(inputFile, cfg.Separator())
	if err != nil {
		return err
	}
	log.Info("loaded input", "rows", data.RowCount(), "columns", data.ColumnCount())

	result, err := transformer.New(cfg, log).Transform(data)
	if err != nil {
		return err
	}

	summary := report.New(result, inputFile, out, dryRun, startedAt)
	report.Render(os.Stdout, summary)

	if reportFile != "" {
		if err := report.WriteJSON(reportFile, summary); err != nil {
			return err
		}
		log.Info("wrote JSON report", "file", reportFile)
	}

	if dryRun {
		log.Info("dry run, no output written")
		return nil
	}

	if err := csvwriter.Write(out, transformer.Headers(), result.Rows(), cfg.Separator()); err != nil {
		return err
	}
	log.Info("wrote output", "file", out, "rows", len(result.Records))
	return nil
}

// applyFlagOverrides layers explicitly set flags over the file config.
// The --skip-validation flag never suppresses the fatal column check.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("rbd") {
		cfg.RBD = rbd
	}
	if cmd.Flags().Changed("year") {
		cfg.Year = year
	}
	if cmd.Flags().Changed("local") {
		cfg.Local = local
	}
	if skipValidation {
		cfg.ValidateRUT = false
		cfg.ValidateEmail = false
	}
}

// parseInput dispatches on the file extension.
func parseInput(path string, separator rune) (*csvparser.Data, error) {
	if utils.IsXLSX(path) {
		return xlsxparser.Parse(path)
	}
	return csvparser.Parse(path, separator)
}
