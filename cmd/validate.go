// =============================================================================
// dobby - Validate Command
// =============================================================================
//
// Defines the 'validate' command: runs the full pipeline for its
// diagnostics but writes no output file. Exits non-zero when issues are
// found, so it can gate an upload in a script.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dobby-cli/dobby/internal/report"
	"github.com/dobby-cli/dobby/internal/transformer"
	"github.com/dobby-cli/dobby/pkg/utils"
)

var validateReportFile string

var validateCmd = &cobra.Command{
	Use:   "validate <input-file>",
	Short: "Validate an enrollment export without writing output",
	Long: `Validate an enrollment export (CSV or XLSX) without producing an
upload file.

Checks performed:
  - Required source columns are present
  - RUT format and check digits (IPE ranges exempt)
  - Email address format
  - Date and phone number formats
  - Commune and grade codes are known

Exits with status 1 when any issue is found.

Example usage:
  dobby validate data/alumnos_ser.csv`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateReportFile, "report", "",
		"Write the validation report as JSON to this path")
}

func runValidate(cmd *cobra.Command, inputFile string) error {
	startedAt := time.Now()
	log := newLogger()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Validation is the point of this command; the config cannot turn it off.
	cfg.ValidateRUT = true
	cfg.ValidateEmail = true

	if !utils.FileExists(inputFile) {
		return fmt.Errorf("input file %s does not exist", inputFile)
	}

	log.Info("validating input", "file", inputFile)
	data, err := parseInput(inputFile, cfg.Separator())
	if err != nil {
		return err
	}

	result, err := transformer.New(cfg, log).Transform(data)
	if err != nil {
		return err
	}

	summary := report.New(result, inputFile, "", true, startedAt)
	report.Render(os.Stdout, summary)

	if validateReportFile != "" {
		if err := report.WriteJSON(validateReportFile, summary); err != nil {
			return err
		}
	}

	if len(result.Issues) > 0 {
		return fmt.Errorf("found %d validation issues", len(result.Issues))
	}
	log.Info("validation passed", "rows", result.InputRows)
	return nil
}
