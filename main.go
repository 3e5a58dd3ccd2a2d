// =============================================================================
// dobby - Main Entry Point
// =============================================================================
//
// Entry point for the dobby CLI. Initializes the Cobra command tree and
// delegates execution to the cmd package.
//
// USAGE:
//   dobby transform <file>   - Transform an enrollment export to SN format
//   dobby validate <file>    - Validate an export without writing output
//   dobby version            - Display the application version
//
// ARCHITECTURE:
//   cmd/       : CLI command definitions (Cobra)
//   internal/  : core business logic (pipeline, parsers, validation)
//   pkg/       : shared utilities (logging, file helpers)
//
// =============================================================================

package main

import (
	"github.com/dobby-cli/dobby/cmd"
)

func main() {
	cmd.Execute()
}
