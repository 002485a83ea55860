// Package cmd - validate command
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"foster-budget/core/output"
)

var validateFormat string

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <placement-id>",
	Short: "Validate a single placement budget",
	Long: `Fetch the placement context and stored budget, compute the expected
stipend breakdown, and report compliance checks, errors, warnings and
recommendations.

Examples:
  foster-budget validate plc-001 --data placements.json
  foster-budget validate plc-001 --data placements.json --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "", "output format (cli, json, markdown)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	validator, err := buildValidator()
	if err != nil {
		return err
	}

	formatter, err := resolveFormatter(validateFormat)
	if err != nil {
		return err
	}

	result := validator.ValidatePlacement(context.Background(), args[0])
	return formatter.RenderResult(os.Stdout, result)
}

func resolveFormatter(format string) (output.Formatter, error) {
	if format == "" {
		format = configDefaultFormat()
	}
	return output.New(output.Format(format))
}
