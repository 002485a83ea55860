// Package cmd - rules commands
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foster-budget/core/rules"
)

// rulesCmd groups rule-table subcommands
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and check statutory rule tables",
}

// rulesShowCmd prints the active rule table
var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active rule table as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	},
}

// rulesCheckCmd validates a rule-table file without loading it into use
var rulesCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Parse and validate an HCL rule-table file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := rules.LoadHCL(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (version %s, fiscal year %d, %d age bands, %d states)\n",
			args[0], table.Version, table.FiscalYear, len(table.AgeBands), len(table.StateRegions))
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesCheckCmd)
}
