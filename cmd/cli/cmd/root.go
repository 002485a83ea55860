// Package cmd provides the CLI commands for foster-budget.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"foster-budget/adapters/placementdata"
	"foster-budget/core/rules"
	"foster-budget/core/validation"
	"foster-budget/internal/config"
	"foster-budget/internal/logging"
)

var (
	cfgFile  string
	dataFile string
	verbose  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "foster-budget",
	Short: "Validate foster-care placement budgets against the statutory rule table",
	Long: `foster-budget computes the statutorily correct stipend for foster-care
placements, reconciles it against the stored budget, and aggregates batch
results into a compliance report.

Examples:
  foster-budget validate plc-001 --data placements.json
  foster-budget report plc-001 plc-002 plc-003 --data placements.json
  foster-budget rules check ./rules/fy2024.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

// Version is set at build time
var Version = "dev"

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the foster-budget version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.foster-budget.json)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "JSON dataset with placements and budgets")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// loadTable resolves the rule table from config, falling back to the
// built-in fiscal-year table
func loadTable() (*rules.Table, error) {
	cfg := config.Get()
	if cfg.Rules.TablePath == "" {
		return rules.Builtin(), nil
	}
	table, err := rules.LoadHCL(cfg.Rules.TablePath)
	if err != nil {
		return nil, err
	}
	if cfg.Rules.FiscalYear != 0 && table.FiscalYear != cfg.Rules.FiscalYear {
		return nil, fmt.Errorf("rule table is for fiscal year %d, expected %d",
			table.FiscalYear, cfg.Rules.FiscalYear)
	}
	return table, nil
}

// buildValidator wires the file-backed adapters and config into a validator
func buildValidator() (*validation.Validator, error) {
	if dataFile == "" {
		return nil, fmt.Errorf("--data is required")
	}
	source, store, err := placementdata.LoadFile(dataFile)
	if err != nil {
		return nil, err
	}

	table, err := loadTable()
	if err != nil {
		return nil, err
	}

	cfg := config.Get()
	validator := validation.NewValidator(source, store, table).
		WithLogger(logging.Named("validator"))
	if cfg.Validation.TolerancePercent > 0 {
		validator.WithTolerance(decimal.NewFromFloat(cfg.Validation.TolerancePercent / 100))
	}
	if cfg.Validation.FetchTimeoutSeconds > 0 {
		validator.WithFetchTimeout(time.Duration(cfg.Validation.FetchTimeoutSeconds) * time.Second)
	}
	return validator, nil
}
