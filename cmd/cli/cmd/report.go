// Package cmd - report command
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"foster-budget/adapters/archive"
	"foster-budget/core/report"
	"foster-budget/internal/config"
	"foster-budget/internal/logging"
)

var (
	reportFormat  string
	reportIDFile  string
	reportSave    bool
	reportWorkers int
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [placement-id...]",
	Short: "Run batch validation and build a compliance report",
	Long: `Validate a batch of placements and aggregate the outcomes into a
compliance report with classified violations and system recommendations.

Placement ids are taken from the arguments, or one per line from --ids-file.

Examples:
  foster-budget report plc-001 plc-002 --data placements.json
  foster-budget report --ids-file batch.txt --data placements.json --save`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "output format (cli, json, markdown)")
	reportCmd.Flags().StringVar(&reportIDFile, "ids-file", "", "file with one placement id per line")
	reportCmd.Flags().BoolVar(&reportSave, "save", false, "archive the generated report")
	reportCmd.Flags().IntVar(&reportWorkers, "workers", 0, "worker-pool size (default from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	ids, err := collectIDs(args)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return fmt.Errorf("no placement ids given")
	}

	validator, err := buildValidator()
	if err != nil {
		return err
	}

	cfg := config.Get()
	workers := cfg.Report.Workers
	if reportWorkers > 0 {
		workers = reportWorkers
	}

	reporter := report.NewReporter(validator).
		WithWorkers(workers).
		WithLogger(logging.Named("reporter"))

	generated := reporter.Run(context.Background(), ids)

	if reportSave {
		store, err := buildArchive()
		if err != nil {
			return err
		}
		id, err := store.Save(context.Background(), generated)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "report archived as %s\n", id)
	}

	formatter, err := resolveFormatter(reportFormat)
	if err != nil {
		return err
	}
	if !cfg.Output.ShowResults {
		generated.Results = nil
	}
	return formatter.RenderReport(os.Stdout, generated)
}

func collectIDs(args []string) ([]string, error) {
	ids := append([]string(nil), args...)
	if reportIDFile == "" {
		return ids, nil
	}

	file, err := os.Open(reportIDFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	return ids, scanner.Err()
}

func buildArchive() (archive.Archive, error) {
	cfg := config.Get()
	switch archive.Backend(cfg.Archive.Backend) {
	case archive.BackendMemory:
		return archive.NewMemoryArchive(), nil
	case archive.BackendFile, "":
		return archive.NewFileArchive(cfg.Archive.Directory)
	default:
		return nil, fmt.Errorf("unknown archive backend %q", cfg.Archive.Backend)
	}
}

func configDefaultFormat() string {
	return config.Get().Output.DefaultFormat
}
