// Package batch handles multi-statement analysis commands
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"rsgrecovery/statement-analyzer/cmd/root"
	"rsgrecovery/statement-analyzer/internal/batch"
	"rsgrecovery/statement-analyzer/internal/logging"
	"rsgrecovery/statement-analyzer/internal/models"
	"rsgrecovery/statement-analyzer/internal/report"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze a directory of statements",
	Long:  `Analyze every .txt statement in a directory and write one report CSV per statement.`,
	Run:   batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "input-dir", "i", "", "Directory of extracted statement text files")
	Cmd.Flags().StringVarP(&root.OutputDir, "output-dir", "O", "", "Directory to write report CSVs into")
	_ = Cmd.MarkFlagRequired("input-dir")
	_ = Cmd.MarkFlagRequired("output-dir")
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	jobs, err := collectJobs(root.InputDir, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to read input directory: %v", err))
	}
	if len(jobs) == 0 {
		logger.Warn("no statement text files found", logging.Field{Key: logging.FieldFile, Value: root.InputDir})
		return
	}

	if err := os.MkdirAll(root.OutputDir, 0o750); err != nil {
		logger.Fatal(fmt.Sprintf("Failed to create output directory: %v", err))
	}

	settings, err := baseSettings()
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to load settings: %v", err))
	}

	timeout := time.Duration(root.Cfg.Batch.TimeoutSeconds) * time.Second
	processor := batch.NewProcessor(settings, timeout, logger)
	results := processor.Run(context.Background(), jobs)

	writer := report.NewWriter(logger)
	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			logger.WithError(res.Err).Error("statement failed",
				logging.Field{Key: logging.FieldStatement, Value: res.Name})
		}
		stem := strings.TrimSuffix(res.Name, filepath.Ext(res.Name))
		out := filepath.Join(root.OutputDir, stem+".csv")
		if err := writer.WriteProcessorsFile(out, res.Result); err != nil {
			logger.WithError(err).Error("failed to write report",
				logging.Field{Key: logging.FieldFile, Value: out})
		}
	}

	logger.Info("batch completed",
		logging.Field{Key: logging.FieldCount, Value: len(results)},
		logging.Field{Key: "failures", Value: failures})
}

func collectJobs(dir string, logger logging.Logger) ([]batch.Job, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var jobs []batch.Job
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.WithError(err).Warn("skipping unreadable file",
				logging.Field{Key: logging.FieldFile, Value: entry.Name()})
			continue
		}
		jobs = append(jobs, batch.Job{Name: entry.Name(), Text: string(data)})
	}
	return jobs, nil
}

func baseSettings() (models.RunSettings, error) {
	st := root.GetStore()

	known, err := st.KnownProcessors()
	if err != nil {
		return models.RunSettings{}, err
	}
	exclusions, err := st.ExclusionEntities()
	if err != nil {
		return models.RunSettings{}, err
	}

	return models.RunSettings{
		KnownProcessors: known,
		Exclusions:      exclusions,
		DebtorName:      root.SharedFlags.Debtor,
		Thresholds:      root.Cfg.Thresholds(),
	}, nil
}
