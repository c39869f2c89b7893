// Package analyze handles single statement analysis commands
package analyze

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rsgrecovery/statement-analyzer/cmd/root"
	"rsgrecovery/statement-analyzer/internal/analyzer"
	"rsgrecovery/statement-analyzer/internal/models"
	"rsgrecovery/statement-analyzer/internal/parsererror"
	"rsgrecovery/statement-analyzer/internal/report"
	"rsgrecovery/statement-analyzer/internal/textutils"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze <statement.txt>",
	Short: "Analyze one statement",
	Long:  `Analyze the extracted text of a single bank statement and report funding sources.`,
	Args:  cobra.ExactArgs(1),
	Run:   analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		wrapped := &parsererror.ExtractionError{Source: path, Reason: "unreadable input", Err: err}
		logger.Fatal(wrapped.Error())
	}

	settings, err := buildSettings(path)
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to load settings: %v", err))
	}

	result := analyzer.New(settings, logger).Analyze(string(data))

	recordSuggestions(result, path)

	writer := report.NewWriter(logger)
	if root.SharedFlags.Output != "" {
		if err := writer.WriteProcessorsFile(root.SharedFlags.Output, result); err != nil {
			logger.Fatal(err.Error())
		}
	} else if err := writer.WriteProcessors(os.Stdout, result); err != nil {
		logger.Fatal(err.Error())
	}

	if root.SharedFlags.Accounts != "" {
		if err := writer.WriteAccountsFile(root.SharedFlags.Accounts, result); err != nil {
			logger.Fatal(err.Error())
		}
	}

	for _, name := range result.PossibleProcessors {
		fmt.Printf("Possible processor: %s\n", name)
	}
	for _, line := range result.PossibleMCAs {
		fmt.Printf("Possible MCA activity: %s\n", line)
	}
}

func buildSettings(path string) (models.RunSettings, error) {
	st := root.GetStore()

	known, err := st.KnownProcessors()
	if err != nil {
		return models.RunSettings{}, err
	}
	exclusions, err := st.ExclusionEntities()
	if err != nil {
		return models.RunSettings{}, err
	}

	debtor := root.SharedFlags.Debtor
	if debtor == "" {
		debtor = textutils.DebtorNameFromFilename(path)
	}

	return models.RunSettings{
		KnownProcessors: known,
		Exclusions:      exclusions,
		DebtorName:      debtor,
		Thresholds:      root.Cfg.Thresholds(),
	}, nil
}

func recordSuggestions(result *models.AnalysisResult, path string) {
	st := root.GetStore()
	for _, name := range result.PossibleProcessors {
		if err := st.AddSuggestion(name, path); err != nil {
			root.Log.Warnf("Failed to record suggestion %s: %v", name, err)
		}
	}
}
