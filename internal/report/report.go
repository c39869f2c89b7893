// Package report renders analysis results to CSV for spreadsheet review.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"rsgrecovery/statement-analyzer/internal/logging"
	"rsgrecovery/statement-analyzer/internal/models"
)

// ProcessorRow is one funding source in the processor summary CSV.
type ProcessorRow struct {
	Processor string `csv:"processor"`
	Total     string `csv:"total"`
	SharePct  string `csv:"share_pct"`
}

// AccountRow is one linked account in the accounts CSV.
type AccountRow struct {
	Account   string `csv:"account"`
	Qty       int    `csv:"qty"`
	Total     string `csv:"total"`
	Direction string `csv:"direction"`
}

// Writer renders AnalysisResult values as CSV documents.
type Writer struct {
	logger logging.Logger
}

// NewWriter creates a report writer.
func NewWriter(logger logging.Logger) *Writer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Writer{logger: logger}
}

// WriteProcessors writes the per-processor totals, largest first, followed by
// a total income row.
func (w *Writer) WriteProcessors(out io.Writer, result *models.AnalysisResult) error {
	rows := make([]ProcessorRow, 0, len(result.ProcessorTotals)+1)
	for _, pt := range result.SortedProcessorTotals() {
		rows = append(rows, ProcessorRow{
			Processor: pt.Name,
			Total:     pt.Total.StringFixed(2),
			SharePct:  pt.Share.StringFixed(1),
		})
	}
	rows = append(rows, ProcessorRow{
		Processor: "Total Income",
		Total:     result.TotalIncome.StringFixed(2),
		SharePct:  sharePctLabel(result.TotalIncome),
	})

	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("failed to write processor report: %w", err)
	}
	w.logger.Debug("wrote processor report", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

// WriteAccounts writes the linked account table.
func (w *Writer) WriteAccounts(out io.Writer, result *models.AnalysisResult) error {
	rows := make([]AccountRow, 0, len(result.LinkedAccounts))
	for _, acct := range result.LinkedAccounts {
		rows = append(rows, AccountRow{
			Account:   acct.Last4,
			Qty:       acct.Qty,
			Total:     acct.Total.StringFixed(2),
			Direction: acct.Direction.String(),
		})
	}

	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("failed to write account report: %w", err)
	}
	w.logger.Debug("wrote account report", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

// WriteProcessorsFile writes the processor summary to the named file.
func (w *Writer) WriteProcessorsFile(path string, result *models.AnalysisResult) error {
	return w.writeFile(path, func(f *os.File) error {
		return w.WriteProcessors(f, result)
	})
}

// WriteAccountsFile writes the account table to the named file.
func (w *Writer) WriteAccountsFile(path string, result *models.AnalysisResult) error {
	return w.writeFile(path, func(f *os.File) error {
		return w.WriteAccounts(f, result)
	})
}

func (w *Writer) writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	w.logger.Info("report written", logging.Field{Key: logging.FieldFile, Value: path})
	return nil
}

func sharePctLabel(total decimal.Decimal) string {
	if total.IsZero() {
		return "0.0"
	}
	return "100.0"
}
