package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsgrecovery/statement-analyzer/internal/logging"
	"rsgrecovery/statement-analyzer/internal/models"
)

func sampleResult() *models.AnalysisResult {
	r := models.NewAnalysisResult()
	r.ProcessorTotals["Stripe"] = decimal.RequireFromString("123.45")
	r.ProcessorTotals["Square"] = decimal.RequireFromString("200.00")
	r.TotalIncome = decimal.RequireFromString("323.45")
	r.LinkedAccounts = []models.AccountRecord{
		{Last4: "9876", Qty: 1, Total: decimal.RequireFromString("25.00"), Direction: models.DirectionIn},
	}
	return r
}

func TestWriteProcessors(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(logging.NewMockLogger())
	require.NoError(t, w.WriteProcessors(&buf, sampleResult()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "processor,total,share_pct", lines[0])
	assert.Equal(t, "Square,200.00,61.8", lines[1])
	assert.Equal(t, "Stripe,123.45,38.2", lines[2])
	assert.Equal(t, "Total Income,323.45,100.0", lines[3])
}

func TestWriteProcessorsEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(logging.NewMockLogger())
	require.NoError(t, w.WriteProcessors(&buf, models.NewAnalysisResult()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Total Income,0.00,0.0", lines[1])
}

func TestWriteAccounts(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(logging.NewMockLogger())
	require.NoError(t, w.WriteAccounts(&buf, sampleResult()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "account,qty,total,direction", lines[0])
	assert.Equal(t, "9876,1,25.00,In", lines[1])
}
