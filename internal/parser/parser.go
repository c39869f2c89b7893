// Package parser defines the row-parser contract shared by the generic
// section-aware parser and the bank-specific parsers, plus the signature
// dispatch that chooses between them.
package parser

import (
	"github.com/shopspring/decimal"

	"rsgrecovery/statement-analyzer/internal/models"
)

// Line is one statement line after classification: its section context,
// whether it is a header, and the transactional amount selected for it, if
// any. Amounts are only ever counted from lines with DepositContext set.
type Line struct {
	Index          int
	Text           string
	Section        models.SectionState
	Header         bool
	DepositContext bool
	Amount         decimal.Decimal
	HasAmount      bool
}

// Outcome is the shared output contract of every row parser: the classified
// lines plus a human-readable trace of what was counted and why.
type Outcome struct {
	Lines []Line
	Trace []string
}

// DepositLines returns the lines whose amounts are eligible for processor
// and account totals: deposit context, not a header, with an amount.
func (o Outcome) DepositLines() []Line {
	var deposits []Line
	for _, ln := range o.Lines {
		if ln.DepositContext && !ln.Header && ln.HasAmount {
			deposits = append(deposits, ln)
		}
	}
	return deposits
}

// RowParser turns raw statement text into a classified Outcome. Parsers are
// independent, swappable strategies sharing the same amount-extraction
// primitive and the same output contract.
type RowParser interface {
	// Name identifies the parser in traces and logs.
	Name() string
	// Parse classifies the statement text. It must not fail: degenerate
	// input yields an empty Outcome.
	Parse(text string) Outcome
}
