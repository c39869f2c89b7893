// Package pncparser implements a row-anchored parser for the PNC-style
// statement layout, whose fixed columns (date, description, additions,
// subtractions, balance) make a date-anchored scan materially more accurate
// than the generic line classifier.
package pncparser

import (
	"fmt"
	"regexp"
	"strings"

	"rsgrecovery/statement-analyzer/internal/classifier"
	"rsgrecovery/statement-analyzer/internal/models"
	"rsgrecovery/statement-analyzer/internal/parser"
	"rsgrecovery/statement-analyzer/internal/textutils"
)

var (
	rowDatePattern = regexp.MustCompile(`^\s*\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`)

	// Column headers that identify the layout. All must be present.
	signatureTokens = []string{"date", "description", "additions", "subtractions", "balance"}
)

// Detect reports whether the statement text carries the PNC signature:
// either the full column-header combination or the bank name itself.
func Detect(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "pnc bank") {
		return true
	}
	for _, tok := range signatureTokens {
		if !strings.Contains(lower, tok) {
			return false
		}
	}
	return true
}

// Parser is the PNC row parser. Transaction rows start with a date; the
// amount is the first positive, non-parenthesized token on the row, the same
// primitive the generic parser uses.
type Parser struct {
	classifier *classifier.Classifier
}

// New creates a PNC parser over the shared classifier.
func New(c *classifier.Classifier) *Parser {
	return &Parser{classifier: c}
}

// Name implements parser.RowParser.
func (p *Parser) Name() string {
	return "pnc"
}

// Parse walks the statement tracking section headers, but only date-prefixed
// rows can contribute amounts. Rows inside a subtractions section are never
// deposit context; rows elsewhere are deposit context unless they carry a
// withdrawal keyword.
func (p *Parser) Parse(text string) parser.Outcome {
	var outcome parser.Outcome
	state := models.SectionUnknown

	for i, line := range textutils.SplitLines(text) {
		ln := parser.Line{Index: i, Text: line, Section: state}

		if newState, isHeader := p.classifier.HeaderState(line); isHeader {
			state = newState
			ln.Section = state
			ln.Header = true
			outcome.Lines = append(outcome.Lines, ln)
			outcome.Trace = append(outcome.Trace,
				fmt.Sprintf("line %d: header -> %s section: %q", i+1, state, line))
			continue
		}

		if !rowDatePattern.MatchString(line) {
			outcome.Lines = append(outcome.Lines, ln)
			continue
		}

		if amount, ok := textutils.FirstCreditAmount(line); ok {
			ln.Amount = amount
			ln.HasAmount = true
		}
		ln.DepositContext = state != models.SectionWithdrawal &&
			ln.HasAmount &&
			!p.classifier.ContainsWithdrawalKeyword(line)
		if ln.DepositContext {
			outcome.Trace = append(outcome.Trace,
				fmt.Sprintf("line %d: deposit row %s: %q", i+1, ln.Amount.StringFixed(2), line))
		}
		outcome.Lines = append(outcome.Lines, ln)
	}
	return outcome
}
