// Package genericparser implements the section-aware fallback parser. It
// carries no layout assumptions beyond line-splittable text: a stateful
// left-to-right scan where header lines switch the section and every other
// line is classified against the current state.
package genericparser

import (
	"fmt"

	"rsgrecovery/statement-analyzer/internal/classifier"
	"rsgrecovery/statement-analyzer/internal/models"
	"rsgrecovery/statement-analyzer/internal/parser"
	"rsgrecovery/statement-analyzer/internal/textutils"
)

// Parser is the generic section-aware row parser.
type Parser struct {
	classifier *classifier.Classifier
}

// New creates a generic parser over the shared classifier.
func New(c *classifier.Classifier) *Parser {
	return &Parser{classifier: c}
}

// Name implements parser.RowParser.
func (p *Parser) Name() string {
	return "generic"
}

// Parse classifies every line of the statement. Section state starts Unknown,
// mutates only on header lines, and persists until the next header or end of
// input. Lines with no recognizable monetary token are kept for account and
// MCA scanning but carry no amount.
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

		ln.DepositContext = p.classifier.DepositContext(state, line)
		if amount, ok := textutils.FirstCreditAmount(line); ok {
			ln.Amount = amount
			ln.HasAmount = true
		}
		if ln.DepositContext && ln.HasAmount {
			outcome.Trace = append(outcome.Trace,
				fmt.Sprintf("line %d: deposit %s: %q", i+1, ln.Amount.StringFixed(2), line))
		}
		outcome.Lines = append(outcome.Lines, ln)
	}
	return outcome
}
