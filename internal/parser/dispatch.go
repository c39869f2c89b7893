package parser

import (
	"rsgrecovery/statement-analyzer/internal/logging"
)

// Strategy pairs an institution-signature test with the row parser tuned to
// that institution's layout. Adding a bank means adding a Strategy, not
// editing the dispatch.
type Strategy struct {
	// Detect reports whether the full statement text carries the
	// institution's signature.
	Detect func(text string) bool
	Parser RowParser
}

// Dispatch routes a statement to a specialized parser when exactly one
// signature matches, falling back to the generic parser when none or several
// match, or when the specialized parser yields no deposit lines. The
// resolution is deterministic: ambiguity always means generic.
func Dispatch(text string, strategies []Strategy, generic RowParser, log logging.Logger) Outcome {
	var matched []Strategy
	for _, s := range strategies {
		if s.Detect(text) {
			matched = append(matched, s)
		}
	}

	if len(matched) == 1 {
		chosen := matched[0].Parser
		log.Debug("Bank signature matched",
			logging.Field{Key: logging.FieldParser, Value: chosen.Name()})
		outcome := chosen.Parse(text)
		if len(outcome.DepositLines()) > 0 {
			return outcome
		}
		log.Debug("Specialized parser yielded no deposits, falling back",
			logging.Field{Key: logging.FieldParser, Value: chosen.Name()})
	} else if len(matched) > 1 {
		log.Warn("Ambiguous bank signature, using generic parser",
			logging.Field{Key: logging.FieldCount, Value: len(matched)})
	}

	return generic.Parse(text)
}
