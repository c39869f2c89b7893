// Package analyzer wires the classification pipeline together: raw statement
// text is dispatched to a row parser, matched against the known processor and
// exclusion sets, and aggregated into per-source totals, linked accounts, and
// review lists.
package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"rsgrecovery/statement-analyzer/internal/classifier"
	"rsgrecovery/statement-analyzer/internal/exclusion"
	"rsgrecovery/statement-analyzer/internal/genericparser"
	"rsgrecovery/statement-analyzer/internal/logging"
	"rsgrecovery/statement-analyzer/internal/matcher"
	"rsgrecovery/statement-analyzer/internal/models"
	"rsgrecovery/statement-analyzer/internal/parser"
	"rsgrecovery/statement-analyzer/internal/pncparser"
	"rsgrecovery/statement-analyzer/internal/textutils"
)

// Lines carrying any of these are retained verbatim as possible merchant
// cash-advance references for downstream review. No amount semantics attach.
var mcaKeywords = []string{"fund", "funder", "funding", "capital", "advance"}

// Analyzer performs one classification pass per statement. It holds no
// mutable state across invocations, so one Analyzer may process a batch of
// statements concurrently as long as the injected RunSettings stay read-only.
type Analyzer struct {
	settings   models.RunSettings
	classifier *classifier.Classifier
	matcher    *matcher.Matcher
	filter     *exclusion.Filter
	strategies []parser.Strategy
	generic    parser.RowParser
	log        logging.Logger
}

// New creates an Analyzer over immutable per-run settings. The known
// processor and exclusion sets are explicit parameters, never ambient state.
func New(settings models.RunSettings, log logging.Logger) *Analyzer {
	if log == nil {
		log = logging.NewLogrusAdapter("info", "text")
	}
	c := classifier.New(settings.Thresholds.Header)
	return &Analyzer{
		settings:   settings,
		classifier: c,
		matcher:    matcher.New(settings.KnownProcessors, settings.DebtorName),
		filter:     exclusion.NewFilter(settings.Exclusions, settings.Thresholds.Exclusion),
		strategies: []parser.Strategy{
			{Detect: pncparser.Detect, Parser: pncparser.New(c)},
		},
		generic: genericparser.New(c),
		log:     log,
	}
}

// Analyze classifies one statement's extracted text and returns the
// structured result. Empty or whitespace-only text yields zero totals and
// empty lists, not an error; a malformed line is skipped without aborting the
// rest of the scan.
func (a *Analyzer) Analyze(text string) *models.AnalysisResult {
	result := models.NewAnalysisResult()
	if strings.TrimSpace(text) == "" {
		a.log.Debug("Empty statement text, returning empty result")
		return result
	}

	outcome := parser.Dispatch(text, a.strategies, a.generic, a.log)
	result.DebugTrace = append(result.DebugTrace, outcome.Trace...)

	a.tallyProcessors(outcome, result)
	a.tallyAccounts(outcome, result)
	a.collectMCALines(outcome, result)

	a.log.Info("Statement analyzed",
		logging.Field{Key: logging.FieldCount, Value: len(result.ProcessorTotals)},
		logging.Field{Key: "total_income", Value: result.TotalIncome.StringFixed(2)})
	return result
}

// tallyProcessors accumulates deposit amounts per known processor and
// collects possible-processor candidates from unmatched deposit lines.
// Totals are rounded once after summation; only entries above zero survive.
func (a *Analyzer) tallyProcessors(outcome parser.Outcome, result *models.AnalysisResult) {
	sums := make(map[string]decimal.Decimal)
	display := make(map[string]string)
	possibleSeen := make(map[string]bool)

	for _, ln := range outcome.DepositLines() {
		a.scanDepositLine(ln, sums, display, possibleSeen, result)
	}

	income := decimal.Zero
	for norm, sum := range sums {
		total := models.RoundAmount(sum)
		if !total.IsPositive() {
			continue
		}
		result.ProcessorTotals[display[norm]] = total
		income = income.Add(total)
	}
	result.TotalIncome = models.RoundAmount(income)
}

// scanDepositLine handles one deposit line defensively: a panic inside
// per-line analysis skips the line instead of aborting the statement.
func (a *Analyzer) scanDepositLine(ln parser.Line, sums map[string]decimal.Decimal,
	display map[string]string, possibleSeen map[string]bool, result *models.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Warn("Skipping malformed line",
				logging.Field{Key: logging.FieldLine, Value: ln.Index + 1},
				logging.Field{Key: logging.FieldReason, Value: fmt.Sprint(r)})
		}
	}()

	names := a.matcher.KnownOnLine(ln.Text)
	matched := false
	for _, name := range names {
		if a.filter.Excluded(name) {
			result.DebugTrace = append(result.DebugTrace,
				fmt.Sprintf("line %d: excluded processor %q", ln.Index+1, name))
			matched = true
			continue
		}
		norm := strings.ToLower(strings.TrimSpace(name))
		if _, ok := display[norm]; !ok {
			display[norm] = name
		}
		sums[norm] = sums[norm].Add(ln.Amount)
		matched = true
		result.DebugTrace = append(result.DebugTrace,
			fmt.Sprintf("line %d: %s += %s", ln.Index+1, display[norm], ln.Amount.StringFixed(2)))
	}
	if matched {
		return
	}

	candidate, ok := a.matcher.PossibleFromLine(ln.Text)
	if !ok || a.filter.Excluded(candidate) {
		return
	}
	norm := strings.ToLower(strings.TrimSpace(candidate))
	if possibleSeen[norm] {
		return
	}
	possibleSeen[norm] = true
	result.PossibleProcessors = append(result.PossibleProcessors, candidate)
	result.DebugTrace = append(result.DebugTrace,
		fmt.Sprintf("line %d: possible processor %q", ln.Index+1, candidate))
}

// tallyAccounts builds the linked-account records. Account tokens are found
// on transfer-context lines regardless of section, but amounts only
// accumulate from lines that are not withdrawal context, and direction is
// inferred from the first containing line with a direction keyword.
func (a *Analyzer) tallyAccounts(outcome parser.Outcome, result *models.AnalysisResult) {
	var order []string
	seen := make(map[string]bool)
	for _, ln := range outcome.Lines {
		for _, acct := range a.matcher.AccountsOnLine(ln.Text) {
			if !seen[acct] {
				seen[acct] = true
				order = append(order, acct)
			}
		}
	}
	sort.Strings(order)

	for _, acct := range order {
		tokenRe := regexp.MustCompile(`\b` + acct + `\b`)
		qty := 0
		total := decimal.Zero
		dir := models.DirectionUnknown

		for _, ln := range outcome.Lines {
			if ln.Header || !tokenRe.MatchString(ln.Text) {
				continue
			}
			if dir == models.DirectionUnknown {
				if a.classifier.ContainsDepositKeyword(ln.Text) {
					dir = models.DirectionIn
				} else if a.classifier.ContainsWithdrawalKeyword(ln.Text) {
					dir = models.DirectionOut
				}
			}
			if a.withdrawalContext(ln) {
				continue
			}
			if amount, ok := textutils.FirstCreditAmount(ln.Text); ok {
				qty++
				total = total.Add(amount)
			}
		}

		record, err := models.NewAccountRecord(acct, qty, total, dir)
		if err != nil {
			a.log.WithError(err).Warn("Skipping invalid account token",
				logging.Field{Key: logging.FieldAccount, Value: acct})
			continue
		}
		result.LinkedAccounts = append(result.LinkedAccounts, record)
	}
}

// withdrawalContext reports whether a line must be kept out of totals: it
// sits in a withdrawal section or carries a withdrawal keyword.
func (a *Analyzer) withdrawalContext(ln parser.Line) bool {
	if ln.Section == models.SectionWithdrawal {
		return true
	}
	return a.classifier.ContainsWithdrawalKeyword(ln.Text)
}

// collectMCALines retains every line referencing a possible merchant
// cash-advance funder, verbatim, deduplicated, in order of first appearance.
func (a *Analyzer) collectMCALines(outcome parser.Outcome, result *models.AnalysisResult) {
	seen := make(map[string]bool)
	for _, ln := range outcome.Lines {
		lower := strings.ToLower(ln.Text)
		for _, kw := range mcaKeywords {
			if strings.Contains(lower, kw) {
				trimmed := strings.TrimSpace(ln.Text)
				if trimmed != "" && !seen[trimmed] {
					seen[trimmed] = true
					result.PossibleMCAs = append(result.PossibleMCAs, trimmed)
				}
				break
			}
		}
	}
}
