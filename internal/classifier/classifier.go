// Package classifier decides, line by line, whether the scanner is inside a
// deposit section, a withdrawal section, or neither. Statement layouts vary
// per bank, so matching is layered: exact phrase containment, a whole-word
// rule for short tokens, and bounded fuzzy matching for OCR-degraded headers.
package classifier

import (
	"regexp"
	"strings"

	"rsgrecovery/statement-analyzer/internal/models"
	"rsgrecovery/statement-analyzer/internal/textutils"
)

// Header vocabularies. A header line switches the section state and is
// itself excluded from amount counting.
var depositHeaders = []string{
	"deposits",
	"credits",
	"direct deposit",
	"ach credits",
	"deposits and additions",
	"deposits and other credits",
	"electronic deposits",
	"additions",
}

var withdrawalHeaders = []string{
	"withdrawals",
	"debits",
	"ach debit",
	"card purchases",
	"checks paid",
	"electronic withdrawals",
	"withdrawals and subtractions",
	"subtractions",
	"service charges",
	"pos",
	"atm",
}

// Keyword vocabularies used for the deposit-context fallback and for account
// direction inference on individual transaction lines.
var depositKeywords = []string{
	"deposit",
	"credit",
	"payment from",
	"received from",
	"income",
	"ach credit",
	"refund",
}

var withdrawalKeywords = []string{
	"withdrawal",
	"withdraw",
	"payment to",
	"purchase",
	"debit",
	"sent to",
	"pos",
	"atm",
	"ach debit",
	"fee",
}

// Fuzzy header matching only applies to lines at most this long; longer
// narrative or banner text scores too close to headers otherwise.
const maxFuzzyLineLen = 40

var shortTokenPattern = regexp.MustCompile(`^[a-z]{1,3}$`)

// Classifier matches lines against the header and keyword vocabularies.
// It is stateless and safe for concurrent use; section state lives with the
// caller's scan.
type Classifier struct {
	headerThreshold float64
	wordBoundary    map[string]*regexp.Regexp
}

// New creates a Classifier with the given fuzzy header threshold on a 0-100
// scale.
func New(headerThreshold float64) *Classifier {
	c := &Classifier{
		headerThreshold: headerThreshold,
		wordBoundary:    make(map[string]*regexp.Regexp),
	}
	for _, vocab := range [][]string{depositHeaders, withdrawalHeaders, depositKeywords, withdrawalKeywords} {
		for _, phrase := range vocab {
			if shortTokenPattern.MatchString(phrase) {
				if _, ok := c.wordBoundary[phrase]; !ok {
					c.wordBoundary[phrase] = regexp.MustCompile(`\b` + phrase + `\b`)
				}
			}
		}
	}
	return c
}

// HeaderState reports whether the line is a section header, and if so which
// section it opens. A line carrying a monetary token is a transaction, never
// a header.
func (c *Classifier) HeaderState(line string) (models.SectionState, bool) {
	if textutils.AmountTokens(line) != nil {
		return models.SectionUnknown, false
	}
	lower := strings.ToLower(strings.TrimSpace(line))
	if lower == "" {
		return models.SectionUnknown, false
	}
	if c.matches(lower, depositHeaders, true) {
		return models.SectionDeposit, true
	}
	if c.matches(lower, withdrawalHeaders, true) {
		return models.SectionWithdrawal, true
	}
	return models.SectionUnknown, false
}

// ContainsDepositKeyword reports whether the line carries a
// deposit-indicating keyword.
func (c *Classifier) ContainsDepositKeyword(line string) bool {
	return c.matches(strings.ToLower(line), depositKeywords, false)
}

// ContainsWithdrawalKeyword reports whether the line carries a
// withdrawal-indicating keyword.
func (c *Classifier) ContainsWithdrawalKeyword(line string) bool {
	return c.matches(strings.ToLower(line), withdrawalKeywords, false)
}

// DepositContext decides whether a non-header line should be treated as
// deposit context. Inside a known section the section wins. When no header
// was ever seen, a line counts as deposit context if it carries a deposit
// keyword and no withdrawal keyword, or as a last resort a positive monetary
// token and no withdrawal keyword.
func (c *Classifier) DepositContext(state models.SectionState, line string) bool {
	switch state {
	case models.SectionDeposit:
		return true
	case models.SectionWithdrawal:
		return false
	}
	if c.ContainsWithdrawalKeyword(line) {
		return false
	}
	if c.ContainsDepositKeyword(line) {
		return true
	}
	return textutils.HasPositiveAmount(line)
}

// matches tests a lowered line against a vocabulary. Short all-letter tokens
// ("pos", "atm") require a whole-word match so they cannot fire inside
// unrelated words like "deposit". Longer phrases match by containment, and
// when allowFuzzy is set, short lines additionally get a fuzzy comparison
// against each phrase.
func (c *Classifier) matches(lower string, vocab []string, allowFuzzy bool) bool {
	for _, phrase := range vocab {
		if re, ok := c.wordBoundary[phrase]; ok {
			if re.MatchString(lower) {
				return true
			}
			continue
		}
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	if allowFuzzy && len(lower) <= maxFuzzyLineLen {
		for _, phrase := range vocab {
			if _, short := c.wordBoundary[phrase]; short {
				continue
			}
			if textutils.Similarity(lower, phrase) >= c.headerThreshold {
				return true
			}
		}
	}
	return false
}
