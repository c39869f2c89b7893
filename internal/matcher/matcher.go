// Package matcher finds known payment processors, heuristic merchant-name
// candidates, and linked-account digit groups on classified statement lines.
package matcher

import (
	"regexp"
	"strings"
	"unicode"

	"rsgrecovery/statement-analyzer/internal/textutils"
)

// Non-merchant terms. A possible-processor candidate matching one of these is
// rejected rather than surfaced for review.
var stoplist = []string{
	"payroll",
	"overdraft",
	"interest",
	"tax",
	"wire",
	"atm",
	"available",
	"accrued",
	"ads",
	"transfer",
}

// Transaction descriptors stripped before merchant-name extraction.
var descriptors = map[string]bool{
	"pos": true, "ach": true, "transfer": true, "deposit": true,
	"withdrawal": true, "atm": true, "fee": true, "credit": true,
	"debit": true, "purchase": true, "payment": true, "online": true,
	"check": true, "card": true, "electronic": true, "orig": true,
	"des": true, "ppd": true, "ccd": true, "web": true, "id": true,
	"acct": true, "account": true,
}

// Lines carrying one of these are treated as transfer context for
// linked-account extraction, independent of deposit/withdrawal
// classification.
var transferKeywords = []string{
	"transfer",
	"xfer",
	"to acct",
	"from acct",
	"withdrawal",
	"deposit",
}

var (
	datePattern      = regexp.MustCompile(`^\d{1,2}[/.\-]\d{1,2}(?:[/.\-]\d{2,4})?$`)
	digitsPattern    = regexp.MustCompile(`\d+`)
	letterPattern    = regexp.MustCompile(`[A-Za-z]`)
	amountishPattern = regexp.MustCompile(`^[\$\(\)\-]?[\d,\.\$\(\)\-]+$`)
	achWordPattern   = regexp.MustCompile(`\bach\b`)
	shortStopword    = map[string]*regexp.Regexp{}
)

func init() {
	for _, term := range stoplist {
		if len(term) <= 3 {
			shortStopword[term] = regexp.MustCompile(`\b` + term + `\b`)
		}
	}
}

// Matcher tests classified lines against the known processor set and
// extracts merchant-name candidates from unmatched deposit lines. Immutable
// once created; safe to share across statements.
type Matcher struct {
	known  []string
	debtor string
}

// New creates a Matcher over the known processor display names. debtorName
// suppresses self-matches during possible-processor extraction and may be
// empty.
func New(known []string, debtorName string) *Matcher {
	return &Matcher{known: known, debtor: strings.ToLower(strings.TrimSpace(debtorName))}
}

// KnownOnLine returns the known processors present on the line by
// case-insensitive substring match, at most once per distinct normalized
// name, in known-set order.
func (m *Matcher) KnownOnLine(line string) []string {
	lower := strings.ToLower(line)
	seen := make(map[string]bool)
	var found []string
	for _, name := range m.known {
		norm := strings.ToLower(strings.TrimSpace(name))
		if norm == "" || seen[norm] {
			continue
		}
		if strings.Contains(lower, norm) {
			seen[norm] = true
			found = append(found, name)
		}
	}
	return found
}

// PossibleFromLine extracts a merchant-name candidate from a deposit-context
// line that matched no known processor. The line is cleaned of date tokens,
// amounts, and transaction descriptors, then the first capitalized run of
// words is taken as the name, truncated before a trailing all-caps state
// token. If no capitalized run exists the first two remaining tokens are
// used. Candidates that are too short, carry no letters, match the stoplist,
// or name the debtor are rejected.
func (m *Matcher) PossibleFromLine(line string) (string, bool) {
	if m.debtor != "" && strings.Contains(strings.ToLower(line), m.debtor) {
		return "", false
	}

	cleaned := m.cleanTokens(line)
	if len(cleaned) == 0 {
		return "", false
	}

	candidate := capitalizedRun(cleaned)
	if candidate == "" {
		// Last resort: the leading tokens of the cleaned line.
		end := 2
		if len(cleaned) < end {
			end = len(cleaned)
		}
		candidate = strings.Join(cleaned[:end], " ")
	}

	candidate = strings.TrimSpace(digitsPattern.ReplaceAllString(candidate, ""))
	candidate = strings.Join(strings.Fields(candidate), " ")
	candidate = strings.TrimFunc(candidate, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	if len(candidate) <= 2 || !letterPattern.MatchString(candidate) {
		return "", false
	}
	if m.stoplisted(candidate) {
		return "", false
	}
	if m.debtor != "" && strings.Contains(strings.ToLower(candidate), m.debtor) {
		return "", false
	}
	return candidate, true
}

// AccountsOnLine returns the 4-digit account tokens on a transfer-context
// line. Non-transfer lines yield nothing.
func (m *Matcher) AccountsOnLine(line string) []string {
	lower := strings.ToLower(line)
	transferContext := achWordPattern.MatchString(lower)
	if !transferContext {
		for _, kw := range transferKeywords {
			if strings.Contains(lower, kw) {
				transferContext = true
				break
			}
		}
	}
	if !transferContext {
		return nil
	}
	return textutils.FourDigitTokens(line)
}

// cleanTokens removes leading date tokens, amounts, and descriptor words.
func (m *Matcher) cleanTokens(line string) []string {
	fields := strings.Fields(line)
	var cleaned []string
	leading := true
	for _, f := range fields {
		if leading && datePattern.MatchString(f) {
			continue
		}
		leading = false
		if amountishPattern.MatchString(f) {
			continue
		}
		if descriptors[strings.ToLower(strings.Trim(f, ".,:;#*"))] {
			continue
		}
		cleaned = append(cleaned, f)
	}
	return cleaned
}

func (m *Matcher) stoplisted(candidate string) bool {
	lower := strings.ToLower(candidate)
	for _, term := range stoplist {
		if re, ok := shortStopword[term]; ok {
			if re.MatchString(lower) {
				return true
			}
			continue
		}
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// capitalizedRun joins the first run of consecutive capitalized words,
// stopping before a trailing all-caps token of exactly two letters, which is
// heuristically a state abbreviation rather than part of the name.
func capitalizedRun(tokens []string) string {
	var run []string
	for _, tok := range tokens {
		r := []rune(tok)
		isCap := len(r) > 0 && unicode.IsUpper(r[0]) && unicode.IsLetter(r[0])
		if isCap {
			if len(run) > 0 && isStateToken(tok) {
				break
			}
			run = append(run, tok)
			continue
		}
		if len(run) > 0 {
			break
		}
	}
	return strings.Join(run, " ")
}

func isStateToken(tok string) bool {
	trimmed := strings.Trim(tok, ".,")
	if len(trimmed) != 2 {
		return false
	}
	return trimmed == strings.ToUpper(trimmed) && letterPattern.MatchString(trimmed)
}
