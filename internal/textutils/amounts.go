// Package textutils provides line splitting and monetary token extraction for
// raw statement text.
package textutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountToken is one monetary token found on a statement line. Negative
// covers both a leading minus and enclosing parentheses. Start and End are
// byte offsets into the line.
type AmountToken struct {
	Value    decimal.Decimal
	Negative bool
	Start    int
	End      int
}

// Matches an optional opening paren, optional minus, optional dollar sign,
// digit groups with optional thousands separators, a decimal point, exactly
// two fractional digits, and an optional closing paren.
var amountPattern = regexp.MustCompile(`(\()?(-)?\$?(-)?([\d,]+\.\d{2})(\))?`)

// AmountTokens extracts every monetary token on a line in left-to-right
// order. Lines with no recognizable token return nil; they are skipped, not
// errors.
func AmountTokens(line string) []AmountToken {
	matches := amountPattern.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return nil
	}

	tokens := make([]AmountToken, 0, len(matches))
	for _, m := range matches {
		openParen := m[2] >= 0
		minus := m[4] >= 0 || m[6] >= 0
		digits := line[m[8]:m[9]]
		closeParen := m[10] >= 0

		value, err := decimal.NewFromString(strings.ReplaceAll(digits, ",", ""))
		if err != nil {
			continue
		}

		tokens = append(tokens, AmountToken{
			Value:    value,
			Negative: minus || (openParen && closeParen),
			Start:    m[0],
			End:      m[1],
		})
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// FirstCreditAmount returns the first positive, non-parenthesized monetary
// token on the line. In two-column ledgers the leftmost positive token is
// taken to be the credit column, not the running balance; if no positive
// token exists the line contributes nothing.
func FirstCreditAmount(line string) (decimal.Decimal, bool) {
	for _, tok := range AmountTokens(line) {
		if !tok.Negative {
			return tok.Value, true
		}
	}
	return decimal.Zero, false
}

// HasPositiveAmount reports whether the line carries at least one positive,
// non-parenthesized monetary token.
func HasPositiveAmount(line string) bool {
	_, ok := FirstCreditAmount(line)
	return ok
}
