package textutils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	fourDigitPattern = regexp.MustCompile(`\b(\d{4})\b`)
	nameSplitPattern = regexp.MustCompile(`[\s_\-]+`)
	letterPattern    = regexp.MustCompile(`[A-Za-z]`)
)

// SplitLines splits extracted statement text into lines. Whitespace-only
// input yields nil so empty extraction flows through as "no matches" rather
// than an error.
func SplitLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// FourDigitTokens returns the distinct standalone 4-digit sequences on a
// line, in order of first appearance. Tokens that fall inside a monetary
// token (the "1234" in "$1,234.56" never does, but the one in "$1234.56"
// would) are rejected, since those are amounts, not account suffixes.
func FourDigitTokens(line string) []string {
	matches := fourDigitPattern.FindAllStringIndex(line, -1)
	if matches == nil {
		return nil
	}

	amounts := AmountTokens(line)
	seen := make(map[string]bool)
	var tokens []string
	for _, m := range matches {
		insideAmount := false
		for _, tok := range amounts {
			if m[0] >= tok.Start && m[1] <= tok.End {
				insideAmount = true
				break
			}
		}
		if insideAmount {
			continue
		}
		token := line[m[0]:m[1]]
		if !seen[token] {
			seen[token] = true
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// DebtorNameFromFilename derives a best-effort debtor name from a statement
// file name: the first token of the base name that contains a letter,
// splitting on spaces, underscores, and hyphens.
func DebtorNameFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, token := range nameSplitPattern.Split(stem, -1) {
		if letterPattern.MatchString(token) {
			return token
		}
	}
	if stem != "" {
		return stem
	}
	return "Unknown"
}
