package parser

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"rsgrecovery/statement-analyzer/internal/logging"
)

type stubParser struct {
	name     string
	deposits int
}

func (s *stubParser) Name() string { return s.name }

func (s *stubParser) Parse(text string) Outcome {
	var outcome Outcome
	for i := 0; i < s.deposits; i++ {
		outcome.Lines = append(outcome.Lines, Line{
			Index:          i,
			Text:           s.name,
			DepositContext: true,
			Amount:         decimal.NewFromInt(1),
			HasAmount:      true,
		})
	}
	outcome.Trace = append(outcome.Trace, "parsed by "+s.name)
	return outcome
}

func detectContains(token string) func(string) bool {
	return func(text string) bool {
		return strings.Contains(text, token)
	}
}

func TestDispatchSingleMatch(t *testing.T) {
	special := &stubParser{name: "special", deposits: 1}
	generic := &stubParser{name: "generic", deposits: 1}
	strategies := []Strategy{{Detect: detectContains("SPECIAL"), Parser: special}}

	outcome := Dispatch("SPECIAL STATEMENT", strategies, generic, logging.NewMockLogger())
	assert.Equal(t, "special", outcome.Lines[0].Text)
}

func TestDispatchNoMatchUsesGeneric(t *testing.T) {
	special := &stubParser{name: "special", deposits: 1}
	generic := &stubParser{name: "generic", deposits: 1}
	strategies := []Strategy{{Detect: detectContains("SPECIAL"), Parser: special}}

	outcome := Dispatch("PLAIN STATEMENT", strategies, generic, logging.NewMockLogger())
	assert.Equal(t, "generic", outcome.Lines[0].Text)
}

func TestDispatchAmbiguityUsesGeneric(t *testing.T) {
	a := &stubParser{name: "a", deposits: 1}
	b := &stubParser{name: "b", deposits: 1}
	generic := &stubParser{name: "generic", deposits: 1}
	strategies := []Strategy{
		{Detect: detectContains("STATEMENT"), Parser: a},
		{Detect: detectContains("STATEMENT"), Parser: b},
	}

	log := logging.NewMockLogger()
	outcome := Dispatch("SOME STATEMENT", strategies, generic, log)
	assert.Equal(t, "generic", outcome.Lines[0].Text)
	assert.True(t, log.HasEntry("WARN", "Ambiguous bank signature, using generic parser"))
}

func TestDispatchEmptySpecializedFallsBack(t *testing.T) {
	special := &stubParser{name: "special", deposits: 0}
	generic := &stubParser{name: "generic", deposits: 1}
	strategies := []Strategy{{Detect: detectContains("SPECIAL"), Parser: special}}

	outcome := Dispatch("SPECIAL STATEMENT", strategies, generic, logging.NewMockLogger())
	assert.Equal(t, "generic", outcome.Lines[0].Text)
}

func TestDepositLines(t *testing.T) {
	outcome := Outcome{Lines: []Line{
		{Index: 0, DepositContext: true, HasAmount: true},
		{Index: 1, DepositContext: true, Header: true, HasAmount: true},
		{Index: 2, DepositContext: true, HasAmount: false},
		{Index: 3, DepositContext: false, HasAmount: true},
	}}

	deposits := outcome.DepositLines()
	assert.Len(t, deposits, 1)
	assert.Equal(t, 0, deposits[0].Index)
}
