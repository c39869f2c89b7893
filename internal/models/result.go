package models

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ProcessorTotal is one income source in display form: the processor's
// display name, its accumulated deposit total, and its share of total income.
type ProcessorTotal struct {
	Name  string          `json:"name" yaml:"name"`
	Total decimal.Decimal `json:"total" yaml:"total"`
	Share decimal.Decimal `json:"share_pct" yaml:"share_pct"`
}

// AccountRecord describes a linked account observed in transfer-context
// lines, keyed by its 4-digit suffix.
type AccountRecord struct {
	Last4     string          `json:"last4" yaml:"last4"`
	Qty       int             `json:"qty" yaml:"qty"`
	Total     decimal.Decimal `json:"total" yaml:"total"`
	Direction Direction       `json:"direction" yaml:"direction"`
}

// NewAccountRecord builds an AccountRecord, enforcing that the key is exactly
// four digits and the total is rounded to two decimal places.
func NewAccountRecord(last4 string, qty int, total decimal.Decimal, dir Direction) (AccountRecord, error) {
	if len(last4) != 4 {
		return AccountRecord{}, fmt.Errorf("account key must be exactly 4 digits, got %q", last4)
	}
	for _, r := range last4 {
		if r < '0' || r > '9' {
			return AccountRecord{}, fmt.Errorf("account key must be exactly 4 digits, got %q", last4)
		}
	}
	return AccountRecord{
		Last4:     last4,
		Qty:       qty,
		Total:     RoundAmount(total),
		Direction: dir,
	}, nil
}

// MatchThresholds carries the fuzzy-similarity cutoffs on a 0-100 scale.
// They are empirical constants, injected rather than hardcoded at call sites.
type MatchThresholds struct {
	// Exclusion is the minimum similarity for an exclusion-list hit.
	Exclusion float64
	// Header is the minimum similarity for a fuzzy header match.
	Header float64
}

// DefaultThresholds returns the operational defaults (85 for exclusion and
// name matching, 90 for header matching).
func DefaultThresholds() MatchThresholds {
	return MatchThresholds{Exclusion: 85, Header: 90}
}

// RunSettings are the immutable per-run inputs to a classification pass.
// They are loaded once by the caller and treated as read-only by the engine,
// so a batch of statements can share one RunSettings value safely.
type RunSettings struct {
	// KnownProcessors holds processor display names, case preserved.
	KnownProcessors []string
	// Exclusions holds operator-curated entity strings; membership is fuzzy.
	Exclusions []string
	// DebtorName suppresses self-matches in possible-processor extraction.
	DebtorName string
	Thresholds MatchThresholds
}

// AnalysisResult is the structured record handed to rendering and GUI
// collaborators. Consumers must treat it as read-only; nothing is sorted
// beyond what SortedProcessorTotals exposes.
type AnalysisResult struct {
	ProcessorTotals    map[string]decimal.Decimal `json:"processor_totals" yaml:"processor_totals"`
	TotalIncome        decimal.Decimal            `json:"total_income" yaml:"total_income"`
	LinkedAccounts     []AccountRecord            `json:"linked_accounts" yaml:"linked_accounts"`
	PossibleProcessors []string                   `json:"possible_processors" yaml:"possible_processors"`
	PossibleMCAs       []string                   `json:"possible_mcas" yaml:"possible_mcas"`
	DebugTrace         []string                   `json:"debug_trace" yaml:"debug_trace"`
}

// NewAnalysisResult returns an empty result with allocated collections, the
// value returned for degenerate input.
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		ProcessorTotals: map[string]decimal.Decimal{},
		TotalIncome:     decimal.Zero,
	}
}

// SortedProcessorTotals returns processor totals in descending total order
// with the share of total income computed per entry. Ties break by name so
// output is deterministic.
func (r *AnalysisResult) SortedProcessorTotals() []ProcessorTotal {
	totals := make([]ProcessorTotal, 0, len(r.ProcessorTotals))
	for name, total := range r.ProcessorTotals {
		totals = append(totals, ProcessorTotal{
			Name:  name,
			Total: total,
			Share: SharePercent(total, r.TotalIncome),
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Name < totals[j].Name
	})
	return totals
}
