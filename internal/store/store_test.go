package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsgrecovery/statement-analyzer/internal/logging"
)

func newTempStore(t *testing.T) *SettingsStore {
	t.Helper()
	dir := t.TempDir()
	return NewSettingsStore(
		filepath.Join(dir, "merchants.yaml"),
		filepath.Join(dir, "exclusions.yaml"),
		filepath.Join(dir, "suggestions.yaml"),
		logging.NewMockLogger(),
	)
}

func TestLoadMissingFilesAreEmptyLists(t *testing.T) {
	s := newTempStore(t)

	merchants, err := s.LoadMerchants()
	require.NoError(t, err)
	assert.Empty(t, merchants)

	exclusions, err := s.LoadExclusions()
	require.NoError(t, err)
	assert.Empty(t, exclusions)
}

func TestSaveAndLoadMerchants(t *testing.T) {
	s := newTempStore(t)

	in := []Merchant{
		{Root: "stripe", Name: "Stripe", City: "San Francisco", State: "CA"},
		{Root: "bluewave", Name: "Bluewave Consulting"},
	}
	require.NoError(t, s.SaveMerchants(in))

	out, err := s.LoadMerchants()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveAndLoadExclusions(t *testing.T) {
	s := newTempStore(t)

	in := []Exclusion{{Entity: "Acme Payroll", Reason: "employer, not a processor"}}
	require.NoError(t, s.SaveExclusions(in))

	out, err := s.LoadExclusions()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestKnownProcessorsMergesBaseline(t *testing.T) {
	s := newTempStore(t)

	require.NoError(t, s.SaveMerchants([]Merchant{
		{Name: "Bluewave Consulting"},
		{Name: "stripe"}, // case-insensitive duplicate of the baseline
		{Name: "  "},
	}))

	known, err := s.KnownProcessors()
	require.NoError(t, err)

	assert.Contains(t, known, "Square")
	assert.Contains(t, known, "PayPal")
	assert.Contains(t, known, "Bluewave Consulting")

	stripeCount := 0
	for _, name := range known {
		if name == "Stripe" || name == "stripe" {
			stripeCount++
		}
	}
	assert.Equal(t, 1, stripeCount)
	assert.IsIncreasing(t, known)
}

func TestAddSuggestion(t *testing.T) {
	s := newTempStore(t)

	require.NoError(t, s.AddSuggestion("Bluewave Consulting", "acme_june.txt"))
	require.NoError(t, s.AddSuggestion("bluewave consulting", "acme_july.txt"))
	require.NoError(t, s.AddSuggestion("", "acme_july.txt"))

	suggestions, err := s.LoadSuggestions()
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Bluewave Consulting", suggestions[0].Name)
	assert.Equal(t, "acme_june.txt", suggestions[0].FoundInFile)
	assert.NotEmpty(t, suggestions[0].DateFound)
}

func TestAddSuggestionSkipsKnownMerchant(t *testing.T) {
	s := newTempStore(t)
	require.NoError(t, s.SaveMerchants([]Merchant{{Name: "Bluewave Consulting"}}))

	require.NoError(t, s.AddSuggestion("bluewave consulting", "acme_june.txt"))

	suggestions, err := s.LoadSuggestions()
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestApproveSuggestions(t *testing.T) {
	s := newTempStore(t)
	require.NoError(t, s.AddSuggestion("Bluewave Consulting", "a.txt"))
	require.NoError(t, s.AddSuggestion("Harbor Goods", "b.txt"))

	require.NoError(t, s.ApproveSuggestions([]string{"bluewave consulting"}))

	merchants, err := s.LoadMerchants()
	require.NoError(t, err)
	require.Len(t, merchants, 1)
	assert.Equal(t, "Bluewave Consulting", merchants[0].Name)
	assert.NotEmpty(t, merchants[0].DateAdded)

	suggestions, err := s.LoadSuggestions()
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Harbor Goods", suggestions[0].Name)
}

func TestExclusionEntities(t *testing.T) {
	s := newTempStore(t)
	require.NoError(t, s.SaveExclusions([]Exclusion{
		{Entity: "Acme Payroll"},
		{Entity: "   "},
		{Entity: "Coinbase"},
	}))

	entities, err := s.ExclusionEntities()
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Payroll", "Coinbase"}, entities)
}
