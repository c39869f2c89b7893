package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchantsCSVRoundtrip(t *testing.T) {
	src := newTempStore(t)
	require.NoError(t, src.SaveMerchants([]Merchant{
		{Root: "stripe", Name: "Stripe", City: "San Francisco", State: "CA"},
		{Root: "bluewave", Name: "Bluewave Consulting"},
	}))

	csvPath := filepath.Join(t.TempDir(), "merchants.csv")
	require.NoError(t, src.ExportMerchantsCSV(csvPath))

	dst := newTempStore(t)
	added, err := dst.ImportMerchantsCSV(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	merchants, err := dst.LoadMerchants()
	require.NoError(t, err)
	require.Len(t, merchants, 2)
	assert.Equal(t, "Stripe", merchants[0].Name)
	assert.Equal(t, "San Francisco", merchants[0].City)
	assert.NotEmpty(t, merchants[0].DateAdded)
}

func TestImportMerchantsSkipsExisting(t *testing.T) {
	src := newTempStore(t)
	require.NoError(t, src.SaveMerchants([]Merchant{{Name: "Stripe"}, {Name: "Harbor Goods"}}))
	csvPath := filepath.Join(t.TempDir(), "merchants.csv")
	require.NoError(t, src.ExportMerchantsCSV(csvPath))

	dst := newTempStore(t)
	require.NoError(t, dst.SaveMerchants([]Merchant{{Name: "stripe"}}))

	added, err := dst.ImportMerchantsCSV(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	merchants, err := dst.LoadMerchants()
	require.NoError(t, err)
	assert.Len(t, merchants, 2)
}

func TestExclusionsCSVRoundtrip(t *testing.T) {
	src := newTempStore(t)
	require.NoError(t, src.SaveExclusions([]Exclusion{
		{Entity: "Acme Payroll", Reason: "employer"},
	}))

	csvPath := filepath.Join(t.TempDir(), "exclusions.csv")
	require.NoError(t, src.ExportExclusionsCSV(csvPath))

	dst := newTempStore(t)
	added, err := dst.ImportExclusionsCSV(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	entities, err := dst.ExclusionEntities()
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Payroll"}, entities)
}

func TestImportMissingCSVFails(t *testing.T) {
	s := newTempStore(t)
	_, err := s.ImportMerchantsCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
