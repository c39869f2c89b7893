package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"rsgrecovery/statement-analyzer/internal/logging"
)

// ExportMerchantsCSV writes the merchant list to a CSV file for interchange.
func (s *SettingsStore) ExportMerchantsCSV(path string) error {
	merchants, err := s.LoadMerchants()
	if err != nil {
		return err
	}
	return writeCSV(path, &merchants)
}

// ImportMerchantsCSV merges merchants from a CSV file into the stored list.
// Rows whose name already exists (case-insensitive) are skipped.
func (s *SettingsStore) ImportMerchantsCSV(path string) (int, error) {
	var incoming []Merchant
	if err := readCSV(path, &incoming); err != nil {
		return 0, err
	}

	merchants, err := s.LoadMerchants()
	if err != nil {
		return 0, err
	}
	existing := make(map[string]bool, len(merchants))
	for _, m := range merchants {
		existing[strings.ToLower(strings.TrimSpace(m.Name))] = true
	}

	added := 0
	for _, m := range incoming {
		norm := strings.ToLower(strings.TrimSpace(m.Name))
		if norm == "" || existing[norm] {
			continue
		}
		existing[norm] = true
		m.DateAdded = time.Now().Format(time.RFC3339)
		merchants = append(merchants, m)
		added++
	}

	if err := s.SaveMerchants(merchants); err != nil {
		return 0, err
	}
	s.logger.Info("Imported merchants from CSV",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: added})
	return added, nil
}

// ExportExclusionsCSV writes the exclusion list to a CSV file.
func (s *SettingsStore) ExportExclusionsCSV(path string) error {
	exclusions, err := s.LoadExclusions()
	if err != nil {
		return err
	}
	return writeCSV(path, &exclusions)
}

// ImportExclusionsCSV merges exclusions from a CSV file into the stored
// list, skipping entities that already exist.
func (s *SettingsStore) ImportExclusionsCSV(path string) (int, error) {
	var incoming []Exclusion
	if err := readCSV(path, &incoming); err != nil {
		return 0, err
	}

	exclusions, err := s.LoadExclusions()
	if err != nil {
		return 0, err
	}
	existing := make(map[string]bool, len(exclusions))
	for _, e := range exclusions {
		existing[strings.ToLower(strings.TrimSpace(e.Entity))] = true
	}

	added := 0
	for _, e := range incoming {
		norm := strings.ToLower(strings.TrimSpace(e.Entity))
		if norm == "" || existing[norm] {
			continue
		}
		existing[norm] = true
		e.DateAdded = time.Now().Format(time.RFC3339)
		exclusions = append(exclusions, e)
		added++
	}

	if err := s.SaveExclusions(exclusions); err != nil {
		return 0, err
	}
	s.logger.Info("Imported exclusions from CSV",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: added})
	return added, nil
}

func writeCSV(path string, records interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := gocsv.MarshalFile(records, f); err != nil {
		return fmt.Errorf("error writing CSV file %s: %w", path, err)
	}
	return nil
}

func readCSV(path string, records interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening CSV file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := gocsv.UnmarshalFile(f, records); err != nil {
		return fmt.Errorf("error parsing CSV file %s: %w", path, err)
	}
	return nil
}
