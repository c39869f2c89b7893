// Package store manages the operator-curated merchant, exclusion, and
// suggestion lists that feed a classification run. Lists persist as YAML in
// the standard config locations; CSV import/export is provided for
// interchange with the legacy settings tooling.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"rsgrecovery/statement-analyzer/internal/logging"
	"rsgrecovery/statement-analyzer/internal/parsererror"
)

// Hardcoded baseline merged into every known-processor set.
var baselineProcessors = []string{"Square", "Stripe", "Intuit", "Coinbase", "Etsy", "PayPal"}

// Merchant is one known payment processor with the contact fields the
// operator tracks alongside the matchable name.
type Merchant struct {
	Root      string `yaml:"root" csv:"root"`
	Name      string `yaml:"name" csv:"name"`
	Co        string `yaml:"co,omitempty" csv:"co"`
	Address   string `yaml:"address,omitempty" csv:"address"`
	City      string `yaml:"city,omitempty" csv:"city"`
	State     string `yaml:"state,omitempty" csv:"state"`
	Zip       string `yaml:"zip,omitempty" csv:"zip"`
	Notes     string `yaml:"notes,omitempty" csv:"notes"`
	DateAdded string `yaml:"date_added,omitempty" csv:"-"`
}

// Exclusion is one entity suppressed from analysis output.
type Exclusion struct {
	Entity    string `yaml:"entity" csv:"entity"`
	Reason    string `yaml:"reason,omitempty" csv:"reason"`
	Notes     string `yaml:"notes,omitempty" csv:"notes"`
	DateAdded string `yaml:"date_added,omitempty" csv:"-"`
}

// Suggestion is a possible processor surfaced by analysis, awaiting operator
// review before promotion to the merchant list.
type Suggestion struct {
	Name        string `yaml:"name"`
	DateFound   string `yaml:"date_found"`
	FoundInFile string `yaml:"found_in_file,omitempty"`
}

type merchantsFile struct {
	Merchants []Merchant `yaml:"merchants"`
}

type exclusionsFile struct {
	Exclusions []Exclusion `yaml:"exclusions"`
}

type suggestionsFile struct {
	Suggestions []Suggestion `yaml:"suggestions"`
}

// SettingsStore loads and saves the curated lists. Missing files mean empty
// lists, not errors, so a fresh install analyzes with just the baseline.
type SettingsStore struct {
	MerchantsFile   string
	ExclusionsFile  string
	SuggestionsFile string
	logger          logging.Logger
}

// NewSettingsStore creates a store over the given file names. Empty names
// fall back to the defaults (merchants.yaml, exclusions.yaml,
// suggestions.yaml).
func NewSettingsStore(merchants, exclusions, suggestions string, logger logging.Logger) *SettingsStore {
	if merchants == "" {
		merchants = "merchants.yaml"
	}
	if exclusions == "" {
		exclusions = "exclusions.yaml"
	}
	if suggestions == "" {
		suggestions = "suggestions.yaml"
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &SettingsStore{
		MerchantsFile:   merchants,
		ExclusionsFile:  exclusions,
		SuggestionsFile: suggestions,
		logger:          logger,
	}
}

// FindConfigFile looks for a configuration file in the standard locations.
func (s *SettingsStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", "statement-analyzer", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// writePath resolves where a list file should be written: the existing file
// if found, else the database directory.
func (s *SettingsStore) writePath(filename string) string {
	if path, err := s.FindConfigFile(filename); err == nil {
		return path
	}
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join("database", filename)
}

func (s *SettingsStore) loadYAML(filename string, out interface{}) error {
	path, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Settings file not found, using empty list",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return nil
		}
		return fmt.Errorf("error resolving settings file %s: %w", filename, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &parsererror.StoreError{File: path, Op: "read", Err: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return &parsererror.StoreError{File: path, Op: "parse", Err: err}
	}
	return nil
}

func (s *SettingsStore) saveYAML(filename string, in interface{}) error {
	path := s.writePath(filename)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		return &parsererror.StoreError{File: filename, Op: "marshal", Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &parsererror.StoreError{File: path, Op: "write", Err: err}
	}
	return nil
}

// LoadMerchants loads the merchant list. A missing file is an empty list.
func (s *SettingsStore) LoadMerchants() ([]Merchant, error) {
	var f merchantsFile
	if err := s.loadYAML(s.MerchantsFile, &f); err != nil {
		return nil, err
	}
	return f.Merchants, nil
}

// SaveMerchants persists the merchant list.
func (s *SettingsStore) SaveMerchants(merchants []Merchant) error {
	return s.saveYAML(s.MerchantsFile, merchantsFile{Merchants: merchants})
}

// LoadExclusions loads the exclusion list. A missing file is an empty list.
func (s *SettingsStore) LoadExclusions() ([]Exclusion, error) {
	var f exclusionsFile
	if err := s.loadYAML(s.ExclusionsFile, &f); err != nil {
		return nil, err
	}
	return f.Exclusions, nil
}

// SaveExclusions persists the exclusion list.
func (s *SettingsStore) SaveExclusions(exclusions []Exclusion) error {
	return s.saveYAML(s.ExclusionsFile, exclusionsFile{Exclusions: exclusions})
}

// LoadSuggestions loads pending suggestions. A missing file is an empty list.
func (s *SettingsStore) LoadSuggestions() ([]Suggestion, error) {
	var f suggestionsFile
	if err := s.loadYAML(s.SuggestionsFile, &f); err != nil {
		return nil, err
	}
	return f.Suggestions, nil
}

// SaveSuggestions persists pending suggestions.
func (s *SettingsStore) SaveSuggestions(suggestions []Suggestion) error {
	return s.saveYAML(s.SuggestionsFile, suggestionsFile{Suggestions: suggestions})
}

// AddSuggestion records a possible processor found during analysis. Names
// already on the merchant list or already suggested are skipped.
func (s *SettingsStore) AddSuggestion(name, foundInFile string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	merchants, err := s.LoadMerchants()
	if err != nil {
		return err
	}
	for _, m := range merchants {
		if strings.EqualFold(m.Name, name) {
			return nil
		}
	}

	suggestions, err := s.LoadSuggestions()
	if err != nil {
		return err
	}
	for _, sg := range suggestions {
		if strings.EqualFold(sg.Name, name) {
			return nil
		}
	}

	suggestions = append(suggestions, Suggestion{
		Name:        name,
		DateFound:   time.Now().Format(time.RFC3339),
		FoundInFile: foundInFile,
	})
	return s.SaveSuggestions(suggestions)
}

// ApproveSuggestions promotes the named suggestions to the merchant list and
// removes them from the pending set. Unknown names are ignored.
func (s *SettingsStore) ApproveSuggestions(names []string) error {
	suggestions, err := s.LoadSuggestions()
	if err != nil {
		return err
	}
	merchants, err := s.LoadMerchants()
	if err != nil {
		return err
	}

	approve := make(map[string]bool, len(names))
	for _, n := range names {
		approve[strings.ToLower(strings.TrimSpace(n))] = true
	}

	var remaining []Suggestion
	for _, sg := range suggestions {
		if !approve[strings.ToLower(sg.Name)] {
			remaining = append(remaining, sg)
			continue
		}
		merchants = append(merchants, Merchant{
			Name:      sg.Name,
			DateAdded: time.Now().Format(time.RFC3339),
		})
	}

	if err := s.SaveMerchants(merchants); err != nil {
		return err
	}
	return s.SaveSuggestions(remaining)
}

// KnownProcessors merges the hardcoded baseline with the stored merchant
// names, deduplicated case-insensitively and sorted.
func (s *SettingsStore) KnownProcessors() ([]string, error) {
	merchants, err := s.LoadMerchants()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		norm := strings.ToLower(name)
		if name == "" || seen[norm] {
			return
		}
		seen[norm] = true
		names = append(names, name)
	}
	for _, base := range baselineProcessors {
		add(base)
	}
	for _, m := range merchants {
		add(m.Name)
	}
	sort.Strings(names)
	return names, nil
}

// ExclusionEntities returns the exclusion entity strings for a run.
func (s *SettingsStore) ExclusionEntities() ([]string, error) {
	exclusions, err := s.LoadExclusions()
	if err != nil {
		return nil, err
	}
	entities := make([]string, 0, len(exclusions))
	for _, e := range exclusions {
		if strings.TrimSpace(e.Entity) != "" {
			entities = append(entities, e.Entity)
		}
	}
	return entities, nil
}
