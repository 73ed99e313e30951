package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmadrazo97/dreamhome/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCurrency is returned when a requested currency is not in the catalog.
var ErrUnknownCurrency = errors.New("unknown currency")

// InputParser handles parsing of currency catalogs and listing files
type InputParser struct {
	logger Logger
}

// NewInputParser creates a new input parser. A nil logger discards output.
func NewInputParser(logger Logger) *InputParser {
	if logger == nil {
		logger = NopLogger{}
	}
	return &InputParser{logger: logger}
}

// LoadCatalogFromFile loads a currency catalog from a YAML or JSON file
func (ip *InputParser) LoadCatalogFromFile(filename string) (*domain.Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	catalog, err := ip.ParseCatalog(data, isJSON(filename, data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	ip.logger.Infof("loaded %d currencies from %s (default %s)", len(catalog.Currencies), filename, catalog.Default)
	return catalog, nil
}

// ParseCatalog decodes and validates a catalog. JSON is the shape served by
// the backend's currency endpoint; YAML is used for local files.
func (ip *InputParser) ParseCatalog(data []byte, asJSON bool) (*domain.Catalog, error) {
	var catalog domain.Catalog
	if asJSON {
		if err := json.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := ip.ValidateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	return &catalog, nil
}

// ValidateCatalog validates the loaded catalog
func (ip *InputParser) ValidateCatalog(catalog *domain.Catalog) error {
	if len(catalog.Currencies) == 0 {
		return fmt.Errorf("no currencies provided")
	}

	seen := make(map[string]string, len(catalog.Currencies))
	for code, cfg := range catalog.Currencies {
		upper := strings.ToUpper(code)
		if other, dup := seen[upper]; dup {
			return fmt.Errorf("currency %s listed twice (%s, %s)", upper, other, code)
		}
		seen[upper] = code
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("currency %s validation failed: %w", code, err)
		}
		if cfg.SymbolPos == "" {
			ip.logger.Debugf("currency %s has no sb_pos, symbol will trail the amount", code)
		}
	}

	if catalog.Default == "" {
		return fmt.Errorf("default currency is required")
	}
	if catalog.Lookup(catalog.Default) == nil {
		return fmt.Errorf("default currency %s: %w", catalog.Default, ErrUnknownCurrency)
	}
	return nil
}

// ResolveCurrency picks code from the catalog, falling back to the default
// when code is empty.
func (ip *InputParser) ResolveCurrency(catalog *domain.Catalog, code string) (*domain.CurrencyConfig, error) {
	cfg := catalog.Lookup(code)
	if cfg == nil {
		ip.logger.Warnf("currency %q not found, available: %s", code, strings.Join(catalog.Codes(), ", "))
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return cfg, nil
}

// LoadListingsFromFile loads listings to be priced from a YAML or JSON file
func (ip *InputParser) LoadListingsFromFile(filename string) ([]domain.Listing, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var set domain.ListingSet
	if isJSON(filename, data) {
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i, l := range set.Listings {
		if l.Title == "" {
			return nil, fmt.Errorf("listing %d: title is required", i)
		}
	}
	ip.logger.Debugf("loaded %d listings from %s", len(set.Listings), filename)
	return set.Listings, nil
}

// SaveCatalog writes catalog as YAML
func SaveCatalog(catalog *domain.Catalog, filename string) error {
	b, err := yaml.Marshal(catalog)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleCatalog creates an example currency catalog
func (ip *InputParser) CreateExampleCatalog() *domain.Catalog {
	return &domain.Catalog{
		Default: "USD",
		Currencies: map[string]domain.CurrencyConfig{
			"USD": {
				Rate:         decimal.NewFromInt(1),
				Decimal:      2,
				DecimalSep:   ".",
				ThousandsSep: ",",
				Symbol:       "$",
				SymbolPos:    domain.SymbolLeft,
			},
			"EUR": {
				Rate:         decimal.RequireFromString("0.92"),
				Decimal:      2,
				DecimalSep:   ",",
				ThousandsSep: ".",
				Symbol:       "€",
				SymbolPos:    domain.SymbolRightSpace,
			},
			"CZK": {
				Rate:         decimal.RequireFromString("23.1"),
				Decimal:      0,
				DecimalSep:   ",",
				ThousandsSep: " ",
				Symbol:       "Kč",
				SymbolPos:    domain.SymbolRightSpace,
			},
			"GBP": {
				Rate:         decimal.RequireFromString("0.79"),
				Decimal:      2,
				DecimalSep:   ".",
				ThousandsSep: ",",
				Symbol:       "£",
				SymbolPos:    domain.SymbolLeft,
			},
		},
	}
}

func isJSON(filename string, data []byte) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return true
	case ".yaml", ".yml":
		return false
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
