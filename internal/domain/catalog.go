package domain

import (
	"sort"
	"strings"
)

// Catalog is the set of display currencies the backend offers, keyed by ISO code.
type Catalog struct {
	Default    string                    `yaml:"default" json:"default"`
	Currencies map[string]CurrencyConfig `yaml:"currencies" json:"currencies"`
}

// Lookup returns the config for code, or the default currency when code is
// empty. It returns nil when the currency is unknown, which formatters treat
// as "not loaded yet".
func (c *Catalog) Lookup(code string) *CurrencyConfig {
	if c == nil {
		return nil
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = strings.ToUpper(c.Default)
	}
	for key, cfg := range c.Currencies {
		if strings.ToUpper(key) == code {
			cfg.Code = code
			return &cfg
		}
	}
	return nil
}

// Codes lists the currency codes in the catalog, sorted.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.Currencies))
	for key := range c.Currencies {
		codes = append(codes, strings.ToUpper(key))
	}
	sort.Strings(codes)
	return codes
}

// ListingSet is the file form of a batch of listings to price.
type ListingSet struct {
	Listings []Listing `yaml:"listings" json:"listings"`
}
