package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rmadrazo97/dreamhome/pkg/coerce"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// SymbolPosition controls where the currency symbol goes relative to the amount
type SymbolPosition string

const (
	SymbolLeft       SymbolPosition = "left"
	SymbolLeftSpace  SymbolPosition = "left_space"
	SymbolRightSpace SymbolPosition = "right_space"
	SymbolRight      SymbolPosition = "right"
)

// Known reports whether p is one of the four supported placements.
func (p SymbolPosition) Known() bool {
	switch p {
	case SymbolLeft, SymbolLeftSpace, SymbolRightSpace, SymbolRight:
		return true
	}
	return false
}

// CurrencyConfig describes how prices are converted and displayed for one
// currency. It is served by the backend and only ever read by the formatter.
type CurrencyConfig struct {
	Code         string          `yaml:"code,omitempty" json:"code,omitempty"`
	Rate         decimal.Decimal `yaml:"rate" json:"rate"`
	Decimal      int             `yaml:"decimal" json:"decimal"`
	DecimalSep   string          `yaml:"dec_sep" json:"dec_sep"`
	ThousandsSep string          `yaml:"ths_sep" json:"ths_sep"`
	Symbol       string          `yaml:"symbol" json:"symbol"`
	SymbolPos    SymbolPosition  `yaml:"sb_pos" json:"sb_pos"`
}

// MarshalYAML writes the rate as a plain scalar instead of decimal internals.
func (c CurrencyConfig) MarshalYAML() (interface{}, error) {
	type Alias struct {
		Code         string         `yaml:"code,omitempty"`
		Rate         string         `yaml:"rate"`
		Decimal      int            `yaml:"decimal"`
		DecimalSep   string         `yaml:"dec_sep"`
		ThousandsSep string         `yaml:"ths_sep"`
		Symbol       string         `yaml:"symbol"`
		SymbolPos    SymbolPosition `yaml:"sb_pos"`
	}
	return Alias{
		Code:         c.Code,
		Rate:         c.Rate.String(),
		Decimal:      c.Decimal,
		DecimalSep:   c.DecimalSep,
		ThousandsSep: c.ThousandsSep,
		Symbol:       c.Symbol,
		SymbolPos:    c.SymbolPos,
	}, nil
}

// UnmarshalYAML accepts rate and decimal either as numbers or quoted strings
func (c *CurrencyConfig) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Code         string         `yaml:"code"`
		Rate         string         `yaml:"rate"`
		Decimal      string         `yaml:"decimal"`
		DecimalSep   string         `yaml:"dec_sep"`
		ThousandsSep string         `yaml:"ths_sep"`
		Symbol       string         `yaml:"symbol"`
		SymbolPos    SymbolPosition `yaml:"sb_pos"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	return c.fill(aux.Code, aux.Rate, aux.Decimal, aux.DecimalSep, aux.ThousandsSep, aux.Symbol, aux.SymbolPos)
}

// UnmarshalJSON accepts the backend payload, where decimal is sometimes sent
// as a string.
func (c *CurrencyConfig) UnmarshalJSON(data []byte) error {
	type Alias struct {
		Code         string         `json:"code"`
		Rate         json.Number    `json:"rate"`
		Decimal      any            `json:"decimal"`
		DecimalSep   string         `json:"dec_sep"`
		ThousandsSep string         `json:"ths_sep"`
		Symbol       string         `json:"symbol"`
		SymbolPos    SymbolPosition `json:"sb_pos"`
	}

	var aux Alias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var places string
	switch v := aux.Decimal.(type) {
	case nil:
	case string:
		places = v
	default:
		places = fmt.Sprint(v)
	}
	return c.fill(aux.Code, string(aux.Rate), places, aux.DecimalSep, aux.ThousandsSep, aux.Symbol, aux.SymbolPos)
}

func (c *CurrencyConfig) fill(code, rate, places, decSep, thsSep, symbol string, pos SymbolPosition) error {
	c.Code = strings.ToUpper(strings.TrimSpace(code))
	c.Rate = decimal.Zero
	if rate = strings.TrimSpace(rate); rate != "" {
		r, err := decimal.NewFromString(rate)
		if err != nil {
			return fmt.Errorf("invalid rate %q: %w", rate, err)
		}
		c.Rate = r
	}
	c.Decimal = 0
	if places = strings.TrimSpace(places); places != "" {
		n, ok := coerce.ParseInt(places)
		if !ok {
			return fmt.Errorf("invalid decimal places %q", places)
		}
		c.Decimal = int(n)
	}
	c.DecimalSep = decSep
	c.ThousandsSep = thsSep
	c.Symbol = symbol
	c.SymbolPos = SymbolPosition(strings.ToLower(strings.TrimSpace(string(pos))))
	return nil
}

// Validate checks the invariants the formatter relies on.
func (c *CurrencyConfig) Validate() error {
	if !c.Rate.IsPositive() {
		return fmt.Errorf("rate must be positive, got %s", c.Rate)
	}
	if c.Decimal < 0 {
		return fmt.Errorf("decimal places cannot be negative, got %d", c.Decimal)
	}
	if len([]rune(c.DecimalSep)) != 1 {
		return fmt.Errorf("dec_sep must be a single character, got %q", c.DecimalSep)
	}
	if c.DecimalSep == c.ThousandsSep {
		return fmt.Errorf("dec_sep and ths_sep must differ, both are %q", c.DecimalSep)
	}
	if c.SymbolPos != "" && !c.SymbolPos.Known() {
		return fmt.Errorf("unknown sb_pos %q", c.SymbolPos)
	}
	return nil
}
