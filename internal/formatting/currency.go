// Package formatting renders listing prices for display. Every function here is
// pure and safe to call from render paths: bad input degrades to a default
// string instead of an error.
package formatting

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rmadrazo97/dreamhome/internal/domain"
	"github.com/rmadrazo97/dreamhome/pkg/coerce"
	"github.com/rmadrazo97/dreamhome/pkg/decimal"
)

// DefaultFallbackSymbol prefixes raw prices while no currency config is loaded.
const DefaultFallbackSymbol = "$"

// Formatter holds the presentation policy shared by every call. The zero
// value is not useful; use New.
type Formatter struct {
	compact        bool
	compactBare    bool
	fallbackSymbol string
}

// Option configures a Formatter
type Option func(*Formatter)

// WithoutCompaction disables the K/M abbreviation of large amounts.
func WithoutCompaction() Option {
	return func(f *Formatter) {
		f.compact = false
	}
}

// WithBareCompaction also abbreviates amounts rendered without a symbol. By
// default those are printed in full.
func WithBareCompaction() Option {
	return func(f *Formatter) {
		f.compactBare = true
	}
}

// WithFallbackSymbol replaces the symbol used when no config is available.
func WithFallbackSymbol(symbol string) Option {
	return func(f *Formatter) {
		f.fallbackSymbol = symbol
	}
}

// New builds a Formatter. By default amounts shown with a symbol are compacted
// and the fallback symbol is "$".
func New(opts ...Option) *Formatter {
	f := &Formatter{
		compact:        true,
		fallbackSymbol: DefaultFallbackSymbol,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

var defaultFormatter = New()

// FormatCurrencyOutput converts price with cfg and renders it for display.
// withSymbol controls whether the currency symbol is placed around the amount;
// only symbol renderings abbreviate amounts above 99999 to " K" or " M".
// A nil cfg yields the raw price, prefixed with "$" when withSymbol is set.
func FormatCurrencyOutput(price any, withSymbol bool, cfg *domain.CurrencyConfig) string {
	return defaultFormatter.Format(price, withSymbol, cfg)
}

// FormatPrice is FormatCurrencyOutput with the symbol.
func FormatPrice(price any, cfg *domain.CurrencyConfig) string {
	return defaultFormatter.Format(price, true, cfg)
}

// FormatCurrencyStrict behaves like FormatCurrencyOutput but reports
// unparseable prices and missing or invalid configs as a *FormatError.
func FormatCurrencyStrict(price any, withSymbol bool, cfg *domain.CurrencyConfig) (string, error) {
	return defaultFormatter.FormatStrict(price, withSymbol, cfg)
}

// Format renders price. It never fails; unparseable prices count as zero.
func (f *Formatter) Format(price any, withSymbol bool, cfg *domain.CurrencyConfig) string {
	value := coerce.Float(price)
	if cfg == nil {
		if withSymbol {
			return f.fallbackSymbol + rawNumber(value)
		}
		return rawNumber(value)
	}
	return f.render(value, withSymbol, cfg)
}

// FormatStrict renders price like Format, but returns an error alongside the
// lenient rendering when the input had to be defaulted.
func (f *Formatter) FormatStrict(price any, withSymbol bool, cfg *domain.CurrencyConfig) (string, error) {
	out := f.Format(price, withSymbol, cfg)
	if _, ok := coerce.ParseFloat(price); !ok {
		return out, &FormatError{Price: price, Value: out, Err: ErrInvalidPrice}
	}
	if cfg == nil {
		return out, &FormatError{Price: price, Value: out, Err: ErrMissingConfig}
	}
	if err := cfg.Validate(); err != nil {
		return out, &FormatError{Price: price, Value: out, Err: fmt.Errorf("%w: %v", ErrInvalidConfig, err)}
	}
	return out, nil
}

func (f *Formatter) render(value float64, withSymbol bool, cfg *domain.CurrencyConfig) string {
	amount := decimal.NewMoney(value).Convert(cfg.Rate)
	unit := decimal.UnitNone
	if f.compact && (withSymbol || f.compactBare) {
		amount, unit = amount.Compact()
	}

	number := groupDigits(amount.Fixed(cfg.Decimal), cfg.DecimalSep, cfg.ThousandsSep) + string(unit)
	if !withSymbol {
		return number
	}
	return placeSymbol(number, cfg.Symbol, cfg.SymbolPos)
}

// placeSymbol attaches symbol to an already formatted amount. Unknown
// positions fall back to a trailing symbol with no space.
func placeSymbol(number, symbol string, pos domain.SymbolPosition) string {
	switch pos {
	case domain.SymbolLeft:
		return symbol + number
	case domain.SymbolLeftSpace:
		return symbol + " " + number
	case domain.SymbolRightSpace:
		return number + " " + symbol
	default:
		return number + symbol
	}
}

// groupDigits takes a plain fixed-point string ("-1234567.89") and inserts
// thsSep every three integer digits, swapping the '.' for decSep.
func groupDigits(fixed, decSep, thsSep string) string {
	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var b strings.Builder
	b.Grow(len(fixed) + len(intPart)/3*len(thsSep) + len(decSep))
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:min(lead, len(intPart))])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(thsSep)
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteString(decSep)
		b.WriteString(frac)
	}
	return b.String()
}

// rawNumber prints value the way the unformatted fallback shows it: the
// shortest exact representation, switching to exponent form for very large
// or very small magnitudes.
func rawNumber(value float64) string {
	abs := math.Abs(value)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(value, 'e', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
