package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rmadrazo97/dreamhome/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// leadingSymbolLanguages put the currency symbol before the amount; every
// other language gets "amount symbol".
var leadingSymbolLanguages = map[string]bool{
	"en": true,
	"ja": true,
	"zh": true,
	"ko": true,
	"hi": true,
	"th": true,
}

// separatorSample has grouping and a fraction so both glyphs show up when printed.
const separatorSample = 1234567.5

// PresetFor derives a currency config for iso as shown to speakers of tag,
// using CLDR data from golang.org/x/text. The rate is 1; callers set the real
// exchange rate from the backend.
func PresetFor(tag language.Tag, iso string) (*domain.CurrencyConfig, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(iso))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, iso)
	}

	printer := message.NewPrinter(tag)
	decSep, thsSep := separatorsFor(printer)
	scale, _ := currency.Standard.Rounding(unit)

	return &domain.CurrencyConfig{
		Code:         unit.String(),
		Rate:         decimal.NewFromInt(1),
		Decimal:      scale,
		DecimalSep:   decSep,
		ThousandsSep: thsSep,
		Symbol:       symbolFor(printer, unit),
		SymbolPos:    symbolPositionFor(tag),
	}, nil
}

// separatorsFor prints a sample number and reads back the glyphs the locale
// uses between digit groups. The last glyph run is the decimal separator.
func separatorsFor(p *message.Printer) (decSep, thsSep string) {
	sample := p.Sprintf("%v", number.Decimal(separatorSample, number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	var runs []string
	var cur strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}

	switch len(runs) {
	case 0:
		return ".", ""
	case 1:
		return runs[0], ""
	default:
		return runs[len(runs)-1], runs[0]
	}
}

func symbolFor(p *message.Printer, unit currency.Unit) string {
	// x/text prints "<symbol> <amount>"
	full := strings.TrimSpace(p.Sprintf("%v", currency.NarrowSymbol(unit.Amount(0))))
	if idx := strings.LastIndex(full, " "); idx > 0 {
		if sym := strings.TrimSpace(full[:idx]); sym != "" {
			return sym
		}
	}
	return unit.String()
}

func symbolPositionFor(tag language.Tag) domain.SymbolPosition {
	base, _ := tag.Base()
	if leadingSymbolLanguages[base.String()] {
		return domain.SymbolLeft
	}
	return domain.SymbolRightSpace
}
