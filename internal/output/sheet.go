package output

import (
	"fmt"

	"github.com/rmadrazo97/dreamhome/internal/domain"
	"github.com/rmadrazo97/dreamhome/internal/formatting"
	"github.com/rmadrazo97/dreamhome/pkg/geoutil"
)

// BuildPriceSheet prices every listing in cfg's currency. A nil cfg is allowed
// and produces the unconverted fallback rendering. A nil f uses the default
// compacting formatter.
func BuildPriceSheet(listings []domain.Listing, cfg *domain.CurrencyConfig, f *formatting.Formatter) *domain.PriceSheet {
	if f == nil {
		f = formatting.New()
	}
	sheet := &domain.PriceSheet{Rows: make([]domain.PriceRow, 0, len(listings))}
	if cfg != nil {
		sheet.Currency = cfg.Code
	}
	for _, l := range listings {
		sheet.Rows = append(sheet.Rows, domain.PriceRow{
			ID:            l.ID,
			Title:         l.Title,
			Kind:          l.Kind,
			RawPrice:      rawPrice(l.Price),
			Display:       f.Format(l.Price, true, cfg),
			Amount:        f.Format(l.Price, false, cfg),
			ValidLocation: geoutil.ValidCoordinates(l.Lat, l.Lng),
		})
	}
	return sheet
}

func rawPrice(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
