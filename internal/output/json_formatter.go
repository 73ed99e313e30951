package output

import (
	"encoding/json"

	"github.com/rmadrazo97/dreamhome/internal/domain"
)

// JSONFormatter serializes the price sheet as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(sheet *domain.PriceSheet) ([]byte, error) {
	return json.MarshalIndent(sheet, "", "  ")
}
