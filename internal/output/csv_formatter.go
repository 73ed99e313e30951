package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rmadrazo97/dreamhome/internal/domain"
)

// CSVFormatter implements the CSV output (one row per listing, input order).
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(sheet *domain.PriceSheet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"ID", "Title", "Kind", "Currency", "RawPrice", "Display", "Amount", "ValidLocation"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range sheet.Rows {
		record := []string{
			row.ID,
			row.Title,
			row.Kind,
			sheet.Currency,
			row.RawPrice,
			row.Display,
			row.Amount,
			strconv.FormatBool(row.ValidLocation),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
