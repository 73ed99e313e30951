package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/rmadrazo97/dreamhome/internal/domain"
)

// ConsoleFormatter prints the sheet as an aligned text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(sheet *domain.PriceSheet) ([]byte, error) {
	var buf bytes.Buffer
	currency := sheet.Currency
	if currency == "" {
		currency = "(unconverted)"
	}
	fmt.Fprintf(&buf, "PRICE SHEET %s\n", currency)
	fmt.Fprintln(&buf, "================================")

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tAMOUNT\tLOCATION")
	for _, row := range sheet.Rows {
		loc := "ok"
		if !row.ValidLocation {
			loc = "invalid"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", row.ID, row.Title, row.Display, row.Amount, loc)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "\n%d listing(s)\n", len(sheet.Rows))
	return buf.Bytes(), nil
}
