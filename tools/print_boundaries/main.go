package main

import (
	"fmt"

	"github.com/rmadrazo97/dreamhome/internal/config"
	"github.com/rmadrazo97/dreamhome/internal/formatting"
)

// Prints how prices around the K/M thresholds render in every example currency.
func main() {
	parser := config.NewInputParser(nil)
	catalog := parser.CreateExampleCatalog()

	prices := []float64{99999, 100000, 999999, 1000000, 2500000}
	for _, code := range catalog.Codes() {
		cfg := catalog.Lookup(code)
		fmt.Printf("%s (rate %s, %s):\n", code, cfg.Rate.String(), cfg.SymbolPos)
		for _, p := range prices {
			fmt.Printf("  %-10.0f %-18s %s\n", p,
				formatting.FormatCurrencyOutput(p, true, cfg),
				formatting.FormatCurrencyOutput(p, false, cfg))
		}
	}
}
