package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmadrazo97/dreamhome/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, pattern, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", pattern)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

type recordingLogger struct {
	NopLogger
	warnings []string
}

func (r *recordingLogger) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, format)
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser(nil)
	assert.NotNil(t, parser)
	assert.IsType(t, NopLogger{}, parser.logger)
}

func TestLoadCatalogFromFile_YAML(t *testing.T) {
	catalogYAML := "default: usd\n" +
		"currencies:\n" +
		"  USD:\n" +
		"    rate: 1\n" +
		"    decimal: 2\n" +
		"    dec_sep: \".\"\n" +
		"    ths_sep: \",\"\n" +
		"    symbol: \"$\"\n" +
		"    sb_pos: left\n" +
		"  CZK:\n" +
		"    rate: \"23.1\"\n" +
		"    decimal: \"0\"\n" +
		"    dec_sep: \",\"\n" +
		"    ths_sep: \" \"\n" +
		"    symbol: \"Kč\"\n" +
		"    sb_pos: right_space\n"

	parser := NewInputParser(nil)
	catalog, err := parser.LoadCatalogFromFile(writeTemp(t, "catalog_*.yaml", catalogYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"CZK", "USD"}, catalog.Codes())

	czk := catalog.Lookup("czk")
	require.NotNil(t, czk)
	assert.Equal(t, "CZK", czk.Code)
	assert.Equal(t, 0, czk.Decimal)
	assert.Equal(t, " ", czk.ThousandsSep)
	assert.True(t, czk.Rate.Equal(decimal.RequireFromString("23.1")))

	def := catalog.Lookup("")
	require.NotNil(t, def)
	assert.Equal(t, "USD", def.Code)
}

func TestLoadCatalogFromFile_JSONPayload(t *testing.T) {
	payload := `{
  "default": "EUR",
  "currencies": {
    "EUR": {"rate": "0.92", "decimal": "2", "dec_sep": ",", "ths_sep": ".", "symbol": "€", "sb_pos": "right_space"}
  }
}`
	parser := NewInputParser(nil)
	catalog, err := parser.LoadCatalogFromFile(writeTemp(t, "catalog_*.json", payload))
	require.NoError(t, err)

	eur := catalog.Lookup("EUR")
	require.NotNil(t, eur)
	assert.Equal(t, 2, eur.Decimal)
	assert.Equal(t, domain.SymbolRightSpace, eur.SymbolPos)
}

func TestParseCatalog_SniffsJSONWithoutExtension(t *testing.T) {
	parser := NewInputParser(nil)
	path := writeTemp(t, "catalog_*", `{"default":"USD","currencies":{"USD":{"rate":1,"decimal":2,"dec_sep":".","ths_sep":",","symbol":"$","sb_pos":"left"}}}`)
	catalog, err := parser.LoadCatalogFromFile(path)
	require.NoError(t, err)
	assert.NotNil(t, catalog.Lookup("USD"))
}

func TestLoadCatalogFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser(nil)
	catalog, err := parser.LoadCatalogFromFile("nonexistent_catalog.yaml")

	assert.Error(t, err)
	assert.Nil(t, catalog)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadCatalogFromFile_InvalidYAML(t *testing.T) {
	bad := "default: USD\ncurrencies:\n\tUSD:\n\t\trate: 1\n"
	parser := NewInputParser(nil)
	catalog, err := parser.LoadCatalogFromFile(writeTemp(t, "catalog_*.yaml", bad))

	assert.Error(t, err)
	assert.Nil(t, catalog)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateCatalog(t *testing.T) {
	parser := NewInputParser(nil)

	tests := []struct {
		name   string
		mutate func(*domain.Catalog)
		errMsg string
	}{
		{"example is valid", func(*domain.Catalog) {}, ""},
		{"no currencies", func(c *domain.Catalog) { c.Currencies = nil }, "no currencies provided"},
		{"missing default", func(c *domain.Catalog) { c.Default = "" }, "default currency is required"},
		{"unknown default", func(c *domain.Catalog) { c.Default = "JPY" }, "unknown currency"},
		{"bad currency", func(c *domain.Catalog) {
			usd := c.Currencies["USD"]
			usd.DecimalSep = ""
			c.Currencies["USD"] = usd
		}, "currency USD validation failed"},
		{"duplicate code", func(c *domain.Catalog) { c.Currencies["usd"] = c.Currencies["USD"] }, "listed twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := parser.CreateExampleCatalog()
			tt.mutate(catalog)
			err := parser.ValidateCatalog(catalog)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestResolveCurrency(t *testing.T) {
	logger := &recordingLogger{}
	parser := NewInputParser(logger)
	catalog := parser.CreateExampleCatalog()

	cfg, err := parser.ResolveCurrency(catalog, "gbp")
	require.NoError(t, err)
	assert.Equal(t, "£", cfg.Symbol)

	cfg, err = parser.ResolveCurrency(catalog, "XYZ")
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
	assert.Len(t, logger.warnings, 1)
}

func TestSaveCatalogRoundTrip(t *testing.T) {
	parser := NewInputParser(nil)
	catalog := parser.CreateExampleCatalog()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, SaveCatalog(catalog, path))

	loaded, err := parser.LoadCatalogFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, catalog.Codes(), loaded.Codes())
	for _, code := range catalog.Codes() {
		want := catalog.Lookup(code)
		got := loaded.Lookup(code)
		require.NotNil(t, got, code)
		assert.True(t, want.Rate.Equal(got.Rate), code)
		assert.Equal(t, want.DecimalSep, got.DecimalSep, code)
		assert.Equal(t, want.ThousandsSep, got.ThousandsSep, code)
		assert.Equal(t, want.Symbol, got.Symbol, code)
		assert.Equal(t, want.SymbolPos, got.SymbolPos, code)
	}
}

func TestLoadListingsFromFile(t *testing.T) {
	listingsYAML := "listings:\n" +
		"  - id: p1\n" +
		"    title: Loft in Madrid\n" +
		"    kind: property\n" +
		"    price: 250000\n" +
		"    lat: 40.4168\n" +
		"    lng: -3.7038\n" +
		"  - id: e1\n" +
		"    title: Jazz night\n" +
		"    kind: event\n" +
		"    price: \"35.5\"\n"

	parser := NewInputParser(nil)
	listings, err := parser.LoadListingsFromFile(writeTemp(t, "listings_*.yaml", listingsYAML))
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "Loft in Madrid", listings[0].Title)
	assert.Equal(t, 250000, listings[0].Price)
	assert.Equal(t, "35.5", listings[1].Price)
	assert.Nil(t, listings[1].Lat)
}

func TestLoadListingsFromFile_MissingTitle(t *testing.T) {
	parser := NewInputParser(nil)
	_, err := parser.LoadListingsFromFile(writeTemp(t, "listings_*.json", `{"listings":[{"id":"x","price":1}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}
