package output

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmadrazo97/dreamhome/internal/domain"
	"github.com/rmadrazo97/dreamhome/internal/formatting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eur() *domain.CurrencyConfig {
	return &domain.CurrencyConfig{
		Code:         "EUR",
		Rate:         decimal.NewFromInt(1),
		Decimal:      1,
		DecimalSep:   ",",
		ThousandsSep: ".",
		Symbol:       "€",
		SymbolPos:    domain.SymbolRightSpace,
	}
}

func testListings() []domain.Listing {
	return []domain.Listing{
		{ID: "p1", Title: "Villa, sea view", Kind: "property", Price: 2500000, Lat: 36.51, Lng: -4.88},
		{ID: "e1", Title: "Jazz night", Kind: "event", Price: "35.5"},
		{ID: "r1", Title: "Tapas bar", Kind: "restaurant", Price: "n/a", Lat: 91, Lng: 0},
	}
}

func TestBuildPriceSheet(t *testing.T) {
	sheet := BuildPriceSheet(testListings(), eur(), nil)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "EUR", sheet.Currency)

	assert.Equal(t, "2,5 M €", sheet.Rows[0].Display)
	assert.Equal(t, "2.500.000,0", sheet.Rows[0].Amount)
	assert.Equal(t, "2500000", sheet.Rows[0].RawPrice)
	assert.True(t, sheet.Rows[0].ValidLocation)

	assert.Equal(t, "35,5 €", sheet.Rows[1].Display)
	assert.False(t, sheet.Rows[1].ValidLocation)

	assert.Equal(t, "0,0 €", sheet.Rows[2].Display)
	assert.False(t, sheet.Rows[2].ValidLocation)
}

func TestBuildPriceSheet_NoConfig(t *testing.T) {
	sheet := BuildPriceSheet(testListings(), nil, formatting.New())
	assert.Equal(t, "", sheet.Currency)
	assert.Equal(t, "$2500000", sheet.Rows[0].Display)
	assert.Equal(t, "35.5", sheet.Rows[1].Amount)
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(BuildPriceSheet(testListings(), eur(), nil))
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "PRICE SHEET EUR")
	assert.Contains(t, content, "2,5 M €")
	assert.Contains(t, content, "invalid")
	assert.Contains(t, content, "3 listing(s)")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(BuildPriceSheet(testListings(), eur(), nil))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID,Title,Kind,Currency"))
	// commas inside fields are quoted
	assert.Equal(t, `p1,"Villa, sea view",property,EUR,2500000,"2,5 M €","2.500.000,0",true`, lines[1])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(BuildPriceSheet(testListings(), eur(), nil))
	require.NoError(t, err)

	var back domain.PriceSheet
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, "EUR", back.Currency)
	assert.Equal(t, "35,5 €", back.Rows[1].Display)
}

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "console", GetFormatterByName("TXT").Name())
	assert.Equal(t, "csv", GetFormatterByName(" csv ").Name())
	assert.Equal(t, "json", GetFormatterByName("json-pretty").Name())
	assert.Nil(t, GetFormatterByName("pdf"))
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
}

func TestRender_Unsupported(t *testing.T) {
	_, err := Render(&domain.PriceSheet{}, "pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "console, csv, json")
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "count", F: func(s *domain.PriceSheet) ([]byte, error) {
		return []byte(strings.Repeat("x", len(s.Rows))), nil
	}}
	out, err := f.Format(BuildPriceSheet(testListings(), eur(), nil))
	require.NoError(t, err)
	assert.Equal(t, "xxx", string(out))
	assert.Equal(t, "count", f.Name())
}

func TestWriteFormatted(t *testing.T) {
	dir := t.TempDir()
	name, err := WriteFormatted(CSVFormatter{}, BuildPriceSheet(testListings(), eur(), nil), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(name))
	assert.True(t, strings.HasPrefix(filepath.Base(name), "price_sheet_eur_"))
	assert.Equal(t, ".csv", filepath.Ext(name))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jazz night")
}
