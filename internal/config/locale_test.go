package config

import (
	"errors"
	"testing"

	"github.com/rmadrazo97/dreamhome/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestPresetFor(t *testing.T) {
	tests := []struct {
		name   string
		tag    language.Tag
		iso    string
		decSep string
		thsSep string
		places int
		symbol string
		pos    domain.SymbolPosition
	}{
		{"english dollars", language.English, "USD", ".", ",", 2, "$", domain.SymbolLeft},
		{"german euros", language.German, "EUR", ",", ".", 2, "€", domain.SymbolRightSpace},
		{"japanese yen", language.Japanese, "JPY", ".", ",", 0, "", domain.SymbolLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := PresetFor(tt.tag, tt.iso)
			require.NoError(t, err)
			assert.Equal(t, tt.iso, cfg.Code)
			assert.Equal(t, tt.decSep, cfg.DecimalSep)
			assert.Equal(t, tt.thsSep, cfg.ThousandsSep)
			assert.Equal(t, tt.places, cfg.Decimal)
			if tt.symbol != "" {
				assert.Equal(t, tt.symbol, cfg.Symbol)
			} else {
				assert.NotEmpty(t, cfg.Symbol)
			}
			assert.Equal(t, tt.pos, cfg.SymbolPos)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestPresetFor_UnknownCurrency(t *testing.T) {
	_, err := PresetFor(language.English, "NOPE")
	assert.True(t, errors.Is(err, ErrUnknownCurrency))
}
