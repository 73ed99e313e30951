// Package coerce turns loosely typed numeric input (numbers, numeric strings,
// decoded JSON values) into Go numbers without ever failing. Anything that does
// not start with a number becomes zero.
package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDecimalPlaces is the precision FormatNumber callers use when they have
// no better idea.
const DefaultDecimalPlaces = 1

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseFloat reads the longest numeric prefix of v. The second result is false
// when no number could be read or the value is not finite.
func ParseFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case decimal.Decimal:
		f = n.InexactFloat64()
	case json.Number:
		return parseFloatPrefix(string(n))
	case string:
		return parseFloatPrefix(n)
	case []byte:
		return parseFloatPrefix(string(n))
	case fmt.Stringer:
		return parseFloatPrefix(n.String())
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseFloatPrefix(s string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) {
		// only overflow gets here, e.g. "1e999"
		return 0, false
	}
	return f, true
}

// ParseInt reads the leading integer of v, truncating any fraction.
func ParseInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case string:
		return parseIntPrefix(n)
	case []byte:
		return parseIntPrefix(string(n))
	case json.Number:
		return parseIntPrefix(string(n))
	case fmt.Stringer:
		if _, isDec := v.(decimal.Decimal); !isDec {
			return parseIntPrefix(n.String())
		}
	}
	f, ok := ParseFloat(v)
	if !ok || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}

func parseIntPrefix(s string) (int64, bool) {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	i, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float coerces v to a float64, returning 0 when v is not numeric.
func Float(v any) float64 {
	f, _ := ParseFloat(v)
	if f == 0 {
		// drop the sign of negative zero
		return 0
	}
	return f
}

// Int coerces v to an integer, returning 0 when v is not numeric.
func Int(v any) int64 {
	i, _ := ParseInt(v)
	return i
}

// FormatNumber renders v with a fixed number of fractional digits and no
// grouping. Non-numeric input renders as zero.
func FormatNumber(v any, places int) string {
	if places < 0 {
		places = 0
	}
	return strconv.FormatFloat(Float(v), 'f', places, 64)
}
