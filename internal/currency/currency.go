package currency

import (
	"regexp"
	"strconv"
	"strings"
)

// Code identifies one of the currencies the converter understands.
type Code string

const (
	USD     Code = "USD"
	EUR     Code = "EUR"
	GBP     Code = "GBP"
	INR     Code = "INR"
	Unknown Code = "UNKNOWN"
)

// RateTable maps a currency to the multiplier that converts one unit of it
// into INR. INR itself is never listed; its rate is 1.
type RateTable map[Code]float64

// DefaultRates returns the built-in INR conversion rates.
func DefaultRates() RateTable {
	return RateTable{USD: 83.0, EUR: 90.0, GBP: 105.0}
}

// tokens maps literal currency markers to codes. Order matters: a token that
// contains another token ("US$" contains "$") must come first, otherwise the
// shorter one would shadow it. Keep this a slice, not a map.
var tokens = []struct {
	tok  string
	code Code
}{
	{"US$", USD},
	{"USD", USD},
	{"EUR", EUR},
	{"GBP", GBP},
	{"INR", INR},
	{"€", EUR},
	{"£", GBP},
	{"₹", INR},
	{"$", USD},
}

// Detect classifies a raw price string by the first matching currency token.
// Empty input and strings with no recognizable token both default to USD.
// Callers that must not conflate "no marker" with dollars use DetectStrict.
func Detect(raw string) Code {
	if raw == "" {
		return USD
	}
	for _, t := range tokens {
		if strings.Contains(raw, t.tok) {
			return t.code
		}
	}
	return USD
}

// DetectStrict is Detect without the USD assumption: strings with no
// recognizable token return Unknown instead.
func DetectStrict(raw string) Code {
	if raw == "" {
		return Unknown
	}
	for _, t := range tokens {
		if strings.Contains(raw, t.tok) {
			return t.code
		}
	}
	return Unknown
}

var numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ExtractAmount pulls the first numeric value out of a price string, after
// dropping digit-group commas. Handles "from $89.99", "USD 100" and ranges
// like "$89.99 - $129.99" (the first bound wins; the upper one is ignored).
// ok is false when the string carries no number at all.
func ExtractAmount(raw string) (val float64, ok bool) {
	if raw == "" {
		return 0, false
	}
	m := numberRe.FindString(strings.ReplaceAll(raw, ",", ""))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Converter turns heterogeneous price strings into INR display strings.
// The zero value uses DefaultRates.
type Converter struct {
	// Rates supplies per-currency INR multipliers. Currencies without an
	// entry pass through unconverted.
	Rates RateTable
	// Strict disables the USD fallback for unmarked strings, so a bare
	// "50" passes through instead of being silently scaled by the USD rate.
	Strict bool
}

// Convert normalizes a price string to "₹<amount>" with two decimals.
// It is total: any input yields a non-empty display string.
//   - empty input -> "N/A"
//   - no numeric value -> the input, unchanged
//   - INR input -> reformatted without scaling
//   - currency missing from the rate table -> the input, unchanged
func (c Converter) Convert(raw string) string {
	if raw == "" {
		return "N/A"
	}
	var code Code
	if c.Strict {
		code = DetectStrict(raw)
	} else {
		code = Detect(raw)
	}
	val, ok := ExtractAmount(raw)
	if !ok {
		return raw
	}
	if code == INR {
		return formatINR(val)
	}
	rates := c.Rates
	if rates == nil {
		rates = DefaultRates()
	}
	rate, ok := rates[code]
	if !ok {
		return raw
	}
	return formatINR(val * rate)
}

func formatINR(v float64) string {
	return "₹" + strconv.FormatFloat(v, 'f', 2, 64)
}
