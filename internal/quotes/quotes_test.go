package quotes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"shopassist/internal/currency"
)

func sampleQuotes(n int) []RawQuote {
	out := make([]RawQuote, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, RawQuote{
			Title: "Item " + string(rune('A'+i)),
			Price: "$10.00",
			Link:  "https://shop.example/item",
		})
	}
	return out
}

func TestBuildRows_BoundedByTopN(t *testing.T) {
	conv := currency.Converter{Rates: currency.DefaultRates()}

	rows := BuildRows(sampleQuotes(10), 3, conv)
	require.Len(t, rows, 3)

	rows = BuildRows(sampleQuotes(2), 3, conv)
	require.Len(t, rows, 2)

	rows = BuildRows(nil, 3, conv)
	require.Empty(t, rows)
}

func TestBuildRows_PreservesProviderOrder(t *testing.T) {
	in := []RawQuote{
		{Title: "third cheapest", Price: "$30"},
		{Title: "cheapest", Price: "$10"},
		{Title: "second", Price: "$20"},
	}
	rows := BuildRows(in, 10, currency.Converter{})
	require.Len(t, rows, 3)
	require.Equal(t, "third cheapest", rows[0].Title)
	require.Equal(t, "cheapest", rows[1].Title)
	require.Equal(t, "second", rows[2].Title)
}

func TestBuildRows_MissingFieldsBecomeNA(t *testing.T) {
	rows := BuildRows([]RawQuote{{}}, 5, currency.Converter{})
	require.Len(t, rows, 1)
	require.Equal(t, "N/A", rows[0].Title)
	require.Equal(t, "N/A", rows[0].OriginalPrice)
	require.Equal(t, "N/A", rows[0].ConvertedPrice)
	require.Equal(t, "N/A", rows[0].Link)
}

func TestBuildRows_ConvertsPrices(t *testing.T) {
	conv := currency.Converter{Rates: currency.RateTable{currency.USD: 83.0}}
	rows := BuildRows([]RawQuote{
		{Title: "shoes", Price: "$89.99", Link: "https://x"},
		{Title: "local", Price: "₹1999", Link: "https://y"},
		{Title: "odd", Price: "call for price", Link: "https://z"},
	}, 10, conv)
	require.Equal(t, "₹7469.17", rows[0].ConvertedPrice)
	require.Equal(t, "$89.99", rows[0].OriginalPrice)
	require.Equal(t, "₹1999.00", rows[1].ConvertedPrice)
	require.Equal(t, "call for price", rows[2].ConvertedPrice)
}

func TestFormatSummary_Empty(t *testing.T) {
	require.Equal(t, "", FormatSummary(nil, 8, currency.Converter{}))
	require.Equal(t, "", FormatSummary([]RawQuote{}, 8, currency.Converter{}))
}

func TestFormatSummary_LineShape(t *testing.T) {
	conv := currency.Converter{Rates: currency.RateTable{currency.USD: 83.0}}
	in := []RawQuote{
		{Title: "Nike Pegasus 40", Price: "$100", Link: "https://shop.example/pegasus"},
		{Title: "No price listing"},
	}
	got := FormatSummary(in, 8, conv)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "- Nike Pegasus 40 | ₹8300.00 (orig: $100) | https://shop.example/pegasus", lines[0])
	require.Equal(t, "- No price listing | N/A (orig: N/A) | N/A", lines[1])
}

func TestFormatSummary_BoundedByTopN(t *testing.T) {
	got := FormatSummary(sampleQuotes(10), 4, currency.Converter{})
	require.Len(t, strings.Split(got, "\n"), 4)
}
