package quotes

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"shopassist/internal/currency"
)

// RawQuote is one shopping listing as returned by the search provider.
// Any field may be empty; the provider omits what it does not know.
type RawQuote struct {
	Title  string `json:"title"`
	Source string `json:"source,omitempty"`
	Price  string `json:"price"`
	Link   string `json:"link"`
	Image  string `json:"image,omitempty"`
}

// Row is a normalized price row ready for display. ConvertedPrice is always
// non-empty: either a formatted INR amount or the original string passed
// through when conversion was not possible.
type Row struct {
	Title          string `json:"title"`
	OriginalPrice  string `json:"original_price"`
	ConvertedPrice string `json:"converted_price"`
	Link           string `json:"link"`
}

// BuildRows maps the first min(topN, len(items)) quotes into Rows, in
// provider order. No sorting, no dedup, no validity filtering: every quote
// produces exactly one row, with missing fields rendered as "N/A".
func BuildRows(items []RawQuote, topN int, conv currency.Converter) []Row {
	return lo.Map(clip(items, topN), func(it RawQuote, _ int) Row {
		price := orNA(it.Price)
		return Row{
			Title:          orNA(it.Title),
			OriginalPrice:  price,
			ConvertedPrice: conv.Convert(it.Price),
			Link:           orNA(it.Link),
		}
	})
}

// FormatSummary renders the bounded quote prefix as one line per quote:
//
//	- {title} | {converted} (orig: {original}) | {link}
//
// joined by newlines. This text block is the sole input the report prompt
// receives about prices. An empty quote list yields an empty string.
func FormatSummary(items []RawQuote, topN int, conv currency.Converter) string {
	lines := lo.Map(clip(items, topN), func(it RawQuote, _ int) string {
		price := orNA(it.Price)
		return fmt.Sprintf("- %s | %s (orig: %s) | %s", orNA(it.Title), conv.Convert(it.Price), price, orNA(it.Link))
	})
	return strings.Join(lines, "\n")
}

func clip(items []RawQuote, topN int) []RawQuote {
	if topN < 0 {
		topN = 0
	}
	if len(items) > topN {
		return items[:topN]
	}
	return items
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
