// Package assistant orchestrates the research, price search and report steps
// into a single shopping answer. All external calls are sequential, blocking
// and unretried; a failed search degrades the answer instead of aborting it.
package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"shopassist/internal/currency"
	"shopassist/internal/llm"
	"shopassist/internal/quotes"
	"shopassist/internal/search"
)

const researchPromptTmpl = "You are a meticulous product researcher. " +
	"Find structured details about: %s\n" +
	"Include: key features, build/comfort, pros, cons, who it's best for.\n" +
	"Keep it concise and factual."

const reportPromptTmpl = "You are a helpful shopping assistant.\n\n" +
	"Product Research:\n%s\n\n" +
	"Prices (INR shown, original in brackets):\n%s\n\n" +
	"Write a clear, well-structured final report that:\n" +
	"1) Summarizes key features, pros, cons.\n" +
	"2) Shows a compact comparison table.\n" +
	"3) Recommends the best option with reasoning for an Indian buyer.\n" +
	"Keep it concise."

// Options are per-request knobs accepted at the boundary.
type Options struct {
	// TopN bounds the number of price rows. Defaults to 8.
	TopN int
	// Rates overrides the INR conversion table. Nil means DefaultRates.
	Rates currency.RateTable
	// Strict disables the USD fallback for unmarked price strings.
	Strict bool
}

func (o Options) topN() int {
	if o.TopN <= 0 {
		return 8
	}
	return o.TopN
}

// Result is one complete shopping answer.
type Result struct {
	Query        string       `json:"query"`
	Research     string       `json:"research"`
	Rows         []quotes.Row `json:"rows"`
	PriceSummary string       `json:"price_summary"`
	Report       string       `json:"report"`
	// SearchErr carries the provider diagnostic when the price search
	// failed; Rows is empty in that case but the answer still stands.
	SearchErr string `json:"search_error,omitempty"`
}

type Assistant struct {
	Searcher search.Searcher
	LLM      llm.Client
	Log      *slog.Logger
}

func New(searcher search.Searcher, client llm.Client, log *slog.Logger) *Assistant {
	if log == nil {
		log = slog.Default()
	}
	return &Assistant{Searcher: searcher, LLM: client, Log: log}
}

// Run produces a full answer for one product query: research text, the
// normalized price rows, the prompt-ready price summary and the final report.
// Generative-text failures propagate; search failures end up in SearchErr.
func (a *Assistant) Run(ctx context.Context, query string, opts Options) (Result, error) {
	res := Result{Query: query}

	research, err := a.LLM.Complete(ctx, fmt.Sprintf(researchPromptTmpl, query))
	if err != nil {
		return Result{}, fmt.Errorf("research: %w", err)
	}
	res.Research = research

	res.Rows, res.PriceSummary, res.SearchErr = a.Prices(ctx, query, opts)
	if res.SearchErr != "" {
		a.Log.Warn("price search degraded", "query", query, "error", res.SearchErr)
	}

	report, err := a.LLM.Complete(ctx, fmt.Sprintf(reportPromptTmpl, res.Research, res.PriceSummary))
	if err != nil {
		return Result{}, fmt.Errorf("report: %w", err)
	}
	res.Report = report

	return res, nil
}

// Prices runs only the search and normalization half of the pipeline.
// It never fails: when the provider does, rows are empty and diag explains.
func (a *Assistant) Prices(ctx context.Context, query string, opts Options) (rows []quotes.Row, summary string, diag string) {
	sr, err := a.Searcher.Search(ctx, query)
	if err != nil {
		sr = search.Result{Err: err.Error()}
	}
	conv := currency.Converter{Rates: opts.Rates, Strict: opts.Strict}
	rows = quotes.BuildRows(sr.Quotes, opts.topN(), conv)
	summary = quotes.FormatSummary(sr.Quotes, opts.topN(), conv)
	return rows, summary, sr.Err
}
