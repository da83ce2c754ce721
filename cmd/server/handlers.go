package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"shopassist/internal/assistant"
	"shopassist/internal/config"
	"shopassist/internal/currency"
	"shopassist/internal/logx"
	"shopassist/internal/quotes"
)

type api struct {
	assistant *assistant.Assistant
	pricing   config.Pricing
	log       *slog.Logger
}

type assistRequest struct {
	Query string `json:"query"`
	TopN  int    `json:"top_n"`
	// Per-request rate overrides; zero means "use the configured default".
	USDToINR float64 `json:"usd_inr"`
	EURToINR float64 `json:"eur_inr"`
	GBPToINR float64 `json:"gbp_inr"`
	Strict   *bool   `json:"strict"`
}

type pricesResponse struct {
	Query        string       `json:"query"`
	Rows         []quotes.Row `json:"rows"`
	PriceSummary string       `json:"price_summary"`
	SearchErr    string       `json:"search_error,omitempty"`
}

func (a *api) options(req assistRequest) assistant.Options {
	rates := a.pricing.Rates()
	if req.USDToINR > 0 {
		rates[currency.USD] = req.USDToINR
	}
	if req.EURToINR > 0 {
		rates[currency.EUR] = req.EURToINR
	}
	if req.GBPToINR > 0 {
		rates[currency.GBP] = req.GBPToINR
	}
	topN := req.TopN
	if topN <= 0 {
		topN = a.pricing.TopN
	}
	if topN > 20 {
		topN = 20
	}
	strict := a.pricing.StrictCurrency
	if req.Strict != nil {
		strict = *req.Strict
	}
	return assistant.Options{TopN: topN, Rates: rates, Strict: strict}
}

func decodeAssistRequest(w http.ResponseWriter, r *http.Request) (assistRequest, bool) {
	var req assistRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return req, false
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "query cannot be empty", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

// handleAssist runs the full pipeline: research, price search, report.
// A generative-text failure surfaces as 502 here; a search failure does not,
// it rides along in the payload as search_error with empty rows.
func (a *api) handleAssist(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAssistRequest(w, r)
	if !ok {
		return
	}
	res, err := a.assistant.Run(r.Context(), req.Query, a.options(req))
	if err != nil {
		a.log.Error("assist failed", "query", req.Query, logx.Err(err))
		http.Error(w, "assistant unavailable: "+err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, res)
}

// handlePrices runs only the search and normalization half, no LLM calls.
func (a *api) handlePrices(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAssistRequest(w, r)
	if !ok {
		return
	}
	rows, summary, diag := a.assistant.Prices(r.Context(), req.Query, a.options(req))
	writeJSON(w, pricesResponse{
		Query:        req.Query,
		Rows:         rows,
		PriceSummary: summary,
		SearchErr:    diag,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
