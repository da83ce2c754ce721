package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"shopassist/internal/assistant"
	"shopassist/internal/config"
	"shopassist/internal/currency"
	"shopassist/internal/httpx"
	"shopassist/internal/llm/groq"
	"shopassist/internal/logx"
	"shopassist/internal/search/serper"
	"shopassist/internal/search/serperadapter"
)

func main() {
	var (
		query      string
		topN       int
		usdRate    float64
		eurRate    float64
		gbpRate    float64
		strict     bool
		pricesOnly bool
		asJSON     bool
		timeout    int
		configPath string
	)
	flag.StringVar(&query, "q", "", "product query (required)")
	flag.IntVar(&topN, "n", 0, "number of price rows (3-20, 0 = config default)")
	flag.Float64Var(&usdRate, "usd", 0, "USD->INR rate override")
	flag.Float64Var(&eurRate, "eur", 0, "EUR->INR rate override")
	flag.Float64Var(&gbpRate, "gbp", 0, "GBP->INR rate override")
	flag.BoolVar(&strict, "strict", false, "do not assume USD for unmarked prices")
	flag.BoolVar(&pricesOnly, "prices-only", false, "skip the research and report steps")
	flag.BoolVar(&asJSON, "json", false, "print the result as JSON")
	flag.IntVar(&timeout, "timeout", 0, "request timeout seconds (0 = config default)")
	flag.StringVar(&configPath, "config", os.Getenv("CONFIG_FILE"), "path to config.json (optional)")
	flag.Parse()

	log := logx.New()

	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(os.Stderr, "usage: assist -q \"product query\" [-n 8] [-usd 83.0] [-prices-only]")
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("config", logx.Err(err))
		os.Exit(1)
	}
	if timeout > 0 {
		cfg.Server.RequestTimeoutSec = timeout
	}
	if cfg.Serper.APIKey == "" {
		log.Error("SERPER_API_KEY not set")
		os.Exit(1)
	}
	if !pricesOnly && cfg.Groq.APIKey == "" {
		log.Error("GROQ_API_KEY not set (use -prices-only to skip the report)")
		os.Exit(1)
	}

	httpClient := httpx.New(time.Duration(cfg.Server.RequestTimeoutSec) * time.Second)

	serperClient, err := serper.NewSerperAPIClient(cfg.Serper.APIKey, serper.WithHTTPClient(httpClient))
	if err != nil {
		log.Error("serper client", logx.Err(err))
		os.Exit(1)
	}
	searcher := serperadapter.New(serperadapter.Config{QuerySuffix: cfg.Serper.QuerySuffix}, serperClient)

	groqClient, err := groq.NewGroqAPIClient(cfg.Groq.APIKey, groq.WithHTTPClient(httpClient), groq.WithModel(cfg.Groq.Model))
	if err != nil {
		log.Error("groq client", logx.Err(err))
		os.Exit(1)
	}

	rates := cfg.Pricing.Rates()
	if usdRate > 0 {
		rates[currency.USD] = usdRate
	}
	if eurRate > 0 {
		rates[currency.EUR] = eurRate
	}
	if gbpRate > 0 {
		rates[currency.GBP] = gbpRate
	}
	if topN <= 0 {
		topN = cfg.Pricing.TopN
	}
	opts := assistant.Options{TopN: topN, Rates: rates, Strict: strict || cfg.Pricing.StrictCurrency}

	a := assistant.New(searcher, groqClient, log)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	if pricesOnly {
		rows, summary, diag := a.Prices(ctx, query, opts)
		if diag != "" {
			log.Warn("search degraded", "error", diag)
		}
		if asJSON {
			b, _ := json.MarshalIndent(rows, "", "  ")
			fmt.Println(string(b))
			return
		}
		fmt.Println(summary)
		return
	}

	res, err := a.Run(ctx, query, opts)
	if err != nil {
		log.Error("assist failed", logx.Err(err))
		os.Exit(1)
	}
	if asJSON {
		b, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(b))
		return
	}

	fmt.Println("== Research ==")
	fmt.Println(res.Research)
	fmt.Println()
	fmt.Println("== Prices (INR) ==")
	if res.SearchErr != "" {
		fmt.Printf("(search failed: %s)\n", res.SearchErr)
	} else if res.PriceSummary == "" {
		fmt.Println("(no shopping results)")
	} else {
		fmt.Println(res.PriceSummary)
	}
	fmt.Println()
	fmt.Println("== Recommendation ==")
	fmt.Println(res.Report)
}
