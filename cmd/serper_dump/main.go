// serper_dump fetches one raw Serper shopping payload and writes it to disk,
// for inspecting provider fields before they go through normalization.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"shopassist/internal/config"
	"shopassist/internal/httpx"
	"shopassist/internal/search/serper"
)

func main() {
	var (
		query      string
		outPath    string
		cfgPath    string
		timeoutSec int
	)
	flag.StringVar(&query, "q", "nike pegasus 40 best price", "shopping query")
	flag.StringVar(&outPath, "out", "", "output file path (default stdout)")
	flag.StringVar(&cfgPath, "config", "", "path to config.json (optional)")
	flag.IntVar(&timeoutSec, "timeout", 20, "HTTP timeout seconds")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Serper.APIKey == "" {
		log.Fatal("SERPER_API_KEY not set")
	}

	client, err := serper.NewSerperAPIClient(cfg.Serper.APIKey,
		serper.WithHTTPClient(httpx.New(time.Duration(timeoutSec)*time.Second)))
	if err != nil {
		log.Fatalf("serper client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	res, err := client.Shopping(ctx, query)
	if err != nil {
		log.Fatalf("shopping: %v", err)
	}
	if res.Error != "" {
		log.Fatalf("provider error: %s", res.Error)
	}
	log.Printf("received %d shopping items", len(res.Shopping))

	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if outPath == "" {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		log.Fatalf("write %s: %v", outPath, err)
	}
	log.Printf("wrote %s", outPath)
}
