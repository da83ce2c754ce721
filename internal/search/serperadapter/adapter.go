package serperadapter

import (
	"context"

	"shopassist/internal/quotes"
	"shopassist/internal/search"
	"shopassist/internal/search/serper"
)

type Config struct {
	Name string // display name, default: Serper
	// QuerySuffix is appended to every search query, e.g. "best price".
	QuerySuffix string
}

// Adapter exposes the Serper shopping endpoint through the Searcher port.
type Adapter struct {
	cfg    Config
	client *serper.SerperAPIClient
}

func New(cfg Config, client *serper.SerperAPIClient) *Adapter {
	if cfg.Name == "" {
		cfg.Name = "Serper"
	}
	return &Adapter{cfg: cfg, client: client}
}

func (a *Adapter) Name() string { return a.cfg.Name }

// Search runs a shopping query and normalizes the outcome. Provider failures
// surface in Result.Err with an empty quote list; only request construction
// and transport problems return an error.
func (a *Adapter) Search(ctx context.Context, query string) (search.Result, error) {
	q := query
	if a.cfg.QuerySuffix != "" {
		q = query + " " + a.cfg.QuerySuffix
	}
	res, err := a.client.Shopping(ctx, q)
	if err != nil {
		return search.Result{}, err
	}
	if res.Error != "" {
		return search.Result{Err: res.Error}, nil
	}
	out := make([]quotes.RawQuote, 0, len(res.Shopping))
	for _, it := range res.Shopping {
		out = append(out, quotes.RawQuote{
			Title:  it.Title,
			Source: it.Source,
			Price:  it.Price,
			Link:   it.Link,
			Image:  it.ImageURL,
		})
	}
	return search.Result{Quotes: out}, nil
}
