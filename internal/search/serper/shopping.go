package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Item is one shopping listing from the Serper shopping endpoint.
// Serper omits fields it does not know, so any of them may be empty.
type Item struct {
	Title    string  `json:"title"`
	Source   string  `json:"source"`
	Link     string  `json:"link"`
	Price    string  `json:"price"`
	Delivery string  `json:"delivery"`
	ImageURL string  `json:"imageUrl"`
	Rating   float64 `json:"rating"`
	Ratings  int     `json:"ratingCount"`
	Position int     `json:"position"`
}

// ShoppingResponse is the decoded /shopping payload. On a non-2xx provider
// response Shopping is empty and Error carries the provider's body text.
type ShoppingResponse struct {
	Shopping []Item `json:"shopping"`
	Error    string `json:"error,omitempty"`
}

// Shopping queries the shopping endpoint for a free-text query.
// Provider-side failures (non-2xx) do not return a Go error: they come back
// as a ShoppingResponse with the Error field set, mirroring the wire shape.
// Only transport and decode problems surface as errors.
func (c *SerperAPIClient) Shopping(ctx context.Context, query string, opts ...SerperAPIClientOption) (ShoppingResponse, error) {
	var override = &SerperAPIClient{
		baseURL:    c.baseURL,
		httpClient: c.httpClient,
		header:     c.header.Clone(),
	}
	for _, opt := range opts {
		opt(override)
	}

	body, err := json.Marshal(map[string]string{"q": query})
	if err != nil {
		return ShoppingResponse{}, fmt.Errorf("encoding request: %w", err)
	}

	url := override.baseURL + "/shopping"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ShoppingResponse{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header = override.header.Clone()
	req.Header.Set("Content-Type", "application/json")

	res, err := override.httpClient.Do(req)
	if err != nil {
		return ShoppingResponse{}, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return ShoppingResponse{Error: fmt.Sprintf("serper %d: %s", res.StatusCode, string(b))}, nil
	}

	var out ShoppingResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return ShoppingResponse{}, fmt.Errorf("decoding shopping response: %w", err)
	}
	return out, nil
}
