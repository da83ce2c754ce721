package groq

import (
	"net/http"
)

const (
	baseURL      = "https://api.groq.com/openai"
	defaultModel = "llama3-70b-8192"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=groq_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// GroqAPIClient is a client for the Groq OpenAI-compatible chat API.
type GroqAPIClient struct {
	// baseURL is the base URL for the API.
	baseURL string
	// model is the chat model used for completions.
	model string
	// httpClient is the HTTP httpClient.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
}

// GroqAPIClientOption is a configuration option for the Groq API client.
type GroqAPIClientOption func(*GroqAPIClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) GroqAPIClientOption {
	return func(c *GroqAPIClient) {
		c.baseURL = baseURL
	}
}

// WithModel sets the chat model.
func WithModel(model string) GroqAPIClientOption {
	return func(c *GroqAPIClient) {
		if model != "" {
			c.model = model
		}
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) GroqAPIClientOption {
	return func(c *GroqAPIClient) {
		c.httpClient = httpClient
	}
}

// NewGroqAPIClient creates a new Groq API client.
func NewGroqAPIClient(key string, options ...GroqAPIClientOption) (*GroqAPIClient, error) {
	var groqAPIClient = &GroqAPIClient{
		baseURL:    baseURL,
		model:      defaultModel,
		httpClient: http.DefaultClient,
		header:     http.Header{},
	}
	if key != "" {
		// Bearer auth, same scheme as the OpenAI API.
		// https://console.groq.com/docs/api-reference
		groqAPIClient.header.Set("Authorization", "Bearer "+key)
	}
	for _, option := range options {
		option(groqAPIClient)
	}
	return groqAPIClient, nil
}
