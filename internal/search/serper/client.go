package serper

import (
	"net/http"
)

const baseURL = "https://google.serper.dev"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=serper_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SerperAPIClient is a client for the Serper.dev Google Search API.
type SerperAPIClient struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient is the HTTP httpClient.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
}

// SerperAPIClientOption is a configuration option for the Serper API client.
type SerperAPIClientOption func(*SerperAPIClient)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) SerperAPIClientOption {
	return func(c *SerperAPIClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) SerperAPIClientOption {
	return func(c *SerperAPIClient) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) SerperAPIClientOption {
	return func(c *SerperAPIClient) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewSerperAPIClient creates a new Serper API client.
func NewSerperAPIClient(key string, options ...SerperAPIClientOption) (*SerperAPIClient, error) {
	var serperAPIClient = &SerperAPIClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
	}
	if key != "" {
		// This is the header that authenticates the client.
		// https://serper.dev/
		serperAPIClient.header.Set("X-API-KEY", key)
	}
	for _, option := range options {
		option(serperAPIClient)
	}
	return serperAPIClient, nil
}
