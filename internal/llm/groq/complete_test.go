package groq_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	groq "shopassist/internal/llm/groq"
)

func TestComplete(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodPost, req.Method)
			require.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))
			require.True(t, strings.HasSuffix(req.URL.Path, "/v1/chat/completions"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			require.Equal(t, "llama3-70b-8192", body["model"])
			msgs, ok := body["messages"].([]any)
			require.True(t, ok)
			require.Len(t, msgs, 1)

			buffer := &bytes.Buffer{}
			require.NoError(t, json.NewEncoder(buffer).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"role": "assistant", "content": "a concise answer"}},
				},
			}))

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(buffer),
			}, nil
		}).
		Times(1)

	// Arrange: setup a new Groq API client
	client, err := groq.NewGroqAPIClient("test-key", groq.WithHTTPClient(httpClient))
	require.NoError(t, err)
	require.NotNil(t, client)

	// Act: call Complete
	text, err := client.Complete(context.Background(), "say something concise")
	require.NoError(t, err)

	// Assert: the first choice content comes back verbatim
	require.Equal(t, "a concise answer", text)
}

func TestComplete_WithModelOverride(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method and capture the model
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			require.Equal(t, "llama-3.3-70b-versatile", body["model"])

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"choices":[{"message":{"content":"ok"}}]}`)),
			}, nil
		}).
		Times(1)

	// Arrange: setup a client with a custom model
	client, err := groq.NewGroqAPIClient("test-key", groq.WithHTTPClient(httpClient), groq.WithModel("llama-3.3-70b-versatile"))
	require.NoError(t, err)

	// Act: call Complete
	_, err = client.Complete(context.Background(), "prompt")
	require.NoError(t, err)
}

func TestComplete_NonSuccessIsError(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method with a 429
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusTooManyRequests,
				Body:       io.NopCloser(strings.NewReader(`{"error":{"message":"rate limited"}}`)),
			}, nil
		}).
		Times(1)

	// Arrange: setup a new Groq API client
	client, err := groq.NewGroqAPIClient("test-key", groq.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act: call Complete
	_, err = client.Complete(context.Background(), "prompt")

	// Assert: the failure propagates as an error, no silent fallback
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestComplete_NoChoicesIsError(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method with an empty choices list
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"choices":[]}`)),
			}, nil
		}).
		Times(1)

	// Arrange: setup a new Groq API client
	client, err := groq.NewGroqAPIClient("test-key", groq.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act: call Complete
	_, err = client.Complete(context.Background(), "prompt")

	// Assert
	require.Error(t, err)
}
