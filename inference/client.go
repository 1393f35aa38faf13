// Copyright (c) Microsoft. All rights reserved.

package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/Azure-Samples/azure-ai-agents-go/azai"
)

const defaultAPIVersion = "2024-05-01-preview"

// tokenScope is the Entra ID scope used when a token credential is supplied
// instead of an API key.
const tokenScope = "https://cognitiveservices.azure.com/.default"

// Client calls a chat-completions deployment. Use [NewClient] or
// [NewClientWithCredential] to create one.
type Client struct {
	tp *azai.Transport
}

// clientConfig holds resolved configuration for the inference client.
type clientConfig struct {
	httpClient *http.Client
	apiVersion string
}

// ClientOption configures a [Client].
type ClientOption func(*clientConfig)

// WithHTTPClient provides a custom http.Client for requests.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) { c.httpClient = client }
}

// WithAPIVersion overrides the default service api-version.
func WithAPIVersion(version string) ClientOption {
	return func(c *clientConfig) { c.apiVersion = version }
}

func resolve(opts []ClientOption) (*clientConfig, []azai.TransportOption) {
	cfg := &clientConfig{apiVersion: defaultAPIVersion}
	for _, o := range opts {
		o(cfg)
	}
	tpOpts := []azai.TransportOption{azai.WithAPIVersion(cfg.apiVersion)}
	if cfg.httpClient != nil {
		tpOpts = append(tpOpts, azai.WithHTTPClient(cfg.httpClient))
	}
	return cfg, tpOpts
}

// NewClient creates a Client that authenticates with an API key, typically
// obtained from a resolved connection.
func NewClient(endpoint, key string, opts ...ClientOption) *Client {
	_, tpOpts := resolve(opts)
	tpOpts = append(tpOpts, azai.WithAPIKey("api-key", key))
	return &Client{tp: azai.NewTransport(endpoint, tpOpts...)}
}

// NewClientWithCredential creates a Client that authenticates with an
// Entra ID token credential.
func NewClientWithCredential(endpoint string, cred azcore.TokenCredential, opts ...ClientOption) *Client {
	_, tpOpts := resolve(opts)
	tpOpts = append(tpOpts, azai.WithTokenCredential(cred, tokenScope))
	return &Client{tp: azai.NewTransport(endpoint, tpOpts...)}
}

// Complete sends a chat-completion request and returns the full response.
func (c *Client) Complete(ctx context.Context, req ChatRequest) (*ChatCompletions, error) {
	req.Stream = false
	var out ChatCompletions
	if err := c.tp.DoJSON(ctx, http.MethodPost, "/chat/completions", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CompleteStream sends a streaming chat-completion request and returns a
// stream of incremental updates. The caller must Close the stream.
func (c *Client) CompleteStream(ctx context.Context, req ChatRequest) (*azai.EventStream[ChatUpdate], error) {
	req.Stream = true
	resp, err := c.tp.Do(ctx, http.MethodPost, "/chat/completions", nil, req)
	if err != nil {
		return nil, err
	}

	stream := azai.NewEventStream(ctx, func(ctx context.Context, ch chan<- ChatUpdate) error {
		defer resp.Body.Close()
		return azai.ReadServerEvents(resp.Body, func(raw azai.ServerEvent) error {
			var update ChatUpdate
			if err := json.Unmarshal([]byte(raw.Data), &update); err != nil {
				return fmt.Errorf("%w: parse chunk: %v", azai.ErrInvalidResponse, err)
			}
			select {
			case ch <- update:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	})

	return stream, nil
}
