// Copyright (c) Microsoft. All rights reserved.

package agents

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/Azure-Samples/azure-ai-agents-go/azai"
)

const (
	defaultAPIVersion = "2024-07-01-preview"

	// tokenScope is the Entra ID scope for the agents service.
	tokenScope = "https://ml.azure.com/.default"
)

// Client calls the hosted agents service. Use [NewClient] to create one.
type Client struct {
	tp *azai.Transport
}

// clientConfig holds resolved configuration for the agents client.
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

// NewClient creates a Client for the agents endpoint of a project,
// authenticating with the given credential.
func NewClient(endpoint string, cred azcore.TokenCredential, opts ...ClientOption) *Client {
	cfg := &clientConfig{apiVersion: defaultAPIVersion}
	for _, o := range opts {
		o(cfg)
	}
	tpOpts := []azai.TransportOption{
		azai.WithAPIVersion(cfg.apiVersion),
		azai.WithTokenCredential(cred, tokenScope),
	}
	if cfg.httpClient != nil {
		tpOpts = append(tpOpts, azai.WithHTTPClient(cfg.httpClient))
	}
	return &Client{tp: azai.NewTransport(endpoint, tpOpts...)}
}

// CreateAgent registers a new agent definition with the service.
func (c *Client) CreateAgent(ctx context.Context, def AgentDefinition) (*Agent, error) {
	var agent Agent
	if err := c.tp.DoJSON(ctx, http.MethodPost, "/assistants", nil, def, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// ListAgents returns the agents registered in the project.
func (c *Client) ListAgents(ctx context.Context) (*AgentList, error) {
	var list AgentList
	if err := c.tp.DoJSON(ctx, http.MethodGet, "/assistants", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteAgent removes an agent definition from the service.
func (c *Client) DeleteAgent(ctx context.Context, agentID string) error {
	path := fmt.Sprintf("/assistants/%s", url.PathEscape(agentID))
	return c.tp.DoJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// CreateThread creates an empty conversation thread.
func (c *Client) CreateThread(ctx context.Context) (*Thread, error) {
	var thread Thread
	if err := c.tp.DoJSON(ctx, http.MethodPost, "/threads", nil, struct{}{}, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

// CreateMessage appends a text message to a thread.
func (c *Client) CreateMessage(ctx context.Context, threadID string, role MessageRole, text string) (*ThreadMessage, error) {
	body := struct {
		Role    MessageRole `json:"role"`
		Content string      `json:"content"`
	}{Role: role, Content: text}

	path := fmt.Sprintf("/threads/%s/messages", url.PathEscape(threadID))
	var msg ThreadMessage
	if err := c.tp.DoJSON(ctx, http.MethodPost, path, nil, body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListMessages returns the messages of a thread, newest first.
func (c *Client) ListMessages(ctx context.Context, threadID string) (*MessageList, error) {
	path := fmt.Sprintf("/threads/%s/messages", url.PathEscape(threadID))
	var list MessageList
	if err := c.tp.DoJSON(ctx, http.MethodGet, path, nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateRun starts an agent run against a thread.
func (c *Client) CreateRun(ctx context.Context, threadID string, req RunRequest) (*Run, error) {
	path := fmt.Sprintf("/threads/%s/runs", url.PathEscape(threadID))
	var run Run
	if err := c.tp.DoJSON(ctx, http.MethodPost, path, nil, req, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// GetRun fetches the current state of a run.
func (c *Client) GetRun(ctx context.Context, threadID, runID string) (*Run, error) {
	path := fmt.Sprintf("/threads/%s/runs/%s", url.PathEscape(threadID), url.PathEscape(runID))
	var run Run
	if err := c.tp.DoJSON(ctx, http.MethodGet, path, nil, nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// CancelRun asks the service to cancel an in-flight run.
func (c *Client) CancelRun(ctx context.Context, threadID, runID string) (*Run, error) {
	path := fmt.Sprintf("/threads/%s/runs/%s/cancel", url.PathEscape(threadID), url.PathEscape(runID))
	var run Run
	if err := c.tp.DoJSON(ctx, http.MethodPost, path, nil, struct{}{}, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// CreateRunStream starts an agent run and returns the service's event stream
// for it. The caller pulls events until the stream ends or the context is
// cancelled, and must Close the stream when done.
func (c *Client) CreateRunStream(ctx context.Context, threadID string, req RunRequest) (*azai.EventStream[StreamEvent], error) {
	body := struct {
		RunRequest
		Stream bool `json:"stream"`
	}{RunRequest: req, Stream: true}

	path := fmt.Sprintf("/threads/%s/runs", url.PathEscape(threadID))
	resp, err := c.tp.Do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}

	stream := azai.NewEventStream(ctx, func(ctx context.Context, ch chan<- StreamEvent) error {
		defer resp.Body.Close()
		return readRunEvents(ctx, resp.Body, ch)
	})

	return stream, nil
}
