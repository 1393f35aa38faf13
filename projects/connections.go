// Copyright (c) Microsoft. All rights reserved.

package projects

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

	// tokenScope is the Entra ID scope for project-level operations.
	tokenScope = "https://ml.azure.com/.default"
)

// ConnectionCategory classifies what a connection points at.
type ConnectionCategory string

const (
	CategoryServerless    ConnectionCategory = "Serverless"
	CategoryAzureOpenAI   ConnectionCategory = "AzureOpenAI"
	CategoryAzureAISearch ConnectionCategory = "CognitiveSearch"
)

// AuthType is the closed set of authentication schemes a connection can carry.
type AuthType string

const (
	AuthTypeAPIKey  AuthType = "ApiKey"
	AuthTypeEntraID AuthType = "AAD"
	AuthTypeSAS     AuthType = "SAS"
	AuthTypeNone    AuthType = "None"
)

// ConnectionCredentials holds the secret material of a connection, present
// only when the connection was resolved with credentials included.
type ConnectionCredentials struct {
	Key string `json:"key"`
}

// Connection is a server-side registered credential/endpoint binding.
type Connection struct {
	ID          string
	Name        string
	Category    ConnectionCategory
	AuthType    AuthType
	Target      string
	Credentials ConnectionCredentials
}

// APIKeyAuth extracts the endpoint and key of an API-key connection,
// validating both before any client is constructed from them:
//
//   - a non-API-key authentication type is rejected with
//     [azai.ErrUnsupportedAuth] — every variant of the closed [AuthType] set
//     is either handled or explicitly refused, never silently skipped
//   - a missing target or key is a configuration error
//   - the target must be a well-formed absolute URI
func (c *Connection) APIKeyAuth() (endpoint, key string, err error) {
	switch c.AuthType {
	case AuthTypeAPIKey:
		// handled below
	case AuthTypeEntraID, AuthTypeSAS, AuthTypeNone:
		return "", "", fmt.Errorf("%w: connection %q uses %s", azai.ErrUnsupportedAuth, c.Name, c.AuthType)
	default:
		return "", "", fmt.Errorf("%w: connection %q uses unknown type %q", azai.ErrUnsupportedAuth, c.Name, c.AuthType)
	}

	if c.Target == "" {
		return "", "", fmt.Errorf("%w: connection %q has no target endpoint", azai.ErrConfiguration, c.Name)
	}
	u, err := url.ParseRequestURI(c.Target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("%w: connection %q target %q is not a valid URI", azai.ErrConfiguration, c.Name, c.Target)
	}
	if c.Credentials.Key == "" {
		return "", "", fmt.Errorf("%w: connection %q has no key credential", azai.ErrConfiguration, c.Name)
	}
	return c.Target, c.Credentials.Key, nil
}

// Client calls the project's connections API. Use [NewClient] to create one.
type Client struct {
	tp *azai.Transport
}

// clientConfig holds resolved configuration for the projects client.
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

// NewClient creates a Client for the workspace endpoint of a project,
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

// connectionResource is the wire shape of one connection entry.
type connectionResource struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Properties struct {
		Category    ConnectionCategory    `json:"category"`
		AuthType    AuthType              `json:"authType"`
		Target      string                `json:"target"`
		Credentials ConnectionCredentials `json:"credentials"`
	} `json:"properties"`
}

func (r *connectionResource) toConnection() *Connection {
	return &Connection{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Properties.Category,
		AuthType:    r.Properties.AuthType,
		Target:      r.Properties.Target,
		Credentials: r.Properties.Credentials,
	}
}

// ListConnections returns the project's connections of the given category.
// Pass an empty category to list all.
func (c *Client) ListConnections(ctx context.Context, category ConnectionCategory) ([]*Connection, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", string(category))
	}

	var list struct {
		Value []connectionResource `json:"value"`
	}
	if err := c.tp.DoJSON(ctx, http.MethodGet, "/connections", query, nil, &list); err != nil {
		return nil, err
	}

	out := make([]*Connection, 0, len(list.Value))
	for i := range list.Value {
		out = append(out, list.Value[i].toConnection())
	}
	return out, nil
}

// GetDefaultConnection resolves the project's default connection of the
// given category. With includeCredentials the connection's secret material
// is fetched as well.
func (c *Client) GetDefaultConnection(ctx context.Context, category ConnectionCategory, includeCredentials bool) (*Connection, error) {
	conns, err := c.ListConnections(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(conns) == 0 {
		return nil, fmt.Errorf("%w: project has no %s connection", azai.ErrConfiguration, category)
	}

	// The service lists the default connection first.
	conn := conns[0]
	if !includeCredentials {
		return conn, nil
	}

	path := fmt.Sprintf("/connections/%s/listsecrets", url.PathEscape(conn.Name))
	var res connectionResource
	if err := c.tp.DoJSON(ctx, http.MethodPost, path, nil, struct{}{}, &res); err != nil {
		return nil, err
	}
	return res.toConnection(), nil
}
