// Copyright (c) Microsoft. All rights reserved.

package azai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/google/uuid"
)

// Transport issues JSON requests against a single service endpoint.
// It handles authentication, the api-version query parameter, request
// correlation ids, and error-response mapping. The zero value is not usable;
// construct with [NewTransport].
type Transport struct {
	client     *http.Client
	endpoint   string
	apiVersion string
	apiKey     string
	keyHeader  string
	credential azcore.TokenCredential
	scope      string
	headers    map[string]string
}

// TransportOption configures a [Transport].
type TransportOption func(*Transport)

// WithHTTPClient provides a custom http.Client for requests.
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *Transport) { t.client = client }
}

// WithAPIVersion sets the api-version query parameter added to every request.
func WithAPIVersion(version string) TransportOption {
	return func(t *Transport) { t.apiVersion = version }
}

// WithAPIKey enables API-key authentication, sent in the given header.
func WithAPIKey(header, key string) TransportOption {
	return func(t *Transport) { t.keyHeader, t.apiKey = header, key }
}

// WithTokenCredential enables Entra ID token authentication for the given
// scope. Tokens are acquired per request; azidentity credentials cache and
// refresh internally.
func WithTokenCredential(cred azcore.TokenCredential, scope string) TransportOption {
	return func(t *Transport) { t.credential, t.scope = cred, scope }
}

// WithHeaders adds custom headers to every request.
func WithHeaders(headers map[string]string) TransportOption {
	return func(t *Transport) { t.headers = headers }
}

// NewTransport creates a Transport for the given endpoint. The endpoint is
// used as-is as a URL prefix; paths passed to [Transport.Do] are appended.
func NewTransport(endpoint string, opts ...TransportOption) *Transport {
	t := &Transport{endpoint: endpoint}
	for _, opt := range opts {
		opt(t)
	}
	if t.client == nil {
		t.client = http.DefaultClient
	}
	return t
}

// Endpoint returns the endpoint this transport targets.
func (t *Transport) Endpoint() string { return t.endpoint }

// Do sends one JSON request and returns the raw response. Responses with
// status >= 400 are consumed and returned as a [*ServiceError]; otherwise the
// caller owns the body. query may be nil.
func (t *Transport) Do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	u := t.endpoint + path
	if t.apiVersion != "" || len(query) > 0 {
		if query == nil {
			query = url.Values{}
		}
		if t.apiVersion != "" {
			query.Set("api-version", t.apiVersion)
		}
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-ms-client-request-id", uuid.NewString())

	switch {
	case t.credential != nil:
		token, err := t.credential.GetToken(ctx, policy.TokenRequestOptions{
			Scopes: []string{t.scope},
		})
		if err != nil {
			return nil, fmt.Errorf("%w: get token: %v", ErrAuth, err)
		}
		slog.DebugContext(ctx, "using token authentication", "token_expires_on", token.ExpiresOn)
		req.Header.Set("Authorization", "Bearer "+token.Token)
	case t.apiKey != "":
		req.Header.Set(t.keyHeader, t.apiKey)
	}

	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		return nil, parseErrorResponse(resp)
	}

	return resp, nil
}

// DoJSON sends one request and decodes the JSON response body into out.
// Pass nil out to discard the body.
func (t *Transport) DoJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := t.Do(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", ErrService, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: parse response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// parseErrorResponse reads an error response body and returns a typed error.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}
	_ = json.Unmarshal(body, &apiErr)

	msg := apiErr.Error.Message
	if msg == "" {
		msg = string(body)
	}

	svcErr := &ServiceError{
		StatusCode: resp.StatusCode,
		Message:    msg,
		Code:       apiErr.Error.Code,
	}

	switch {
	case resp.StatusCode == 401 || resp.StatusCode == 403:
		svcErr.Err = ErrAuth
	case resp.StatusCode == 429:
		svcErr.Err = ErrRateLimit
	case resp.StatusCode == 400:
		svcErr.Err = ErrInvalidRequest
	default:
		svcErr.Err = ErrService
	}

	return svcErr
}
