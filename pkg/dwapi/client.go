// Package dwapi is a thin client for the Datawrapper HTTP API. It handles
// bearer auth, JSON encode/decode and error surfacing; the chart models in
// pkg/charts decide what documents to send through it.
package dwapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const (
	baseURL     = "https://api.datawrapper.de"
	chartsPath  = "/v3/charts"
	foldersPath = "/v3/folders"
)

// Client talks to the Datawrapper API with a bearer token.
type Client struct {
	token   string
	baseURL string
	hc      *http.Client
}

// NewClient resolves the credential once: the explicit token argument wins,
// then the DATAWRAPPER_ACCESS_TOKEN environment variable, else it fails.
func NewClient(token string) (*Client, error) {
	if token == "" {
		token = os.Getenv("DATAWRAPPER_ACCESS_TOKEN")
	}
	if token == "" {
		return nil, ErrMissingToken
	}
	return &Client{
		token:   token,
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// SetBaseURL overrides the API host, used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimSuffix(u, "/")
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, contentType string) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return nil, &RequestError{Method: method, Path: path, Status: resp.StatusCode, Body: string(b)}
	}
	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload map[string]any) (map[string]any, error) {
	var body []byte
	ct := ""
	if payload != nil {
		var err error
		body, err = sonic.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		ct = "application/json"
	}
	resp, err := c.do(ctx, method, path, body, ct)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}
	var out map[string]any
	if err := sonic.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode response from %s %s: %w", method, path, err)
	}
	return out, nil
}

// GetJSON fetches a path and decodes the JSON object response.
func (c *Client) GetJSON(ctx context.Context, path string) (map[string]any, error) {
	return c.doJSON(ctx, http.MethodGet, path, nil)
}

// GetText fetches a path and returns the raw body as text.
func (c *Client) GetText(ctx context.Context, path string) (string, error) {
	b, err := c.GetBytes(ctx, path)
	return string(b), err
}

// GetBytes fetches a path and returns the raw body.
func (c *Client) GetBytes(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// PostJSON sends a JSON payload and decodes the JSON object response.
func (c *Client) PostJSON(ctx context.Context, path string, payload map[string]any) (map[string]any, error) {
	return c.doJSON(ctx, http.MethodPost, path, payload)
}

// PatchJSON sends a JSON payload with PATCH semantics.
func (c *Client) PatchJSON(ctx context.Context, path string, payload map[string]any) (map[string]any, error) {
	return c.doJSON(ctx, http.MethodPatch, path, payload)
}

// PutRaw replaces a resource body verbatim, e.g. CSV chart data.
func (c *Client) PutRaw(ctx context.Context, path string, body []byte, contentType string) error {
	resp, err := c.do(ctx, http.MethodPut, path, body, contentType)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Delete removes a resource. An empty response body is success.
func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
