package homey

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// Client talks to the Homey local Web API over HTTP with a bearer token.
// It performs no retries and no timeout handling of its own; inject an
// http.Client with a timeout if the transport requires one.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// ClientConfig holds the connection settings for a Homey.
type ClientConfig struct {
	BaseURL string // e.g. http://homey.local or https://<id>.connect.athom.com
	Token   string // Personal access token / bearer token
	HTTP    *http.Client
}

// NewClient creates a Client for the given Homey.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    httpClient,
	}, nil
}

func (c *Client) GetDevices(ctx context.Context) (map[string]Device, error) {
	var out map[string]Device
	if err := c.get(ctx, "/api/manager/devices/device", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDevice(ctx context.Context, id string) (*Device, error) {
	var out Device
	if err := c.get(ctx, "/api/manager/devices/device/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetCapabilityValue(ctx context.Context, deviceID, capabilityID string, value any) error {
	path := fmt.Sprintf("/api/manager/devices/device/%s/capability/%s",
		url.PathEscape(deviceID), url.PathEscape(capabilityID))
	return c.put(ctx, path, map[string]any{"value": value})
}

func (c *Client) GetCapabilityValue(ctx context.Context, deviceID, capabilityID string) (any, error) {
	path := fmt.Sprintf("/api/manager/devices/device/%s/capability/%s",
		url.PathEscape(deviceID), url.PathEscape(capabilityID))
	var out struct {
		Value any `json:"value"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

func (c *Client) GetZones(ctx context.Context) (map[string]Zone, error) {
	var out map[string]Zone
	if err := c.get(ctx, "/api/manager/zones/zone", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFlows(ctx context.Context) (map[string]Flow, error) {
	var out map[string]Flow
	if err := c.get(ctx, "/api/manager/flow/flow", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFlow(ctx context.Context, id string) (*Flow, error) {
	var out Flow
	if err := c.get(ctx, "/api/manager/flow/flow/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) IsConnected() bool {
	return c.baseURL != ""
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) put(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodPut, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("homey request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("homey API error")
		return fmt.Errorf("homey API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
