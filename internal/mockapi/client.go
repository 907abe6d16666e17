package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to a running mock control-plane instance over TCP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the instance listening at addr
// (host:port).
func NewClient(addr string) *Client {
	return &Client{
		baseURL: "http://" + addr,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Health returns the instance's health status.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", "", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// LatestRelease returns the mocked runner release metadata.
func (c *Client) LatestRelease(ctx context.Context) (*ReleaseResponse, error) {
	var release ReleaseResponse
	if err := c.do(ctx, http.MethodGet, "/repos/actions/runner/releases/latest", "", &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// RegistrationToken requests a fresh registration token for the given org.
// authHeader is sent as the Authorization header verbatim.
func (c *Client) RegistrationToken(ctx context.Context, org, authHeader string) (*RegistrationTokenResponse, error) {
	var token RegistrationTokenResponse
	path := fmt.Sprintf("/orgs/%s/actions/runners/registration-token", org)
	if err := c.do(ctx, http.MethodPost, path, authHeader, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Runners lists the registered runners under the given org scope.
func (c *Client) Runners(ctx context.Context, org, authHeader string) (*RunnerListResponse, error) {
	var list RunnerListResponse
	path := fmt.Sprintf("/orgs/%s/actions/runners", org)
	if err := c.do(ctx, http.MethodGet, path, authHeader, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Reset clears the instance's registry and request counter.
func (c *Client) Reset(ctx context.Context) error {
	var msg MessageResponse
	return c.do(ctx, http.MethodPost, "/reset", "", &msg)
}

// do issues one request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path, authHeader string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("connecting to mock API: %w", err)
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return fmt.Errorf("authentication required")
	default:
		return fmt.Errorf("mock API returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
