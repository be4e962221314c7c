package alertmanager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const silencesEndpoint = "/api/v2/silences"

// Client fetches silences from an Alertmanager instance over its v2 HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a read-only Alertmanager client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
	}
}

// ListSilences returns every silence currently known to Alertmanager, in the
// order the API returns them.
func (c *Client) ListSilences(ctx context.Context) ([]Silence, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+silencesEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Alertmanager: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Alertmanager response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Alertmanager returned error status: %s", resp.Status)
	}

	var silences []Silence
	if err := json.Unmarshal(body, &silences); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Alertmanager: %w", err)
	}

	return silences, nil
}
