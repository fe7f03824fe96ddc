package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ratepush/internal/domain"
)

// Client is a minimal Notion API client covering the three calls the
// pipeline needs: database query, page create, page patch.
type Client struct {
	http    *http.Client
	baseURL string
	version string
	token   string
}

// APIError is a non-2xx response from the Notion API.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

type queryRequest struct {
	Filter   any `json:"filter"`
	PageSize int `json:"page_size"`
}

type queryResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

type pageResponse struct {
	ID string `json:"id"`
}

// QueryFirstPage runs a database query and returns the ID of the first
// matching page, or domain.ErrPageNotFound.
func (c *Client) QueryFirstPage(ctx context.Context, databaseID string, filter any) (string, error) {
	path := fmt.Sprintf("/v1/databases/%s/query", databaseID)
	var res queryResponse
	if err := c.doJSON(ctx, http.MethodPost, path, queryRequest{Filter: filter, PageSize: 1}, &res); err != nil {
		return "", fmt.Errorf("failed to query database %q: %w", databaseID, err)
	}
	if len(res.Results) == 0 {
		return "", domain.ErrPageNotFound
	}
	return res.Results[0].ID, nil
}

// CreatePage creates a page in the given database and returns its ID.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]any) (string, error) {
	payload := map[string]any{
		"parent":     map[string]any{"database_id": databaseID},
		"properties": properties,
	}
	var res pageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/pages", payload, &res); err != nil {
		return "", fmt.Errorf("failed to create page in database %q: %w", databaseID, err)
	}
	return res.ID, nil
}

// UpdatePage patches an existing page's properties. A 404 from the API
// wraps domain.ErrPageNotFound so callers can detect stale page IDs.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]any) error {
	payload := map[string]any{"properties": properties}
	if err := c.doJSON(ctx, http.MethodPatch, "/v1/pages/"+pageID, payload, nil); err != nil {
		return fmt.Errorf("failed to update page %q: %w", pageID, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", apiErr.Error(), domain.ErrPageNotFound)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func NewClient(httpClient *http.Client, baseURL, version, token string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		version: version,
		token:   token,
	}
}
