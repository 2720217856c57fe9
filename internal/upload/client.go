package upload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/hevylift/internal/models"
)

// Client sends routine creation requests to the Hevy API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an HTTP client for the Hevy API.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// CreateRoutine POSTs one routine to /v1/routines and returns the raw
// response body. Any transport error or non-2xx status is returned as-is:
// the batch halts on the first failure, with no retry and no
// partial-success recovery.
func (c *Client) CreateRoutine(payload models.CreateRoutineRequest) (json.RawMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling routine: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v1/routines", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("posting routine %q: %w", payload.Routine.Title, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("creating routine %q failed (status %d): %s",
			payload.Routine.Title, resp.StatusCode, body)
	}
	return body, nil
}
