package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/slotcal/slotcal/pkg/schedule"
)

// Client talks to the remote schedule service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Fetch downloads the identity's full schedule mapping.
func (c *Client) Fetch(ctx context.Context, identity string) (schedule.Schedule, error) {
	endpoint := fmt.Sprintf("%s/get_schedules/%s", c.baseURL, url.PathEscape(identity))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch schedules: unexpected status %d", resp.StatusCode)
	}

	var mapping schedule.Schedule
	if err := json.NewDecoder(resp.Body).Decode(&mapping); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}
	return mapping, nil
}

// Push uploads the full mapping on a background goroutine. The push is never
// awaited by the interaction flow; its failure only logs and surfaces through
// the returned single-result channel.
func (c *Client) Push(ctx context.Context, identity string, mapping schedule.Schedule) <-chan PushResult {
	results := make(chan PushResult, 1)
	id := uuid.New()

	go func() {
		defer close(results)
		err := c.push(ctx, identity, mapping)
		if err != nil {
			log.Errorf("schedule push %s for %q failed: %v", id, identity, err)
		} else {
			log.Debugf("schedule push %s for %q done", id, identity)
		}
		results <- PushResult{ID: id, Err: err}
	}()

	return results
}

func (c *Client) push(ctx context.Context, identity string, mapping schedule.Schedule) error {
	body, err := json.Marshal(schedule.SaveRequest{Identity: identity, Schedules: mapping})
	if err != nil {
		return fmt.Errorf("failed to encode schedules: %w", err)
	}

	endpoint := c.baseURL + "/save_schedules/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to save schedules: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to save schedules: unexpected status %d", resp.StatusCode)
	}
	return nil
}
