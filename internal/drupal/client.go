package drupal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/chainguard-dev/clog"
	"github.com/mglaman/dependabot-drupal-mrn/internal/models"
)

const (
	// DefaultBaseURL is the release-notes service backing this action
	DefaultBaseURL = "https://drupal-mrn.dev"

	userAgent = "dependabot-drupal-mrn"
)

// StatusError reports a non-success HTTP status from the changelog endpoint
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Client talks to the drupal-mrn.dev API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against the default API endpoint
func NewClient() *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
	}
}

// NewClientWithBaseURL creates a client against a specific endpoint, used by
// tests to point at a local server
func NewClientWithBaseURL(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

type tagsResponse struct {
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
}

// ProjectTags fetches the published tag names for a project, in server
// order. Failures are absorbed: a warning is logged and an empty list
// returned, which makes version mapping fall through to the unchanged
// version.
func (c *Client) ProjectTags(ctx context.Context, project string) []string {
	log := clog.FromContext(ctx)

	endpoint := fmt.Sprintf("%s/api/tags?project=%s", c.baseURL, url.QueryEscape(project))
	var resp tagsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		log.Warnf("failed to fetch tags for %s: %v", project, err)
		return nil
	}

	tags := make([]string, 0, len(resp.Tags))
	for _, tag := range resp.Tags {
		tags = append(tags, tag.Name)
	}
	return tags
}

// Changelog fetches the grouped changelog for a project between two tags.
// A non-success status is returned as *StatusError so callers can tell it
// apart from transport and decode failures.
func (c *Client) Changelog(ctx context.Context, project, from, to string) (*models.Changelog, error) {
	endpoint := fmt.Sprintf("%s/api/changelog?project=%s&from=%s&to=%s",
		c.baseURL, url.QueryEscape(project), url.QueryEscape(from), url.QueryEscape(to))

	var changelog models.Changelog
	if err := c.getJSON(ctx, endpoint, &changelog); err != nil {
		return nil, err
	}
	return &changelog, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
