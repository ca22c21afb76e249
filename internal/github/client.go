package github

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/mglaman/dependabot-drupal-mrn/internal/models"
)

// Client wraps the GitHub REST API
type Client struct {
	rest api.RESTClient
}

// NewClient creates a client authenticated with the workflow token
func NewClient(token string) (*Client, error) {
	restClient, err := api.NewRESTClient(api.ClientOptions{
		AuthToken: token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{
		rest: *restClient,
	}, nil
}

func pullRequestPath(owner, repo string, number int) string {
	return fmt.Sprintf("repos/%s/%s/pulls/%d", owner, repo, number)
}

// GetPullRequest fetches a pull request by number
func (c *Client) GetPullRequest(owner, repo string, number int) (*models.PullRequest, error) {
	var pr models.PullRequest
	if err := c.rest.Get(pullRequestPath(owner, repo, number), &pr); err != nil {
		return nil, fmt.Errorf("failed to fetch pull request: %w", err)
	}
	return &pr, nil
}

// UpdatePullRequestBody replaces the description of a pull request
func (c *Client) UpdatePullRequestBody(owner, repo string, number int, body string) error {
	jsonBody, err := json.Marshal(map[string]interface{}{
		"body": body,
	})
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	var response interface{}
	if err := c.rest.Patch(pullRequestPath(owner, repo, number), bytes.NewReader(jsonBody), &response); err != nil {
		return fmt.Errorf("failed to update pull request: %w", err)
	}
	return nil
}
