package github

import (
	"github.com/mglaman/dependabot-drupal-mrn/internal/models"
)

// PullRequestClient defines the interface for pull request operations
type PullRequestClient interface {
	GetPullRequest(owner, repo string, number int) (*models.PullRequest, error)
	UpdatePullRequestBody(owner, repo string, number int, body string) error
}

// Ensure Client implements PullRequestClient interface
var _ PullRequestClient = (*Client)(nil)
