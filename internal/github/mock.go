package github

import (
	"github.com/mglaman/dependabot-drupal-mrn/internal/models"
)

// MockClient implements PullRequestClient for testing
type MockClient struct {
	// Control test behavior
	PullRequest      *models.PullRequest
	PullRequestError error
	UpdateError      error

	// Track method calls
	GetPullRequestCalled        bool
	UpdatePullRequestBodyCalled bool

	// Store call arguments for verification
	LastOwner  string
	LastRepo   string
	LastNumber int
	LastBody   string
}

// GetPullRequest mocks the PR read call
func (m *MockClient) GetPullRequest(owner, repo string, number int) (*models.PullRequest, error) {
	m.GetPullRequestCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastNumber = number
	return m.PullRequest, m.PullRequestError
}

// UpdatePullRequestBody mocks the PR update call
func (m *MockClient) UpdatePullRequestBody(owner, repo string, number int, body string) error {
	m.UpdatePullRequestBodyCalled = true
	m.LastOwner = owner
	m.LastRepo = repo
	m.LastNumber = number
	m.LastBody = body
	return m.UpdateError
}

// Reset clears all tracking data for fresh test
func (m *MockClient) Reset() {
	m.GetPullRequestCalled = false
	m.UpdatePullRequestBodyCalled = false
	m.LastOwner = ""
	m.LastRepo = ""
	m.LastNumber = 0
	m.LastBody = ""
}
