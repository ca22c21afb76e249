package models

// PullRequest represents the PR metadata this action reads and writes
type PullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
