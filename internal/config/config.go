package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds the action inputs, passed through the environment by the
// workflow step. The three comma-separated lists come straight from the
// dependabot/fetch-metadata outputs and are positionally aligned.
type Config struct {
	GitHubToken      string `env:"GITHUB_TOKEN"`
	DependencyNames  string `env:"DEPENDENCY_NAMES"`
	PreviousVersions string `env:"PREVIOUS_VERSION"`
	NewVersions      string `env:"NEW_VERSION"`
	Repository       string `env:"GITHUB_REPOSITORY"`
	PRNumber         int    `env:"PR_NUMBER"`
}

// Load reads configuration from the environment. A .env file is applied
// first when present, for local runs outside Actions.
func Load(ctx context.Context) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}
	return cfg, nil
}

// SplitRepository returns the owner and name parts of GITHUB_REPOSITORY
func (c Config) SplitRepository() (string, string, error) {
	owner, name, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", c.Repository)
	}
	return owner, name, nil
}
