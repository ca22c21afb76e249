package config

import (
	"context"
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "test-token")
	t.Setenv("DEPENDENCY_NAMES", "drupal/core,drupal/token")
	t.Setenv("PREVIOUS_VERSION", "10.0.0,1.14.0")
	t.Setenv("NEW_VERSION", "10.1.0,1.15.0")
	t.Setenv("GITHUB_REPOSITORY", "owner/repo")
	t.Setenv("PR_NUMBER", "42")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.GitHubToken != "test-token" {
		t.Errorf("GitHubToken = %q, want %q", cfg.GitHubToken, "test-token")
	}
	if cfg.DependencyNames != "drupal/core,drupal/token" {
		t.Errorf("DependencyNames = %q", cfg.DependencyNames)
	}
	if cfg.PRNumber != 42 {
		t.Errorf("PRNumber = %d, want 42", cfg.PRNumber)
	}
}

func TestLoad_missingValuesAreEmpty(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("DEPENDENCY_NAMES", "")
	t.Setenv("PREVIOUS_VERSION", "")
	t.Setenv("NEW_VERSION", "")
	t.Setenv("GITHUB_REPOSITORY", "")
	// Setenv registers restoration of PR_NUMBER, then the unset makes the
	// variable truly absent rather than empty.
	t.Setenv("PR_NUMBER", "1")
	_ = os.Unsetenv("PR_NUMBER")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.GitHubToken != "" || cfg.PRNumber != 0 {
		t.Errorf("expected zero values, got %+v", cfg)
	}
}

func TestConfig_SplitRepository(t *testing.T) {
	tests := []struct {
		name        string
		repository  string
		wantOwner   string
		wantName    string
		expectError bool
	}{
		{
			name:       "owner and repo",
			repository: "mglaman/dependabot-drupal-mrn",
			wantOwner:  "mglaman",
			wantName:   "dependabot-drupal-mrn",
		},
		{
			name:        "missing separator",
			repository:  "just-a-name",
			expectError: true,
		},
		{
			name:        "empty owner",
			repository:  "/repo",
			expectError: true,
		},
		{
			name:        "empty name",
			repository:  "owner/",
			expectError: true,
		},
		{
			name:        "empty string",
			repository:  "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Repository: tt.repository}
			owner, name, err := cfg.SplitRepository()

			if tt.expectError {
				if err == nil {
					t.Fatal("SplitRepository() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitRepository() unexpected error: %v", err)
			}
			if owner != tt.wantOwner || name != tt.wantName {
				t.Errorf("SplitRepository() = (%q, %q), want (%q, %q)", owner, name, tt.wantOwner, tt.wantName)
			}
		})
	}
}
