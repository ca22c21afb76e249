package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chainguard-dev/clog"
	"github.com/mglaman/dependabot-drupal-mrn/internal/config"
	"github.com/mglaman/dependabot-drupal-mrn/internal/drupal"
	"github.com/mglaman/dependabot-drupal-mrn/internal/github"
	"github.com/mglaman/dependabot-drupal-mrn/internal/service"
	"github.com/spf13/cobra"
)

func runCommand(ctx context.Context) error {
	logger := clog.New(slog.Default().Handler())
	ctx = clog.WithLogger(ctx, logger)

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if cfg.GitHubToken == "" {
		return fmt.Errorf("a GitHub token is required")
	}

	client, err := github.NewClient(cfg.GitHubToken)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	notesService := service.NewReleaseNotesService(client, drupal.NewClient(), cfg)
	return notesService.Run(ctx)
}

func main() {
	cmd := &cobra.Command{
		Use:   "dependabot-drupal-mrn",
		Short: "Append Drupal release notes to a Dependabot pull request",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd.Context())
		},
		SilenceUsage: true,
	}

	if err := cmd.Execute(); err != nil {
		clog.Fatalf("%v", err)
	}
}
