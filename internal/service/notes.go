package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/mglaman/dependabot-drupal-mrn/internal/config"
	"github.com/mglaman/dependabot-drupal-mrn/internal/drupal"
	"github.com/mglaman/dependabot-drupal-mrn/internal/github"
	"github.com/mglaman/dependabot-drupal-mrn/internal/models"
	"github.com/mglaman/dependabot-drupal-mrn/internal/render"
)

// packagePrefix identifies composer packages hosted on drupal.org
const packagePrefix = "drupal/"

// ChangelogClient defines what the orchestrator needs from the
// release-notes API
type ChangelogClient interface {
	ProjectTags(ctx context.Context, project string) []string
	Changelog(ctx context.Context, project, from, to string) (*models.Changelog, error)
}

// ReleaseNotesService contains the business logic
type ReleaseNotesService struct {
	github github.PullRequestClient
	drupal ChangelogClient
	cfg    config.Config
}

// NewReleaseNotesService creates a new service instance
func NewReleaseNotesService(githubClient github.PullRequestClient, drupalClient ChangelogClient, cfg config.Config) *ReleaseNotesService {
	return &ReleaseNotesService{
		github: githubClient,
		drupal: drupalClient,
		cfg:    cfg,
	}
}

// Run handles the complete workflow: filter the updated packages down to
// Drupal ones, build a release-notes section for each in input order, and
// append the section to the pull request description exactly once.
func (s *ReleaseNotesService) Run(ctx context.Context) error {
	log := clog.FromContext(ctx)

	packages := s.collectPackages()
	if len(packages) == 0 {
		log.Infof("no drupal packages in this update, nothing to do")
		return nil
	}

	var section strings.Builder
	section.WriteString(render.SectionHeading)
	section.WriteString("\n\n")
	for _, pkg := range packages {
		section.WriteString(s.packageBlock(ctx, pkg))
	}

	owner, repo, err := s.cfg.SplitRepository()
	if err != nil {
		return fmt.Errorf("not running in a pull request context: %w", err)
	}
	if s.cfg.PRNumber <= 0 {
		return fmt.Errorf("not running in a pull request context: missing pull request number")
	}

	pr, err := s.github.GetPullRequest(owner, repo, s.cfg.PRNumber)
	if err != nil {
		return fmt.Errorf("failed to read pull request: %w", err)
	}

	if strings.Contains(pr.Body, render.SectionHeading) {
		log.Infof("release notes already present on PR #%d, nothing to do", s.cfg.PRNumber)
		return nil
	}

	notes := strings.TrimRight(section.String(), "\n") + "\n"
	newBody := notes
	if pr.Body != "" {
		newBody = pr.Body + "\n\n" + notes
	}

	if err := s.github.UpdatePullRequestBody(owner, repo, s.cfg.PRNumber, newBody); err != nil {
		return err
	}

	log.Infof("appended release notes for %d package(s) to PR #%d", len(packages), s.cfg.PRNumber)
	return nil
}

// collectPackages zips the input lists into per-package updates, keeping
// only drupal.org packages
func (s *ReleaseNotesService) collectPackages() []models.PackageUpdate {
	names := splitList(s.cfg.DependencyNames)
	froms := splitList(s.cfg.PreviousVersions)
	tos := splitList(s.cfg.NewVersions)

	var packages []models.PackageUpdate
	for i, name := range names {
		if !strings.HasPrefix(name, packagePrefix) {
			continue
		}
		packages = append(packages, models.PackageUpdate{
			Name:    name,
			Project: strings.TrimPrefix(name, packagePrefix),
			From:    versionAt(froms, i),
			To:      versionAt(tos, i),
		})
	}
	return packages
}

// packageBlock builds the markdown block for one package. Fetch failures
// still produce a block so every filtered package is accounted for in the
// final description.
func (s *ReleaseNotesService) packageBlock(ctx context.Context, pkg models.PackageUpdate) string {
	log := clog.FromContext(ctx)

	tags := s.drupal.ProjectTags(ctx, pkg.Project)
	mappedFrom := drupal.MapVersionToTag(pkg.From, tags)
	mappedTo := drupal.MapVersionToTag(pkg.To, tags)

	changelog, err := s.drupal.Changelog(ctx, pkg.Project, mappedFrom, mappedTo)
	if err != nil {
		var statusErr *drupal.StatusError
		if errors.As(err, &statusErr) {
			log.Warnf("changelog request for %s returned status %d", pkg.Name, statusErr.StatusCode)
			return render.UnavailableSection(pkg, "Could not fetch release notes.")
		}
		log.Errorf("failed to fetch changelog for %s: %v", pkg.Name, err)
		return render.UnavailableSection(pkg, fmt.Sprintf("Could not fetch release notes: %v", err))
	}

	return render.PackageSection(pkg, mappedFrom, mappedTo, changelog)
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// versionAt returns the version aligned to index i. Grouped Dependabot
// updates can report one shared version pair for several packages, so an
// out-of-range index falls back to the first element.
func versionAt(versions []string, i int) string {
	if len(versions) == 0 {
		return ""
	}
	if i < len(versions) {
		return versions[i]
	}
	return versions[0]
}
