package render

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/mglaman/dependabot-drupal-mrn/internal/models"
)

// SectionHeading marks the release-notes section in a PR description. Its
// presence means the section was already appended by a previous run.
const SectionHeading = "## Drupal Release Notes"

// issuePrefix matches the "#123456 by author, author: " convention that
// drupal.org prepends to commit summaries. The issue number is rendered as a
// link separately, so the prefix is stripped from the visible summary.
var issuePrefix = regexp.MustCompile(`^#\d+(?: by [^:]+)?:\s*`)

// ReleaseNotesURL builds the human-readable release notes page for a
// project between two tags
func ReleaseNotesURL(project, from, to string) string {
	return fmt.Sprintf("https://drupal-mrn.dev/?project=%s&from=%s&to=%s",
		url.QueryEscape(project), url.QueryEscape(from), url.QueryEscape(to))
}

// CompareURL builds the GitLab compare view between two tags of a project
func CompareURL(project, from, to string) string {
	return fmt.Sprintf("https://git.drupalcode.org/project/%s/-/compare/%s...%s",
		project, url.PathEscape(from), url.PathEscape(to))
}

// StripIssuePrefix removes a leading drupal.org issue reference from a
// commit summary
func StripIssuePrefix(summary string) string {
	return issuePrefix.ReplaceAllString(summary, "")
}

// PackageSection renders the markdown block for one package update. Visible
// version text uses the versions Dependabot reported; generated URLs use the
// mapped tag names.
func PackageSection(pkg models.PackageUpdate, mappedFrom, mappedTo string, changelog *models.Changelog) string {
	var b strings.Builder

	hasChanges := changelog != nil && countEntries(changelog.Changes) > 0

	fmt.Fprintf(&b, "### %s\n\n", pkg.Name)
	fmt.Fprintf(&b, "%s → [%s](%s)", pkg.From, pkg.To, ReleaseNotesURL(pkg.Project, mappedFrom, mappedTo))
	if hasChanges {
		fmt.Fprintf(&b, " ([compare](%s))", CompareURL(pkg.Project, mappedFrom, mappedTo))
	}
	b.WriteString("\n\n")

	if !hasChanges {
		b.WriteString("_No release notes available._\n\n")
		return b.String()
	}

	for _, group := range changelog.Changes {
		if len(group.Changes) == 0 {
			continue
		}
		fmt.Fprintf(&b, "#### %s\n\n", group.Type)
		for _, entry := range group.Changes {
			b.WriteString(entryLine(entry))
		}
		b.WriteString("\n")
	}

	if len(changelog.ChangeRecords) > 0 {
		b.WriteString("#### Change records\n\n")
		for _, record := range changelog.ChangeRecords {
			fmt.Fprintf(&b, "* [%s](%s)\n", record.DisplayTitle(), record.DisplayURL())
		}
		b.WriteString("\n")
	}

	return b.String()
}

// UnavailableSection renders the placeholder block for a package whose
// changelog could not be fetched
func UnavailableSection(pkg models.PackageUpdate, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n\n", pkg.Name)
	fmt.Fprintf(&b, "%s → %s\n\n", pkg.From, pkg.To)
	fmt.Fprintf(&b, "_%s_\n\n", message)
	return b.String()
}

func entryLine(entry models.ChangeEntry) string {
	if entry.NID == "" {
		return fmt.Sprintf("* %s\n", entry.Summary)
	}

	line := fmt.Sprintf("* [#%s](%s)", entry.NID, entry.Link)
	if summary := StripIssuePrefix(entry.Summary); summary != "" {
		line += ": " + summary
	}
	return line + "\n"
}

func countEntries(groups []models.ChangeGroup) int {
	n := 0
	for _, group := range groups {
		n += len(group.Changes)
	}
	return n
}
