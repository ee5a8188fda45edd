package analyzer

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// detectIssues evaluates every rule against the extracted facts and
// returns the detected issues in a fixed order. Each rule is independent
// and all applicable rules fire; re-running on the same facts yields the
// same list.
func detectIssues(a *Analysis) []Issue {
	var issues []Issue

	// Title rules are mutually exclusive: at most one fires per run.
	// Lengths are measured in characters, not bytes.
	title := a.MetaTags.Title
	titleLen := utf8.RuneCountInString(title)
	switch {
	case title == "":
		issues = append(issues, Issue{
			Type:    IssueCritical,
			Message: "Missing page title",
			Details: "The page does not have a title tag, which is crucial for SEO.",
		})
	case titleLen < 10:
		issues = append(issues, Issue{
			Type:    IssueWarning,
			Message: "Title tag is too short",
			Details: fmt.Sprintf("Current title (%d characters): %q. Recommended length is 50-60 characters.", titleLen, title),
		})
	case titleLen > 60:
		issues = append(issues, Issue{
			Type:    IssueWarning,
			Message: "Title tag is too long",
			Details: fmt.Sprintf("Current title (%d characters) may be truncated in search results. Recommended length is 50-60 characters.", titleLen),
		})
	}

	description := a.MetaTags.Description
	descriptionLen := utf8.RuneCountInString(description)
	switch {
	case description == "":
		issues = append(issues, Issue{
			Type:    IssueWarning,
			Message: "Missing meta description",
			Details: "The page does not have a meta description, which helps improve click-through rates from search results.",
		})
	case descriptionLen < 50:
		issues = append(issues, Issue{
			Type:    IssueWarning,
			Message: "Meta description is too short",
			Details: fmt.Sprintf("Current description (%d characters). Recommended length is 150-160 characters.", descriptionLen),
		})
	case descriptionLen > 160:
		issues = append(issues, Issue{
			Type:    IssueInfo,
			Message: "Meta description is too long",
			Details: fmt.Sprintf("Current description (%d characters) may be truncated in search results. Recommended length is 150-160 characters.", descriptionLen),
		})
	}

	switch {
	case len(a.Headings.H1) == 0:
		issues = append(issues, Issue{
			Type:    IssueCritical,
			Message: "Missing H1 heading",
			Details: "The page does not have an H1 heading, which is important for both SEO and accessibility.",
		})
	case len(a.Headings.H1) > 1:
		issues = append(issues, Issue{
			Type:    IssueWarning,
			Message: "Multiple H1 headings",
			Details: fmt.Sprintf("The page has %d H1 headings. It's recommended to have only one H1 heading per page.", len(a.Headings.H1)),
		})
	}

	if a.Images.Total > 0 && a.Images.WithoutAlt > 0 {
		percentage := int(math.Round(float64(a.Images.WithoutAlt) / float64(a.Images.Total) * 100))
		details := fmt.Sprintf("%d out of %d images (%d%%) are missing alt text, which is important for accessibility and SEO.",
			a.Images.WithoutAlt, a.Images.Total, percentage)

		if percentage > 50 {
			issues = append(issues, Issue{
				Type:    IssueCritical,
				Message: "Many images missing alt text",
				Details: details,
			})
		} else {
			issues = append(issues, Issue{
				Type:    IssueWarning,
				Message: "Some images missing alt text",
				Details: details,
			})
		}
	}

	if !a.Security.HTTPS {
		issues = append(issues, Issue{
			Type:    IssueCritical,
			Message: "Website not using HTTPS",
			Details: "The website is not using HTTPS, which is important for security and is a ranking factor for search engines.",
		})
	}

	if a.Performance.HTMLSize > 100000 {
		issues = append(issues, Issue{
			Type:    IssueWarning,
			Message: "Large HTML size",
			Details: fmt.Sprintf("The HTML size is %d KB, which may impact page load speed. Consider optimizing the HTML.", int(math.Round(float64(a.Performance.HTMLSize)/1024))),
		})
	}

	if a.Performance.ResourceCount.Scripts > 20 {
		issues = append(issues, Issue{
			Type:    IssueWarning,
			Message: "High number of script tags",
			Details: fmt.Sprintf("The page has %d script tags, which may impact page load speed. Consider combining or optimizing scripts.", a.Performance.ResourceCount.Scripts),
		})
	}

	if a.Performance.ResourceCount.Stylesheets > 10 {
		issues = append(issues, Issue{
			Type:    IssueWarning,
			Message: "High number of stylesheet links",
			Details: fmt.Sprintf("The page has %d stylesheet links, which may impact page load speed. Consider combining stylesheets.", a.Performance.ResourceCount.Stylesheets),
		})
	}

	if a.ContentAnalysis.WordCount < 300 {
		issues = append(issues, Issue{
			Type:    IssueWarning,
			Message: "Low word count",
			Details: fmt.Sprintf("The page has only %d words. Search engines typically prefer content-rich pages with at least 300 words.", a.ContentAnalysis.WordCount),
		})
	}

	if a.ContentAnalysis.ReadabilityScore < 30 {
		issues = append(issues, Issue{
			Type:    IssueWarning,
			Message: "Poor readability score",
			Details: "The content may be difficult to read. Consider simplifying sentences and using more common words.",
		})
	}

	if len(a.MetaTags.OGTags) == 0 {
		issues = append(issues, Issue{
			Type:    IssueInfo,
			Message: "Missing Open Graph tags",
			Details: "The page does not have Open Graph tags, which improve how the page appears when shared on social media.",
		})
	}

	if len(a.MetaTags.TwitterTags) == 0 {
		issues = append(issues, Issue{
			Type:    IssueInfo,
			Message: "Missing Twitter Card tags",
			Details: "The page does not have Twitter Card tags, which improve how the page appears when shared on Twitter.",
		})
	}

	if len(a.StructuredData) == 0 {
		issues = append(issues, Issue{
			Type:    IssueInfo,
			Message: "No structured data found",
			Details: "The page does not have any structured data (JSON-LD), which can help search engines understand the content better.",
		})
	}

	return issues
}
