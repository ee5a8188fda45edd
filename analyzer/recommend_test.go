package analyzer

import (
	"reflect"
	"testing"
)

func TestGenerateRecommendationsSeverityOrder(t *testing.T) {
	// Issues arrive in detection order, severities interleaved; the
	// generator must group critical first, then warnings, then info.
	issues := []Issue{
		{Type: IssueWarning, Message: "Missing meta description"},
		{Type: IssueCritical, Message: "Missing H1 heading"},
		{Type: IssueInfo, Message: "Missing Open Graph tags"},
		{Type: IssueCritical, Message: "Website not using HTTPS"},
		{Type: IssueWarning, Message: "Low word count"},
	}

	recs := generateRecommendations(issues)

	wantTitles := []string{
		"Add an H1 heading",
		"Switch to HTTPS",
		"Add a meta description",
		"Expand content depth",
		"Add Open Graph tags",
	}

	gotTitles := make([]string, len(recs))
	for i, rec := range recs {
		gotTitles[i] = rec.Title
	}

	if !reflect.DeepEqual(gotTitles, wantTitles) {
		t.Errorf("Recommendation order mismatch.\nGot:  %v\nWant: %v", gotTitles, wantTitles)
	}
}

func TestGenerateRecommendationsPriorities(t *testing.T) {
	issues := []Issue{
		{Type: IssueCritical, Message: "Missing page title"},
		{Type: IssueWarning, Message: "Multiple H1 headings"},
		{Type: IssueInfo, Message: "No structured data found"},
	}

	recs := generateRecommendations(issues)
	if len(recs) != 3 {
		t.Fatalf("Expected 3 recommendations, got %d", len(recs))
	}

	wantPriorities := []Priority{PriorityHigh, PriorityMedium, PriorityLow}
	for i, rec := range recs {
		if rec.Priority != wantPriorities[i] {
			t.Errorf("Recommendation %d: expected priority %q, got %q", i, wantPriorities[i], rec.Priority)
		}
	}
}

func TestGenerateRecommendationsUnmatchedMessages(t *testing.T) {
	// These issue messages have no recommendation template.
	issues := []Issue{
		{Type: IssueWarning, Message: "Meta description is too short"},
		{Type: IssueWarning, Message: "High number of stylesheet links"},
		{Type: IssueWarning, Message: "Poor readability score"},
		{Type: IssueInfo, Message: "Meta description is too long"},
	}

	recs := generateRecommendations(issues)

	// No matches, so only the generic fallback triple remains.
	if len(recs) != 3 {
		t.Fatalf("Expected exactly the 3 generic recommendations, got %d", len(recs))
	}
	if !reflect.DeepEqual(recs, genericRecommendations) {
		t.Errorf("Expected the generic fallback triple, got %+v", recs)
	}
}

func TestGenerateRecommendationsFallbackTriple(t *testing.T) {
	t.Run("NoIssues", func(t *testing.T) {
		recs := generateRecommendations(nil)
		if len(recs) != 3 {
			t.Fatalf("Expected 3 generic recommendations, got %d", len(recs))
		}
	})

	t.Run("TwoMatchedGetsAllThreeGenerics", func(t *testing.T) {
		issues := []Issue{
			{Type: IssueCritical, Message: "Missing page title"},
			{Type: IssueCritical, Message: "Missing H1 heading"},
		}

		recs := generateRecommendations(issues)

		// 2 matched + the full generic triple, never a partial top-up.
		if len(recs) != 5 {
			t.Fatalf("Expected 5 recommendations, got %d", len(recs))
		}
		if recs[2].Title != "Improve internal linking" ||
			recs[3].Title != "Optimize for mobile" ||
			recs[4].Title != "Improve page load speed" {
			t.Errorf("Expected the generic triple appended in order, got %+v", recs[2:])
		}
	})

	t.Run("ThreeMatchedNoGenerics", func(t *testing.T) {
		issues := []Issue{
			{Type: IssueCritical, Message: "Missing page title"},
			{Type: IssueCritical, Message: "Missing H1 heading"},
			{Type: IssueCritical, Message: "Website not using HTTPS"},
		}

		recs := generateRecommendations(issues)
		if len(recs) != 3 {
			t.Errorf("Expected 3 recommendations without generics, got %d", len(recs))
		}
		for _, rec := range recs {
			if rec.Title == "Improve internal linking" {
				t.Error("Generic recommendations should not be appended when 3 issues matched")
			}
		}
	})
}

func TestGenerateRecommendationsTitleLengthVariants(t *testing.T) {
	// Both title length issues map to the same template.
	short := generateRecommendations([]Issue{{Type: IssueWarning, Message: "Title tag is too short"}})
	long := generateRecommendations([]Issue{{Type: IssueWarning, Message: "Title tag is too long"}})

	if short[0].Title != "Optimize page title length" || long[0].Title != "Optimize page title length" {
		t.Errorf("Expected both title length issues to map to the same recommendation, got %q / %q",
			short[0].Title, long[0].Title)
	}
}
