package analyzer

// recommendationTable maps an issue's message identifier to the
// recommendation it produces. The issue messages are a stable contract:
// detection and recommendation evolve together through this table.
// Issues without an entry produce no recommendation.
var recommendationTable = map[string]Recommendation{
	"Missing page title": {
		Priority:    PriorityHigh,
		Title:       "Add a page title",
		Description: "Create a descriptive title tag that accurately summarizes the page content in 50-60 characters.",
		Impact:      "High impact on search rankings and click-through rates",
	},
	"Missing H1 heading": {
		Priority:    PriorityHigh,
		Title:       "Add an H1 heading",
		Description: "Add a primary H1 heading that clearly describes the main topic of the page.",
		Impact:      "Improves content structure and helps search engines understand your page",
	},
	"Many images missing alt text": {
		Priority:    PriorityHigh,
		Title:       "Add alt text to images",
		Description: "Add descriptive alt text to all images that conveys their content and function.",
		Impact:      "Improves accessibility and helps search engines understand image content",
	},
	"Website not using HTTPS": {
		Priority:    PriorityHigh,
		Title:       "Switch to HTTPS",
		Description: "Implement SSL/TLS and redirect all HTTP traffic to HTTPS.",
		Impact:      "Improves security, user trust, and is a ranking factor for search engines",
	},
	"Missing meta description": {
		Priority:    PriorityMedium,
		Title:       "Add a meta description",
		Description: "Create a compelling meta description of 150-160 characters that summarizes the page content.",
		Impact:      "Improves click-through rates from search results",
	},
	"Title tag is too short": {
		Priority:    PriorityMedium,
		Title:       "Optimize page title length",
		Description: "Adjust your title to be between 50-60 characters to ensure it displays properly in search results.",
		Impact:      "Ensures your full title is visible in search results",
	},
	"Title tag is too long": {
		Priority:    PriorityMedium,
		Title:       "Optimize page title length",
		Description: "Adjust your title to be between 50-60 characters to ensure it displays properly in search results.",
		Impact:      "Ensures your full title is visible in search results",
	},
	"Multiple H1 headings": {
		Priority:    PriorityMedium,
		Title:       "Use only one H1 heading",
		Description: "Consolidate multiple H1 headings into a single, descriptive H1 heading.",
		Impact:      "Clarifies the main topic of your page for search engines",
	},
	"Some images missing alt text": {
		Priority:    PriorityMedium,
		Title:       "Add alt text to remaining images",
		Description: "Add descriptive alt text to all images that are missing it.",
		Impact:      "Improves accessibility and image search visibility",
	},
	"Large HTML size": {
		Priority:    PriorityMedium,
		Title:       "Reduce HTML size",
		Description: "Minimize HTML by removing unnecessary comments, whitespace, and inline scripts/styles.",
		Impact:      "Improves page load speed and user experience",
	},
	"High number of script tags": {
		Priority:    PriorityMedium,
		Title:       "Optimize JavaScript usage",
		Description: "Combine multiple script files, use async/defer attributes, and remove unused scripts.",
		Impact:      "Reduces render-blocking resources and improves page speed",
	},
	"Low word count": {
		Priority:    PriorityMedium,
		Title:       "Expand content depth",
		Description: "Add more comprehensive, valuable content to reach at least 300-500 words.",
		Impact:      "Helps search engines understand the topic and may improve rankings",
	},
	"Missing Open Graph tags": {
		Priority:    PriorityLow,
		Title:       "Add Open Graph tags",
		Description: "Implement og:title, og:description, og:image, and og:url tags for better social sharing.",
		Impact:      "Improves appearance when shared on social media platforms",
	},
	"Missing Twitter Card tags": {
		Priority:    PriorityLow,
		Title:       "Add Twitter Card tags",
		Description: "Implement twitter:card, twitter:title, twitter:description, and twitter:image tags.",
		Impact:      "Improves appearance when shared on Twitter",
	},
	"No structured data found": {
		Priority:    PriorityLow,
		Title:       "Implement structured data",
		Description: "Add JSON-LD structured data appropriate for your content type (e.g., Article, Product, FAQ).",
		Impact:      "Enables rich results in search and helps search engines understand content",
	},
}

// genericRecommendations are appended together, never partially, when
// fewer than three specific recommendations were matched.
var genericRecommendations = []Recommendation{
	{
		Priority:    PriorityMedium,
		Title:       "Improve internal linking",
		Description: "Add more contextual internal links to help users and search engines navigate your site.",
		Impact:      "Improves site structure and helps distribute page authority",
	},
	{
		Priority:    PriorityLow,
		Title:       "Optimize for mobile",
		Description: "Ensure your site is fully responsive and provides a good experience on all devices.",
		Impact:      "Mobile-friendliness is a ranking factor for search engines and affects user experience",
	},
	{
		Priority:    PriorityLow,
		Title:       "Improve page load speed",
		Description: "Optimize images, leverage browser caching, and minimize render-blocking resources.",
		Impact:      "Faster pages rank better and provide better user experience",
	},
}

// generateRecommendations maps issues to recommendations in severity
// order: critical first, then warnings, then info, each pass preserving
// the original issue order.
func generateRecommendations(issues []Issue) []Recommendation {
	recommendations := []Recommendation{}

	for _, severity := range []IssueType{IssueCritical, IssueWarning, IssueInfo} {
		for _, issue := range issues {
			if issue.Type != severity {
				continue
			}
			if rec, ok := recommendationTable[issue.Message]; ok {
				recommendations = append(recommendations, rec)
			}
		}
	}

	if len(recommendations) < 3 {
		recommendations = append(recommendations, genericRecommendations...)
	}

	return recommendations
}
