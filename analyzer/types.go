package analyzer

import "time"

// Analysis represents the complete SEO analysis of a webpage. It is
// assembled once per request and never mutated afterwards.
type Analysis struct {
	URL             string           `json:"url"`
	Timestamp       time.Time        `json:"timestamp"`
	MetaTags        MetaTags         `json:"metaTags"`
	Headings        Headings         `json:"headings"`
	Images          Images           `json:"images"`
	Links           Links            `json:"links"`
	Performance     Performance      `json:"performance"`
	Security        Security         `json:"security"`
	StructuredData  []any            `json:"structuredData"`
	ContentAnalysis ContentAnalysis  `json:"contentAnalysis"`
	OverallScore    int              `json:"overallScore"`
	Issues          []Issue          `json:"issues"`
	Recommendations []Recommendation `json:"recommendations"`
}

// MetaTags holds the head-level tags relevant to search engines.
// Absent tags are empty strings, never errors.
type MetaTags struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Robots      string            `json:"robots"`
	Canonical   string            `json:"canonical"`
	Viewport    string            `json:"viewport"`
	OGTags      map[string]string `json:"ogTags"`
	TwitterTags map[string]string `json:"twitterTags"`
}

// Headings holds the trimmed text of every heading, per level, in
// document order.
type Headings struct {
	H1 []string `json:"h1"`
	H2 []string `json:"h2"`
	H3 []string `json:"h3"`
	H4 []string `json:"h4"`
	H5 []string `json:"h5"`
	H6 []string `json:"h6"`
}

// Images summarizes the img elements on the page. Counts always cover
// every image; Details is capped at maxImageDetails entries.
type Images struct {
	Total      int           `json:"total"`
	WithAlt    int           `json:"withAlt"`
	WithoutAlt int           `json:"withoutAlt"`
	Details    []ImageDetail `json:"details"`
}

type ImageDetail struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	HasAlt bool   `json:"hasAlt"`
}

// Links summarizes the anchor elements on the page. Counts always cover
// every qualifying link; Details is capped at maxLinkDetails entries.
type Links struct {
	Internal int          `json:"internal"`
	External int          `json:"external"`
	Details  []LinkDetail `json:"details"`
}

type LinkDetail struct {
	URL        string `json:"url"`
	Text       string `json:"text"`
	IsExternal bool   `json:"isExternal"`
}

type Performance struct {
	HTMLSize      int           `json:"htmlSize"`
	ResourceCount ResourceCount `json:"resourceCount"`
}

type ResourceCount struct {
	Scripts     int `json:"scripts"`
	Stylesheets int `json:"stylesheets"`
	Images      int `json:"images"`
	Iframes     int `json:"iframes"`
}

type Security struct {
	HTTPS bool `json:"https"`
}

type ContentAnalysis struct {
	WordCount        int     `json:"wordCount"`
	ParagraphCount   int     `json:"paragraphCount"`
	ReadabilityScore float64 `json:"readabilityScore"`
}

// IssueType classifies how severe a detected issue is.
type IssueType string

const (
	IssueCritical IssueType = "critical"
	IssueWarning  IssueType = "warning"
	IssueInfo     IssueType = "info"
)

// Issue is one detected problem. Message is a stable identifier reused
// verbatim by the recommendation table; Details is the human-readable
// elaboration.
type Issue struct {
	Type    IssueType `json:"type"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// Priority orders recommendations for display.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Recommendation struct {
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
}
