package analyzer

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	// Detail lists are capped to bound the response size; the counters
	// still cover every element on the page.
	maxImageDetails = 50
	maxLinkDetails  = 100
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
)

func extractMetaTags(doc *goquery.Document) MetaTags {
	meta := MetaTags{
		OGTags:      make(map[string]string),
		TwitterTags: make(map[string]string),
	}

	// Text() concatenates every matched element, so stray title
	// elements (inline SVG) contribute to the measured title.
	meta.Title = doc.Find("title").Text()
	meta.Description, _ = doc.Find("meta[name='description']").Attr("content")
	meta.Robots, _ = doc.Find("meta[name='robots']").Attr("content")
	meta.Canonical, _ = doc.Find("link[rel='canonical']").Attr("href")
	meta.Viewport, _ = doc.Find("meta[name='viewport']").Attr("content")

	doc.Find("meta[property^='og:']").Each(func(_ int, s *goquery.Selection) {
		property, _ := s.Attr("property")
		content, _ := s.Attr("content")
		if property != "" && content != "" {
			meta.OGTags[property] = content
		}
	})

	doc.Find("meta[name^='twitter:']").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, _ := s.Attr("content")
		if name != "" && content != "" {
			meta.TwitterTags[name] = content
		}
	})

	return meta
}

func extractHeadings(doc *goquery.Document) Headings {
	collect := func(selector string) []string {
		texts := []string{}
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(s.Text()))
		})
		return texts
	}

	return Headings{
		H1: collect("h1"),
		H2: collect("h2"),
		H3: collect("h3"),
		H4: collect("h4"),
		H5: collect("h5"),
		H6: collect("h6"),
	}
}

func extractImages(doc *goquery.Document, base *url.URL) Images {
	images := Images{Details: []ImageDetail{}}

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		hasAlt := strings.TrimSpace(alt) != ""

		images.Total++
		if hasAlt {
			images.WithAlt++
		} else {
			images.WithoutAlt++
		}

		if len(images.Details) < maxImageDetails {
			images.Details = append(images.Details, ImageDetail{
				Src:    resolveAgainstOrigin(src, base),
				Alt:    alt,
				HasAlt: hasAlt,
			})
		}
	})

	return images
}

// resolveAgainstOrigin joins a relative reference with the origin of the
// base URL. Absolute and data URIs pass through unchanged. This is a
// deliberately simplified resolver: it does not handle "../" or
// relative-to-current-path segments.
func resolveAgainstOrigin(ref string, base *url.URL) string {
	if ref == "" || strings.HasPrefix(ref, "http") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	origin := base.Scheme + "://" + base.Host
	if strings.HasPrefix(ref, "/") {
		return origin + ref
	}
	return origin + "/" + ref
}

func extractLinks(doc *goquery.Document, base *url.URL) Links {
	links := Links{Details: []LinkDetail{}}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		text := strings.TrimSpace(s.Text())

		// Skip empty, javascript:, and anchor links.
		if href == "" || strings.HasPrefix(href, "javascript:") || href == "#" {
			return
		}

		isExternal := false
		fullHref := href

		if !strings.HasPrefix(href, "http") && !strings.HasPrefix(href, "//") {
			fullHref = resolveAgainstOrigin(href, base)
		} else {
			candidate := href
			if strings.HasPrefix(href, "//") {
				candidate = "https:" + href
			}
			// A parse failure leaves the link counted as internal.
			if parsed, err := url.Parse(candidate); err == nil {
				isExternal = parsed.Hostname() != base.Hostname()
			}
		}

		if isExternal {
			links.External++
		} else {
			links.Internal++
		}

		if len(links.Details) < maxLinkDetails {
			links.Details = append(links.Details, LinkDetail{
				URL:        fullHref,
				Text:       text,
				IsExternal: isExternal,
			})
		}
	})

	return links
}

func extractStructuredData(doc *goquery.Document) []any {
	structuredData := []any{}

	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		var parsed any
		if err := json.Unmarshal([]byte(s.Text()), &parsed); err == nil {
			structuredData = append(structuredData, parsed)
		}
	})

	return structuredData
}

func extractPerformance(doc *goquery.Document, htmlSize int) Performance {
	return Performance{
		HTMLSize: htmlSize,
		ResourceCount: ResourceCount{
			Scripts:     doc.Find("script").Length(),
			Stylesheets: doc.Find("link[rel='stylesheet']").Length(),
			Images:      doc.Find("img").Length(),
			Iframes:     doc.Find("iframe").Length(),
		},
	}
}

func extractSecurity(targetURL string) Security {
	return Security{HTTPS: strings.HasPrefix(targetURL, "https://")}
}

func extractContent(doc *goquery.Document) ContentAnalysis {
	bodyText := strings.TrimSpace(whitespaceRe.ReplaceAllString(doc.Find("body").Text(), " "))
	words := strings.Fields(bodyText)

	return ContentAnalysis{
		WordCount:        len(words),
		ParagraphCount:   doc.Find("p").Length(),
		ReadabilityScore: readabilityScore(bodyText, words),
	}
}

// readabilityScore is a simplified 0-100 heuristic where higher means
// easier to read. It penalizes long sentences and long words:
// 100 - 2*avgWordsPerSentence - 5*avgWordLength, clamped.
func readabilityScore(bodyText string, words []string) float64 {
	score := 100 - 2*avgWordsPerSentence(bodyText) - 5*avgWordLength(words)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func avgWordsPerSentence(text string) float64 {
	var sentences []string
	for _, fragment := range sentenceRe.Split(text, -1) {
		if fragment != "" {
			sentences = append(sentences, fragment)
		}
	}
	if len(sentences) == 0 {
		return 0
	}

	totalWords := 0
	for _, sentence := range sentences {
		totalWords += len(strings.Fields(sentence))
	}
	return float64(totalWords) / float64(len(sentences))
}

func avgWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}

	totalLength := 0
	for _, word := range words {
		totalLength += utf8.RuneCountInString(word)
	}
	return float64(totalLength) / float64(len(words))
}
