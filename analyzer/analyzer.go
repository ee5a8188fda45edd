// Package analyzer implements the SEO analysis pipeline: fetch a page,
// parse its HTML, extract structured facts, detect issues, score the
// page, and generate recommendations. Everything after the fetch is a
// pure, synchronous transformation of the fetched HTML.
package analyzer

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	// userAgent identifies the analyzer to target sites.
	userAgent = "SEO Analyzer Bot/1.0"

	// maxResponseBody caps how much HTML is read from the target,
	// bounding memory for pathological responses.
	maxResponseBody = 10 << 20

	fetchTimeout = 15 * time.Second
	storeTimeout = 5 * time.Second
)

// Buffer pool for reading response bodies.
var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// Sink receives completed analyses. It is invoked fire-and-forget: a
// sink error is logged and never affects the returned result.
type Sink interface {
	Store(ctx context.Context, result *Analysis) error
}

// Analyzer performs SEO analysis on a given URL.
type Analyzer struct {
	client *http.Client
	sink   Sink
}

// New creates an Analyzer with a tuned HTTP client. A nil sink disables
// storage of results.
func New(sink Sink) *Analyzer {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Analyzer{
		client: &http.Client{
			Timeout:   fetchTimeout,
			Transport: transport,
		},
		sink: sink,
	}
}

// Analyze fetches the page at targetURL and runs the full pipeline
// against it. Only the fetch can fail; every later stage degrades to
// default values for whatever the parsed tree is missing.
func (a *Analyzer) Analyze(ctx context.Context, targetURL string) (*Analysis, error) {
	base, err := url.Parse(targetURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, &AnalysisError{
			Kind:    ErrInvalidInput,
			Message: "Invalid URL format. Please ensure you entered a valid URL (e.g., https://example.com).",
			Cause:   err,
		}
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, &AnalysisError{
			Kind:    ErrInvalidInput,
			Message: "Only http and https URLs are supported.",
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, &AnalysisError{
			Kind:    ErrInvalidInput,
			Message: "Invalid URL format. Please ensure you entered a valid URL (e.g., https://example.com).",
			Cause:   err,
		}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &AnalysisError{
			Kind:    ErrUnreachable,
			Message: "Failed to analyze the website",
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AnalysisError{
			Kind:           ErrBadStatus,
			UpstreamStatus: resp.StatusCode,
			Message:        "Failed to analyze the website",
		}
	}

	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufferPool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(resp.Body, maxResponseBody)); err != nil {
		return nil, &AnalysisError{
			Kind:    ErrUnreachable,
			Message: "Failed to analyze the website",
			Cause:   err,
		}
	}

	// Byte length of the raw HTML, not character length.
	htmlSize := buf.Len()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, &AnalysisError{
			Kind:    ErrInternal,
			Message: "Failed to analyze the website",
			Cause:   err,
		}
	}

	analysis := &Analysis{
		URL:             targetURL,
		Timestamp:       time.Now().UTC(),
		MetaTags:        extractMetaTags(doc),
		Headings:        extractHeadings(doc),
		Images:          extractImages(doc, base),
		Links:           extractLinks(doc, base),
		Performance:     extractPerformance(doc, htmlSize),
		Security:        extractSecurity(targetURL),
		StructuredData:  extractStructuredData(doc),
		ContentAnalysis: extractContent(doc),
	}

	analysis.Issues = detectIssues(analysis)
	analysis.OverallScore = calculateOverallScore(analysis.Issues)
	analysis.Recommendations = generateRecommendations(analysis.Issues)

	a.storeAsync(analysis)

	return analysis, nil
}

// storeAsync hands the result to the sink without blocking the caller.
func (a *Analyzer) storeAsync(result *Analysis) {
	if a.sink == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		if err := a.sink.Store(ctx, result); err != nil {
			log.Printf("Failed to store analysis result for %s: %v", result.URL, err)
		}
	}()
}
