package storage

import (
	"context"
	"testing"
	"time"

	"github.com/seo-analyzer/backend/analyzer"
)

func TestLogSinkStore(t *testing.T) {
	sink := NewLogSink()

	result := &analyzer.Analysis{
		URL:          "https://example.com",
		Timestamp:    time.Now().UTC(),
		OverallScore: 85,
		Issues: []analyzer.Issue{
			{Type: analyzer.IssueWarning, Message: "Title tag is too long"},
		},
	}

	if err := sink.Store(context.Background(), result); err != nil {
		t.Errorf("LogSink.Store should never fail, got %v", err)
	}
}

func TestLogSinkImplementsSink(t *testing.T) {
	var _ analyzer.Sink = (*LogSink)(nil)
	var _ analyzer.Sink = (*PostgresSink)(nil)
}
