// Package storage provides analyzer.Sink implementations. Sinks are
// advisory: the analysis result is never read back from them.
package storage

import (
	"context"
	"log"

	"github.com/seo-analyzer/backend/analyzer"
)

// LogSink records completed analyses to the application log and
// discards them. It is the default sink when no database is configured.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

// Store logs the analysis outcome. It never fails.
func (s *LogSink) Store(_ context.Context, result *analyzer.Analysis) error {
	log.Printf("Stored analysis result for %s (score %d, %d issues)",
		result.URL, result.OverallScore, len(result.Issues))
	return nil
}
