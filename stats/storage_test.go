package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	// Create temporary directory for test
	tempDir, err := os.MkdirTemp("", "stats-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Create new storage
	storage, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	defer storage.Shutdown()

	// Test recording analyses
	t.Run("RecordAnalysis", func(t *testing.T) {
		storage.RecordAnalysis(250*time.Millisecond, 2, false)
		storage.RecordAnalysis(750*time.Millisecond, 0, true)
		stats := storage.GetCurrentStats()

		if stats.Analyses != 2 {
			t.Errorf("Expected 2 analyses, got %d", stats.Analyses)
		}
		if stats.Failures != 1 {
			t.Errorf("Expected 1 failure, got %d", stats.Failures)
		}
		if stats.CriticalIssues != 2 {
			t.Errorf("Expected 2 critical issues, got %d", stats.CriticalIssues)
		}
		if stats.TotalDurationMs != 1000 {
			t.Errorf("Expected 1000ms total duration, got %d", stats.TotalDurationMs)
		}
		if avg := stats.AverageDurationMs(); avg != 500 {
			t.Errorf("Expected 500ms average duration, got %f", avg)
		}
		if stats.LastUpdated.IsZero() {
			t.Error("Expected LastUpdated to be set")
		}
	})

	// Critical issue counts from failed runs are meaningless
	t.Run("FailedRunIgnoresCriticalCount", func(t *testing.T) {
		before := storage.GetCurrentStats().CriticalIssues
		storage.RecordAnalysis(100*time.Millisecond, 5, true)
		after := storage.GetCurrentStats().CriticalIssues

		if after != before {
			t.Errorf("Expected critical count unchanged on failure, got %d -> %d", before, after)
		}
	})

	// Test persistence
	t.Run("Persistence", func(t *testing.T) {
		// Force a save
		storage.requestWrite()
		time.Sleep(100 * time.Millisecond) // Give time for the write to complete

		// Create new storage instance pointing to same directory
		storage2, err := NewStorage(tempDir)
		if err != nil {
			t.Fatalf("Failed to create second storage: %v", err)
		}
		defer storage2.Shutdown()

		stats := storage2.GetCurrentStats()
		if stats.Analyses != 3 {
			t.Errorf("Expected 3 analyses after reload, got %d", stats.Analyses)
		}
	})

	// Test cleanup
	t.Run("Cleanup", func(t *testing.T) {
		// Add some old stats
		oldMonth := time.Now().AddDate(0, -2, 0).Format("2006-01")
		previousMonth := time.Now().AddDate(0, -1, 0).Format("2006-01")
		storage.stats[oldMonth] = &MonthlyStats{
			Analyses:    100,
			LastUpdated: time.Now().AddDate(0, -2, 0),
		}
		storage.stats[previousMonth] = &MonthlyStats{
			Analyses:    50,
			LastUpdated: time.Now().AddDate(0, -1, 0),
		}

		storage.Cleanup()

		// Only the current and previous month survive
		if _, exists := storage.stats[oldMonth]; exists {
			t.Error("Old stats should have been cleaned up")
		}
		if _, exists := storage.GetMonthlyStats(previousMonth); !exists {
			t.Error("Previous month stats should have been kept")
		}
	})

	// Test month listing
	t.Run("GetAllMonths", func(t *testing.T) {
		months := storage.GetAllMonths()
		if len(months) != 2 {
			t.Fatalf("Expected 2 months, got %v", months)
		}
		if months[0] < months[1] {
			t.Errorf("Expected newest month first, got %v", months)
		}
	})

	// Test file size
	t.Run("FileSize", func(t *testing.T) {
		// Force a save
		storage.requestWrite()
		time.Sleep(100 * time.Millisecond) // Give time for the write to complete

		// Check file size
		info, err := os.Stat(filepath.Join(tempDir, "stats.json"))
		if err != nil {
			t.Fatalf("Failed to stat file: %v", err)
		}

		// File should be relatively small (< 1KB for this test data)
		if info.Size() > 1024 {
			t.Errorf("File size too large: %d bytes", info.Size())
		}
	})

	// Test concurrent access
	t.Run("ConcurrentAccess", func(t *testing.T) {
		base := storage.GetCurrentStats().Analyses

		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func() {
				for j := 0; j < 100; j++ {
					storage.RecordAnalysis(time.Millisecond, 1, false)
					storage.GetCurrentStats()
				}
				done <- true
			}()
		}

		// Wait for all goroutines to complete
		for i := 0; i < 10; i++ {
			<-done
		}

		// Verify final counts
		stats := storage.GetCurrentStats()
		expectedCount := base + 1000 // 10 goroutines * 100 iterations
		if stats.Analyses != expectedCount {
			t.Errorf("Expected %d analyses, got %d", expectedCount, stats.Analyses)
		}
	})
}

func TestAverageDurationEmpty(t *testing.T) {
	var m MonthlyStats
	if avg := m.AverageDurationMs(); avg != 0 {
		t.Errorf("Expected 0 average for empty month, got %f", avg)
	}
}
