package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/seo-analyzer/backend/analyzer"
	"github.com/seo-analyzer/backend/config"
	"github.com/seo-analyzer/backend/logging"
	"github.com/seo-analyzer/backend/middleware"
	"github.com/seo-analyzer/backend/stats"
	"github.com/seo-analyzer/backend/storage"
)

const analyzeTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the SEO analyzer HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// server bundles the handler dependencies.
type server struct {
	analyzer     *analyzer.Analyzer
	requestStats *logging.Statistics
	statsStorage *stats.Storage
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	mode := cfg.GinMode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	sink, closeSink, err := selectSink(cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	statsStorage, err := stats.NewStorage(cfg.DataDir)
	if err != nil {
		return err
	}
	defer statsStorage.Shutdown()

	srv := &server{
		analyzer:     analyzer.New(sink),
		requestStats: logging.Initialize(cfg.DataDir),
		statsStorage: statsStorage,
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.RateLimit())
	r.Use(middleware.Stats(srv.requestStats))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/analyze", srv.handleAnalyze)

		api.GET("/statistics", func(c *gin.Context) {
			response := srv.requestStats.GetStatistics()
			response["monthly"] = srv.statsStorage.GetCurrentStats()
			c.JSON(http.StatusOK, response)
		})
	}

	log.Printf("Server starting on http://localhost:%s\n", cfg.Port)
	return r.Run(":" + cfg.Port)
}

// selectSink chooses the result sink: Postgres when DATABASE_URL is
// configured, otherwise the log sink.
func selectSink(cfg config.Config) (analyzer.Sink, func(), error) {
	if cfg.DatabaseURL == "" {
		return storage.NewLogSink(), func() {}, nil
	}

	pg, err := storage.NewPostgresSink(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return pg, func() { pg.Close() }, nil
}

func (s *server) handleAnalyze(c *gin.Context) {
	log.Printf("Analyze request received from: %s\n", c.ClientIP())

	var request struct {
		URL string `json:"url" binding:"required,url"`
	}

	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid URL provided",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), analyzeTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.analyzer.Analyze(ctx, request.URL)
	duration := time.Since(start)

	s.requestStats.TrackAnalysis(request.URL, float64(duration.Milliseconds()), err != nil)
	s.statsStorage.RecordAnalysis(duration, countCritical(result), err != nil)

	if err != nil {
		c.JSON(statusForError(ctx, err), gin.H{
			"error": "Failed to analyze URL: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func countCritical(result *analyzer.Analysis) int {
	if result == nil {
		return 0
	}
	count := 0
	for _, issue := range result.Issues {
		if issue.Type == analyzer.IssueCritical {
			count++
		}
	}
	return count
}

// statusForError maps analysis failure kinds to HTTP status codes.
func statusForError(ctx context.Context, err error) int {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	var analysisErr *analyzer.AnalysisError
	if errors.As(err, &analysisErr) {
		switch analysisErr.Kind {
		case analyzer.ErrInvalidInput:
			return http.StatusBadRequest
		case analyzer.ErrUnreachable, analyzer.ErrBadStatus:
			return http.StatusBadGateway
		}
	}

	return http.StatusInternalServerError
}
