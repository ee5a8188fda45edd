// Package cmd implements the CLI commands for the SEO analyzer using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seo-analyzer",
	Short: "Analyze web pages for SEO issues and recommendations",
	Long: `seo-analyzer fetches a web page, extracts its SEO-relevant facts
(meta tags, headings, images, links, structured data, content metrics),
detects weighted issues, and produces a health score with actionable
recommendations.

Usage:
  seo-analyzer analyze <url> [flags]
  seo-analyzer serve`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
