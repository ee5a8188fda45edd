package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seo-analyzer/backend/analyzer"
)

var (
	flagPretty  bool
	flagOutput  string
	flagTimeout int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Analyze a single URL and print the result as JSON",
	Long: `Analyze fetches the given page, runs the full SEO pipeline against it,
and writes the analysis result as JSON.

Examples:
  seo-analyzer analyze https://example.com
  seo-analyzer analyze https://example.com --pretty
  seo-analyzer analyze https://example.com --output report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&flagPretty, "pretty", false, "Indent the JSON output")
	analyzeCmd.Flags().StringVar(&flagOutput, "output", "", "Write the result to a file instead of stdout")
	analyzeCmd.Flags().IntVar(&flagTimeout, "timeout", 30, "Analysis timeout in seconds")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(flagTimeout)*time.Second)
	defer cancel()

	a := analyzer.New(nil)

	result, err := a.Analyze(ctx, args[0])
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	var data []byte
	if flagPretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	data = append(data, '\n')

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, data, 0644); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Written: %s\n", flagOutput)
		return nil
	}

	_, err = os.Stdout.Write(data)
	return err
}
