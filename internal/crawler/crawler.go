package crawler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/UnitVectorY-Labs/ackpage/internal/models"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

const DefaultWorkerCount = 3

// Source locates the translation reports in a GitHub repository.
type Source struct {
	Owner string
	Repo  string
	Ref   string
	Dir   string
}

// ReportPath returns the repository path of the report for period.
func (s Source) ReportPath(period models.Period) string {
	return path.Join(s.Dir, string(period), string(period)+"-data.json")
}

// Run executes the crawl phase.
func Run(ctx context.Context, src Source, outputDir, token string) error {
	var client *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		client = github.NewClient(oauth2.NewClient(ctx, ts))
	} else {
		client = github.NewClient(nil)
	}
	return crawl(ctx, client, src, outputDir)
}

func crawl(ctx context.Context, client *github.Client, src Source, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	slog.Info("Fetching translation reports",
		slog.String("repository", src.Owner+"/"+src.Repo),
		slog.String("ref", src.Ref))

	periods := models.Periods()
	jobs := make(chan models.Period, len(periods))
	results := make(chan error, len(periods))
	var wg sync.WaitGroup

	for i := 0; i < DefaultWorkerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for period := range jobs {
				results <- processReport(ctx, client, src, period, outputDir)
			}
		}()
	}

	for _, period := range periods {
		jobs <- period
	}
	close(jobs)

	wg.Wait()
	close(results)

	var errs []error
	for err := range results {
		if err != nil {
			slog.Error("Error processing report", "error", err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("crawl failed: %w", errors.Join(errs...))
	}

	timestampData := map[string]string{
		"last_crawled": time.Now().Format(time.RFC3339Nano),
	}
	if err := writeJSON(filepath.Join(outputDir, "timestamp.json"), timestampData); err != nil {
		return fmt.Errorf("failed to write timestamp.json: %w", err)
	}

	slog.Info("Crawl complete", slog.Int("reports", len(periods)))
	return nil
}

func processReport(ctx context.Context, client *github.Client, src Source, period models.Period, outputDir string) error {
	reportPath := src.ReportPath(period)
	var opts *github.RepositoryContentGetOptions
	if src.Ref != "" {
		opts = &github.RepositoryContentGetOptions{Ref: src.Ref}
	}

	file, _, _, err := client.Repositories.GetContents(ctx, src.Owner, src.Repo, reportPath, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", reportPath, err)
	}
	if file == nil {
		return fmt.Errorf("%s is not a file", reportPath)
	}
	content, err := file.GetContent()
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", reportPath, err)
	}

	ds, err := parseReport([]byte(content))
	if err != nil {
		return fmt.Errorf("invalid report %s: %w", reportPath, err)
	}
	slog.Info("Fetched report", slog.String("period", string(period)), slog.Int("records", len(ds.Data)))

	return writeJSON(filepath.Join(outputDir, string(period)+".json"), ds)
}

func writeJSON(filename string, v any) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filename, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
