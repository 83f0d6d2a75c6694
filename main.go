package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/UnitVectorY-Labs/ackpage/internal/config"
	"github.com/UnitVectorY-Labs/ackpage/internal/crawler"
	"github.com/UnitVectorY-Labs/ackpage/internal/generator"
	"github.com/UnitVectorY-Labs/ackpage/internal/i18n"
	"github.com/UnitVectorY-Labs/ackpage/internal/server"
)

// templateFS embeds all HTML templates from the templates directory.
//
//go:embed templates/*.html
//go:embed templates/style.css
var templateFS embed.FS

func main() {
	crawlMode := flag.Bool("crawl", false, "Fetch translation reports into the data directory")
	genMode := flag.Bool("generate", false, "Render the acknowledgements page for every locale")
	serveMode := flag.Bool("serve", false, "Preview the generated site")
	dataDir := flag.String("output", "", "Directory for data output (crawl) or input (generate)")
	htmlDir := flag.String("html", "", "Directory for HTML output (generate) or input (serve)")
	assetsDir := flag.String("assets", "", "Directory holding page images")
	locales := flag.String("locales", "", "Comma separated locales to generate (default: all)")
	port := flag.String("port", "", "Port for the preview server")

	flag.Parse()

	modes := 0
	for _, m := range []bool{*crawlMode, *genMode, *serveMode} {
		if m {
			modes++
		}
	}
	if modes > 1 {
		fmt.Println("Error: Only one of -crawl, -generate or -serve may be given.")
		os.Exit(1)
	}
	if modes == 0 {
		fmt.Println("Usage: ackpage [-crawl | -generate | -serve] [options]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Configuration failed: %v\n", err)
		os.Exit(1)
	}
	override(&cfg.DataDir, *dataDir)
	override(&cfg.HTMLDir, *htmlDir)
	override(&cfg.AssetsDir, *assetsDir)
	override(&cfg.Port, *port)
	if *locales != "" {
		cfg.Locales = strings.Split(*locales, ",")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case *crawlMode:
		src := crawler.Source{
			Owner: cfg.ReportsOwner,
			Repo:  cfg.ReportsRepo,
			Ref:   cfg.ReportsRef,
			Dir:   cfg.ReportsDir,
		}
		if cfg.GitHubToken == "" {
			slog.Warn("GITHUB_TOKEN is not set, using unauthenticated requests")
		}
		if err := crawler.Run(ctx, src, cfg.DataDir, cfg.GitHubToken); err != nil {
			fmt.Printf("Crawl failed: %v\n", err)
			os.Exit(1)
		}
	case *genMode:
		if err := generator.Run(ctx, cfg, templateFS); err != nil {
			fmt.Printf("Generation failed: %v\n", err)
			os.Exit(1)
		}
	case *serveMode:
		if err := serve(ctx, cfg); err != nil {
			fmt.Printf("Server failed: %v\n", err)
			os.Exit(1)
		}
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("failed to load catalogs: %w", err)
	}

	srv := server.NewServer(cfg.HTMLDir, cfg.Port, bundle)
	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()
	slog.Info("Started server", slog.String("listen_addr", ":"+cfg.Port), slog.String("root", cfg.HTMLDir))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func override(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}
