package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds settings for every phase. Values come from the environment
// (optionally a .env file) and may be overridden by command-line flags.
type Config struct {
	// Crawl phase.
	GitHubToken  string `env:"GITHUB_TOKEN"`
	ReportsOwner string `env:"REPORTS_OWNER" envDefault:"ethereum"`
	ReportsRepo  string `env:"REPORTS_REPO" envDefault:"ethereum-org-website"`
	ReportsRef   string `env:"REPORTS_REF" envDefault:"master"`
	ReportsDir   string `env:"REPORTS_DIR" envDefault:"src/data/translation-reports"`

	// Generate phase.
	DataDir   string   `env:"DATA_DIR" envDefault:"data"`
	AssetsDir string   `env:"ASSETS_DIR" envDefault:"assets"`
	HTMLDir   string   `env:"HTML_DIR" envDefault:"output"`
	Locales   []string `env:"LOCALES" envSeparator:","`
	Limit     int      `env:"LEADERBOARD_LIMIT" envDefault:"50"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `env:"CLOUDINARY_FOLDER" envDefault:"acknowledgements"`

	// Serve phase.
	Port string `env:"PORT" envDefault:"8080"`
}

// Load reads a .env file when present and parses the environment.
func Load() (*Config, error) {
	// A missing .env is fine; production sets real environment variables.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Locales = cleanLocales(cfg.Locales)
	return &cfg, nil
}

// UseCloudinary reports whether images should be served from Cloudinary.
func (c *Config) UseCloudinary() bool {
	return c.CloudinaryCloudName != ""
}

func cleanLocales(in []string) []string {
	var out []string
	for _, l := range in {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
