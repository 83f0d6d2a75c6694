package generator

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/UnitVectorY-Labs/ackpage/internal/config"
	"github.com/UnitVectorY-Labs/ackpage/internal/i18n"
	"github.com/UnitVectorY-Labs/ackpage/internal/images"
	"github.com/UnitVectorY-Labs/ackpage/internal/leaderboard"
	"github.com/UnitVectorY-Labs/ackpage/internal/models"
	"github.com/UnitVectorY-Labs/ackpage/internal/nav"
	"github.com/UnitVectorY-Labs/ackpage/internal/theme"
)

const (
	// PagePath is the locale-relative path of the acknowledgements page.
	PagePath         = "/contributing/translation-program/acknowledgements/"
	ContributorsPath = "/contributing/translation-program/contributors/"
	DiscordInviteURL = "https://discord.gg/CetY6Y4"
	FeedbackAction   = "/feedback"
	ColorModePath    = "/color-mode"

	certificateAlt = "translator certificate"
)

// Localizer resolves message identifiers for one locale.
type Localizer interface {
	Locale() string
	Lang() string
	T(id string) string
	Sprintf(id string, args ...any) string
	HTML(id string) template.HTML
}

// IndexFile returns the file name of the page variant for mode.
func IndexFile(mode theme.ColorMode) string {
	return theme.Select(mode, "index.html", "index-dark.html")
}

// ColorModeHref returns the link that switches the visitor to mode and sends
// them back to page.
func ColorModeHref(mode theme.ColorMode, page string) string {
	q := url.Values{"mode": {string(mode)}, "page": {page}}
	return ColorModePath + "?" + q.Encode()
}

// LocalePath returns the public path of the page for locale.
func LocalePath(locale string) string {
	return "/" + locale + PagePath
}

// Run executes the generation phase.
func Run(ctx context.Context, cfg *config.Config, templates fs.FS) error {
	slog.Info("Starting generation", slog.String("data", cfg.DataDir), slog.String("output", cfg.HTMLDir))

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("failed to load message catalogs: %w", err)
	}
	locales, err := selectLocales(bundle, cfg.Locales)
	if err != nil {
		return err
	}

	resolver, err := newResolver(cfg)
	if err != nil {
		return err
	}
	data, err := PageQuery.Execute(ctx, resolver, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("page query failed: %w", err)
	}

	tmpl, err := ParseTemplates(templates)
	if err != nil {
		return err
	}

	for _, locale := range locales {
		loc := bundle.Localizer(locale)
		dir := filepath.Join(cfg.HTMLDir, filepath.FromSlash(strings.Trim(LocalePath(locale), "/")))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		for _, mode := range theme.Modes() {
			vm := Compose(data, models.Location{Pathname: LocalePath(locale)}, loc, mode, cfg.Limit)
			if err := loc.Err(); err != nil {
				return fmt.Errorf("locale %s: %w", locale, err)
			}
			if err := renderTemplate(tmpl, filepath.Join(dir, IndexFile(mode)), vm); err != nil {
				return err
			}
		}
		slog.Info("Rendered page", slog.String("locale", locale))
	}

	if err := copyAsset(templates, "templates/style.css", filepath.Join(cfg.HTMLDir, "style.css")); err != nil {
		return fmt.Errorf("failed to copy style.css: %w", err)
	}

	slog.Info("Generation complete", slog.Int("locales", len(locales)))
	return nil
}

// ParseTemplates parses the page templates from fsys.
func ParseTemplates(fsys fs.FS) (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Render writes the page for vm to w.
func Render(w io.Writer, tmpl *template.Template, vm PageViewModel) error {
	return tmpl.ExecuteTemplate(w, "page.html", vm)
}

// Compose builds the page view model. The color mode only decides which
// certificate variant is shown and where the mode toggle points.
func Compose(data models.PageData, location models.Location, l Localizer, mode theme.ColorMode, limit int) PageViewModel {
	locale := l.Locale()

	vm := PageViewModel{
		Meta: Meta{
			Title:       l.T(msgMetaTitle),
			Description: l.T(msgMetaDescription),
			SiteTitle:   l.T(msgSiteTitle),
			Lang:        l.Lang(),
			Canonical:   location.Pathname,
			ColorMode:   mode,
			ToggleHref:  ColorModeHref(theme.Select(mode, theme.Dark, theme.Light), location.Pathname),
			ToggleLabel: l.T(theme.Select(mode, msgToggleDark, msgToggleLight)),
		},
		Breadcrumbs: nav.Breadcrumbs(location.Pathname, l),
	}

	vm.Intro = IntroSection{
		Title:            l.T(msgPageTitle),
		Paragraphs:       []template.HTML{l.HTML(msgPage1), l.HTML(msgPage2)},
		ContributorsLead: l.HTML(msgPage3),
		ContributorsLink: Link{Href: "/" + locale + ContributorsPath, Label: l.T(msgPageLink)},
		Closing:          l.HTML(msgPage4),
		Hero:             Figure{Image: data.DogeComputer, Alt: l.T(msgHeroAlt)},
	}

	widget := leaderboard.NewWidget(data.MonthData, data.QuarterData, data.AllTimeData, limit)
	vm.Leaderboard = LeaderboardSection{
		Heading: l.T(msgLeaderboardTitle),
		Tabs: []LeaderboardTab{
			leaderboardTab(widget.Month, l.T(msgMonthView), true, l),
			leaderboardTab(widget.Quarter, l.T(msgQuarterView), false, l),
			leaderboardTab(widget.AllTime, l.T(msgAllTimeView), false, l),
		},
		Caption: l.HTML(msgLeaderboard1),
	}
	if !data.LastUpdated.IsZero() {
		vm.Leaderboard.LastUpdated = l.Sprintf(msgUpdated, data.LastUpdated.Format(l.T(msgDateLayout)))
	}

	vm.Translators = TranslatorsSection{
		Heading: l.T(msgTranslatorsTitle),
		Body:    l.HTML(msgTranslators1),
		Card: ActionCard{
			Href:        "/" + locale + ContributorsPath,
			Title:       l.T(msgViewAll),
			Description: l.T(msgCTA),
			Image:       Figure{Image: data.Ethereum},
		},
	}

	vm.Certificate = CertificateSection{
		Anchor:     "certificate",
		Heading:    l.T(msgCertTitle),
		Paragraphs: []template.HTML{l.HTML(msgCert1), l.HTML(msgCert2), l.HTML(msgCert3)},
		Image: Figure{
			Image: theme.Select(mode, data.LightThemeCertificate, data.DarkThemeCertificate),
			Alt:   certificateAlt,
		},
	}

	vm.POAP = POAPSection{
		Anchor:          "poap",
		Heading:         l.T(msgPOAPTitle),
		Paragraphs:      []template.HTML{l.HTML(msgPOAP1), l.HTML(msgPOAP2), l.HTML(msgPOAP3)},
		HowToClaimTitle: l.T(msgHowToClaimTitle),
		Steps: []Step{
			{
				Text: l.HTML(msgHowToClaim1),
				Link: &Link{Href: DiscordInviteURL, Label: l.T(msgHowToClaimDiscord), External: true},
			},
			{Text: l.HTML(msgHowToClaim2)},
			{Text: l.HTML(msgHowToClaim3)},
			{Text: l.HTML(msgHowToClaim4)},
		},
		Closing: l.HTML(msgPOAP4),
	}

	vm.Feedback = FeedbackCard{
		Action:   FeedbackAction,
		PagePath: location.Pathname,
		Prompt:   l.T(msgFeedbackPrompt),
		Yes:      l.T(msgYes),
		No:       l.T(msgNo),
	}
	return vm
}

func leaderboardTab(board leaderboard.Board, label string, checked bool, l Localizer) LeaderboardTab {
	return LeaderboardTab{
		ID:               "leaderboard-" + string(board.Period),
		Label:            label,
		Checked:          checked,
		Period:           board.Period,
		Top:              rows(board.Top(), l),
		Rest:             rows(board.Rest(), l),
		Empty:            l.T(msgEmpty),
		ShowMore:         l.T(msgShowMore),
		TranslatorHeader: l.T(msgTranslator),
		WordsHeader:      l.T(msgTotalWords),
	}
}

func rows(entries []leaderboard.Entry, l Localizer) []LeaderboardRow {
	out := make([]LeaderboardRow, 0, len(entries))
	for _, e := range entries {
		out = append(out, LeaderboardRow{
			Entry:         e,
			Words:         l.Sprintf(msgWords, e.TotalCosts),
			LanguageCount: l.Sprintf(msgLanguages, len(e.Languages)),
		})
	}
	return out
}

func selectLocales(bundle *i18n.Bundle, wanted []string) ([]string, error) {
	if len(wanted) == 0 {
		return bundle.Locales(), nil
	}
	for _, locale := range wanted {
		if !bundle.HasLocale(locale) {
			return nil, fmt.Errorf("locale %q has no message catalog", locale)
		}
	}
	return wanted, nil
}

func newResolver(cfg *config.Config) (images.Resolver, error) {
	if cfg.UseCloudinary() {
		cld, err := images.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder, cfg.AssetsDir)
		if err != nil {
			return nil, err
		}
		return cld, nil
	}
	return &images.Local{
		AssetsDir: cfg.AssetsDir,
		OutputDir: filepath.Join(cfg.HTMLDir, "images"),
	}, nil
}

func renderTemplate(tmpl *template.Template, path string, vm PageViewModel) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()
	if err := Render(file, tmpl, vm); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

func copyAsset(fsys fs.FS, src, dst string) error {
	sourceFile, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}
