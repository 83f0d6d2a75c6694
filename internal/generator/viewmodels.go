package generator

import (
	"html/template"

	"github.com/UnitVectorY-Labs/ackpage/internal/leaderboard"
	"github.com/UnitVectorY-Labs/ackpage/internal/models"
	"github.com/UnitVectorY-Labs/ackpage/internal/nav"
	"github.com/UnitVectorY-Labs/ackpage/internal/theme"
)

// PageViewModel is used for the translator acknowledgements page. Sections
// render in field order.
type PageViewModel struct {
	Meta        Meta
	Breadcrumbs []nav.Crumb
	Intro       IntroSection
	Leaderboard LeaderboardSection
	Translators TranslatorsSection
	Certificate CertificateSection
	POAP        POAPSection
	Feedback    FeedbackCard
}

// Meta is the document head and page chrome.
type Meta struct {
	Title       string
	Description string
	SiteTitle   string
	Lang        string
	Canonical   string
	ColorMode   theme.ColorMode
	// ToggleHref switches the visitor to the other color mode.
	ToggleHref  string
	ToggleLabel string
}

// Figure is an image with its alt text.
type Figure struct {
	models.Image
	Alt string
}

// Link is an anchor with a label.
type Link struct {
	Href     string
	Label    string
	External bool
}

// IntroSection is the two-column introduction.
type IntroSection struct {
	Title            string
	Paragraphs       []template.HTML
	ContributorsLead template.HTML
	ContributorsLink Link
	Closing          template.HTML
	Hero             Figure
}

// LeaderboardSection wraps the three-dataset widget.
type LeaderboardSection struct {
	Heading     string
	Tabs        []LeaderboardTab
	Caption     template.HTML
	LastUpdated string
}

// LeaderboardTab is one time-scoped view of the widget.
type LeaderboardTab struct {
	ID       string
	Label    string
	Checked  bool
	Period   models.Period
	Top      []LeaderboardRow
	Rest     []LeaderboardRow
	Empty    string
	ShowMore string

	TranslatorHeader string
	WordsHeader      string
}

// LeaderboardRow is a rendered leaderboard entry.
type LeaderboardRow struct {
	leaderboard.Entry
	Words         string
	LanguageCount string
}

// ActionCard is a linked card with an image.
type ActionCard struct {
	Href        string
	Title       string
	Description string
	Image       Figure
}

// TranslatorsSection points to the full contributors listing.
type TranslatorsSection struct {
	Heading string
	Body    template.HTML
	Card    ActionCard
}

// CertificateSection shows the themed certificate image.
type CertificateSection struct {
	Anchor     string
	Heading    string
	Paragraphs []template.HTML
	Image      Figure
}

// Step is one instruction of an ordered list.
type Step struct {
	Text template.HTML
	Link *Link
}

// POAPSection explains how to claim a POAP.
type POAPSection struct {
	Anchor          string
	Heading         string
	Paragraphs      []template.HTML
	HowToClaimTitle string
	Steps           []Step
	Closing         template.HTML
}

// FeedbackCard asks whether the page was helpful.
type FeedbackCard struct {
	Action   string
	PagePath string
	Prompt   string
	Yes      string
	No       string
}
