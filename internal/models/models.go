package models

import "time"

// Period is the time window a leaderboard report covers.
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodAllTime Period = "alltime"
)

// Periods returns every report period in display order.
func Periods() []Period {
	return []Period{PeriodMonth, PeriodQuarter, PeriodAllTime}
}

// User is a translator as reported by the translation platform.
type User struct {
	Username   string `json:"username"`
	FullName   string `json:"fullName"`
	AvatarURL  string `json:"avatarUrl"`
	TotalCosts int    `json:"totalCosts"`
}

// LanguageCost is the contribution of one translator to one language.
type LanguageCost struct {
	Name       string `json:"name"`
	TotalCosts int    `json:"totalCosts"`
}

// LanguageEntry wraps a LanguageCost the way the report files nest it.
type LanguageEntry struct {
	Language LanguageCost `json:"language"`
}

// Record is a single translator row in a report.
type Record struct {
	User      User            `json:"user"`
	Languages []LanguageEntry `json:"languages"`
}

// Dataset is one leaderboard report (month, quarter or all-time).
type Dataset struct {
	Data []Record `json:"data"`
}

// Image is a resolved, render-ready image.
type Image struct {
	Src    string
	Width  int
	Height int
}

// PageData is the result of the acknowledgements page query.
type PageData struct {
	DogeComputer          Image
	LightThemeCertificate Image
	DarkThemeCertificate  Image
	Ethereum              Image

	MonthData   Dataset
	QuarterData Dataset
	AllTimeData Dataset

	// LastUpdated is the crawl time, zero when unknown.
	LastUpdated time.Time
}

// Location is the page location the page is rendered for.
type Location struct {
	Pathname string
}
