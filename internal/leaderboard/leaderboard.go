// Package leaderboard turns translation reports into ranked boards.
package leaderboard

import (
	"sort"
	"strings"

	"github.com/UnitVectorY-Labs/ackpage/internal/models"
)

const (
	// DefaultLimit is the most rows a board keeps.
	DefaultLimit = 50
	// Visible is the number of rows shown before "show more".
	Visible = 10
)

// Usernames containing these markers belong to deleted or anonymized accounts.
var excludedUsernames = []string{"REMOVED_USER", "LinkedIn"}

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}

// Entry is one ranked translator.
type Entry struct {
	Rank        int
	Medal       string
	DisplayName string
	Username    string
	AvatarURL   string
	TotalCosts  int
	Languages   []models.LanguageCost
}

// Board is a ranked view of one dataset.
type Board struct {
	Period  models.Period
	Entries []Entry
}

// Top returns the rows shown by default.
func (b Board) Top() []Entry {
	if len(b.Entries) <= Visible {
		return b.Entries
	}
	return b.Entries[:Visible]
}

// Rest returns the rows behind "show more".
func (b Board) Rest() []Entry {
	if len(b.Entries) <= Visible {
		return nil
	}
	return b.Entries[Visible:]
}

// Empty reports whether the board has no rows.
func (b Board) Empty() bool {
	return len(b.Entries) == 0
}

// Widget holds the three time-scoped boards.
type Widget struct {
	Month   Board
	Quarter Board
	AllTime Board
}

// Boards returns the boards in display order.
func (w Widget) Boards() []Board {
	return []Board{w.Month, w.Quarter, w.AllTime}
}

// NewWidget ranks the three datasets of a page independently.
func NewWidget(month, quarter, allTime models.Dataset, limit int) Widget {
	return Widget{
		Month:   Build(models.PeriodMonth, month, limit),
		Quarter: Build(models.PeriodQuarter, quarter, limit),
		AllTime: Build(models.PeriodAllTime, allTime, limit),
	}
}

// Build ranks a dataset by total cost, highest first. Ties keep report order.
func Build(period models.Period, ds models.Dataset, limit int) Board {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var entries []Entry
	for _, rec := range ds.Data {
		if excluded(rec.User.Username) {
			continue
		}
		name := strings.TrimSpace(rec.User.FullName)
		if name == "" {
			name = rec.User.Username
		}
		entries = append(entries, Entry{
			DisplayName: name,
			Username:    rec.User.Username,
			AvatarURL:   rec.User.AvatarURL,
			TotalCosts:  rec.User.TotalCosts,
			Languages:   languages(rec.Languages),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalCosts > entries[j].TotalCosts
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].Medal = medals[i+1]
	}
	return Board{Period: period, Entries: entries}
}

func excluded(username string) bool {
	if strings.TrimSpace(username) == "" {
		return true
	}
	for _, marker := range excludedUsernames {
		if strings.Contains(username, marker) {
			return true
		}
	}
	return false
}

func languages(in []models.LanguageEntry) []models.LanguageCost {
	out := make([]models.LanguageCost, 0, len(in))
	for _, l := range in {
		out = append(out, l.Language)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalCosts > out[j].TotalCosts
	})
	return out
}
