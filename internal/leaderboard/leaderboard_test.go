package leaderboard

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/UnitVectorY-Labs/ackpage/internal/models"
)

func record(username, fullName string, total int, langs ...models.LanguageCost) models.Record {
	rec := models.Record{User: models.User{Username: username, FullName: fullName, TotalCosts: total}}
	for _, l := range langs {
		rec.Languages = append(rec.Languages, models.LanguageEntry{Language: l})
	}
	return rec
}

func TestBuildRanksAndFilters(t *testing.T) {
	ds := models.Dataset{Data: []models.Record{
		record("alice", "Alice A", 100),
		record("REMOVED_USER", "", 9000),
		record("bob", "", 300, models.LanguageCost{Name: "Spanish", TotalCosts: 100}, models.LanguageCost{Name: "German", TotalCosts: 200}),
		record("LinkedIn123", "", 5000),
		record("", "Nobody", 700),
		record("carol", "Carol", 100),
		record("dave", "Dave", 50),
	}}

	board := Build(models.PeriodMonth, ds, 0)

	var got []string
	for _, e := range board.Entries {
		got = append(got, fmt.Sprintf("%d:%s:%d:%s", e.Rank, e.DisplayName, e.TotalCosts, e.Medal))
	}
	want := []string{"1:bob:300:🥇", "2:Alice A:100:🥈", "3:Carol:100:🥉", "4:Dave:50:"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	if board.Entries[0].Languages[0].Name != "German" {
		t.Fatalf("languages not sorted by cost: %v", board.Entries[0].Languages)
	}
	if board.Period != models.PeriodMonth {
		t.Fatalf("period = %q", board.Period)
	}
}

func TestBuildLimitAndVisibility(t *testing.T) {
	var ds models.Dataset
	for i := 0; i < 60; i++ {
		ds.Data = append(ds.Data, record(fmt.Sprintf("user%d", i), "", 1000-i))
	}

	board := Build(models.PeriodAllTime, ds, DefaultLimit)
	if len(board.Entries) != DefaultLimit {
		t.Fatalf("entries = %d, want %d", len(board.Entries), DefaultLimit)
	}
	if len(board.Top()) != Visible || len(board.Rest()) != DefaultLimit-Visible {
		t.Fatalf("top/rest = %d/%d", len(board.Top()), len(board.Rest()))
	}

	small := Build(models.PeriodAllTime, ds, 5)
	if len(small.Top()) != 5 || small.Rest() != nil {
		t.Fatalf("small board top/rest = %d/%d", len(small.Top()), len(small.Rest()))
	}
}

func TestBuildEmptyDataset(t *testing.T) {
	board := Build(models.PeriodQuarter, models.Dataset{}, 10)
	if !board.Empty() || len(board.Top()) != 0 || board.Rest() != nil {
		t.Fatalf("expected empty board, got %+v", board)
	}
}

func TestNewWidgetKeepsDatasetsApart(t *testing.T) {
	month := models.Dataset{Data: []models.Record{record("m", "", 1)}}
	quarter := models.Dataset{Data: []models.Record{record("q", "", 2)}}
	allTime := models.Dataset{Data: []models.Record{record("a", "", 3)}}

	w := NewWidget(month, quarter, allTime, 10)
	swapped := NewWidget(allTime, quarter, month, 10)

	if w.Month.Entries[0].Username != "m" || swapped.Month.Entries[0].Username != "a" {
		t.Fatalf("month board does not follow month dataset")
	}
	if !reflect.DeepEqual(w.Quarter, swapped.Quarter) {
		t.Fatalf("quarter board changed when only month/all-time were swapped")
	}
	boards := w.Boards()
	if boards[0].Period != models.PeriodMonth || boards[1].Period != models.PeriodQuarter || boards[2].Period != models.PeriodAllTime {
		t.Fatalf("boards out of order: %v", boards)
	}
}
