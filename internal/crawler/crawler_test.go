package crawler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/UnitVectorY-Labs/ackpage/internal/models"
	"github.com/google/go-github/v57/github"
)

const monthReport = `{"data":[{"user":{"username":"alice","fullName":"Alice","avatarUrl":"https://example.com/a.png","totalCosts":120},"languages":[{"language":{"name":"Spanish","totalCosts":120}}]}]}`

func newTestClient(t *testing.T, files map[string]string) *github.Client {
	t.Helper()
	mux := http.NewServeMux()
	for p, body := range files {
		body := body
		mux.HandleFunc("/repos/ethereum/site/contents/"+p, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("ref") != "main" {
				http.Error(w, "wrong ref", http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"type":     "file",
				"encoding": "base64",
				"path":     p,
				"content":  base64.StdEncoding.EncodeToString([]byte(body)),
			})
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := github.NewClient(nil)
	u, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	client.BaseURL = u
	return client
}

var testSource = Source{Owner: "ethereum", Repo: "site", Ref: "main", Dir: "reports"}

func TestCrawlWritesReports(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"reports/month/month-data.json":     monthReport,
		"reports/quarter/quarter-data.json": `{"data":[]}`,
		"reports/alltime/alltime-data.json": `[{"user":{"username":"bob","totalCosts":5}}]`,
	})
	out := t.TempDir()

	if err := crawl(context.Background(), client, testSource, out); err != nil {
		t.Fatalf("crawl: %v", err)
	}

	month := readDataset(t, filepath.Join(out, "month.json"))
	if len(month.Data) != 1 || month.Data[0].User.Username != "alice" || month.Data[0].Languages[0].Language.Name != "Spanish" {
		t.Fatalf("unexpected month report %+v", month)
	}
	allTime := readDataset(t, filepath.Join(out, "alltime.json"))
	if len(allTime.Data) != 1 || allTime.Data[0].User.TotalCosts != 5 {
		t.Fatalf("unexpected all-time report %+v", allTime)
	}
	if _, err := os.Stat(filepath.Join(out, "timestamp.json")); err != nil {
		t.Fatalf("timestamp.json missing: %v", err)
	}
}

func TestCrawlFailsOnMissingReport(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"reports/month/month-data.json": monthReport,
	})
	out := t.TempDir()

	if err := crawl(context.Background(), client, testSource, out); err == nil {
		t.Fatal("expected error for missing reports")
	}
	if _, err := os.Stat(filepath.Join(out, "timestamp.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("timestamp.json should not be written on failure, stat err = %v", err)
	}
}

func TestParseReport(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		records int
		wantErr bool
	}{
		{name: "wrapped", input: monthReport, records: 1},
		{name: "bare array", input: ` [{"user":{"username":"x"}}]`, records: 1},
		{name: "empty data", input: `{"data":[]}`, records: 0},
		{name: "no data key", input: `{"users":[]}`, wantErr: true},
		{name: "not json", input: `<html>`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := parseReport([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(ds.Data) != tt.records {
				t.Fatalf("records = %d, want %d", len(ds.Data), tt.records)
			}
			for _, rec := range ds.Data {
				if rec.Languages == nil {
					t.Fatal("languages should be normalized to an empty slice")
				}
			}
		})
	}
}

func TestReportPath(t *testing.T) {
	got := testSource.ReportPath(models.PeriodAllTime)
	if want := fmt.Sprintf("reports/%s/%s-data.json", "alltime", "alltime"); got != want {
		t.Fatalf("ReportPath = %q, want %q", got, want)
	}
}

func readDataset(t *testing.T, path string) models.Dataset {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var ds models.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return ds
}
