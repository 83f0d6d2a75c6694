package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/UnitVectorY-Labs/ackpage/internal/images"
	"github.com/UnitVectorY-Labs/ackpage/internal/models"
)

// ErrMissingDataset is returned when a leaderboard report is not in the
// data directory.
var ErrMissingDataset = errors.New("missing dataset")

// Query is the fixed data request of the acknowledgements page.
type Query struct {
	DogeComputer          images.Ref
	LightThemeCertificate images.Ref
	DarkThemeCertificate  images.Ref
	Ethereum              images.Ref
}

// PageQuery is the query executed for every build.
var PageQuery = Query{
	DogeComputer:          images.Ref{Name: "dogeComputer", RelativePath: "doge-computer.png", Width: 500},
	LightThemeCertificate: images.Ref{Name: "lightThemeCertificate", RelativePath: "certificates/light-certificate.png", Width: 800},
	DarkThemeCertificate:  images.Ref{Name: "darkThemeCertificate", RelativePath: "certificates/dark-certificate.png", Width: 800},
	Ethereum:              images.Ref{Name: "ethereum", RelativePath: "what-is-ethereum.png", Width: 220},
}

// Execute resolves every image and loads the three reports from dataDir.
// All failures are reported together.
func (q Query) Execute(ctx context.Context, resolver images.Resolver, dataDir string) (models.PageData, error) {
	var (
		data models.PageData
		errs []error
	)

	resolve := func(dst *models.Image, ref images.Ref) {
		img, err := resolver.Resolve(ctx, ref)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ref.Name, err))
			return
		}
		*dst = img
	}
	resolve(&data.DogeComputer, q.DogeComputer)
	resolve(&data.LightThemeCertificate, q.LightThemeCertificate)
	resolve(&data.DarkThemeCertificate, q.DarkThemeCertificate)
	resolve(&data.Ethereum, q.Ethereum)

	load := func(dst *models.Dataset, period models.Period) {
		ds, err := loadDataset(dataDir, period)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*dst = ds
	}
	load(&data.MonthData, models.PeriodMonth)
	load(&data.QuarterData, models.PeriodQuarter)
	load(&data.AllTimeData, models.PeriodAllTime)

	if len(errs) > 0 {
		return models.PageData{}, errors.Join(errs...)
	}
	data.LastUpdated = loadTimestamp(dataDir)
	return data, nil
}

func loadDataset(dataDir string, period models.Period) (models.Dataset, error) {
	path := filepath.Join(dataDir, string(period)+".json")
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Dataset{}, fmt.Errorf("%w: %s", ErrMissingDataset, path)
		}
		return models.Dataset{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var ds models.Dataset
	if err := json.NewDecoder(file).Decode(&ds); err != nil {
		return models.Dataset{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return ds, nil
}

// loadTimestamp returns the crawl time, or the zero time when unknown.
func loadTimestamp(dataDir string) time.Time {
	file, err := os.Open(filepath.Join(dataDir, "timestamp.json"))
	if err != nil {
		return time.Time{}
	}
	defer file.Close()

	var data map[string]string
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return time.Time{}
	}
	lastCrawled, ok := data["last_crawled"]
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, lastCrawled)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
