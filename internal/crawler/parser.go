package crawler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/UnitVectorY-Labs/ackpage/internal/models"
)

var errNoData = errors.New(`report has no "data" array`)

// parseReport decodes a report payload. Both the wrapped form
// {"data": [...]} and a bare record array are accepted.
func parseReport(content []byte) (models.Dataset, error) {
	content = bytes.TrimSpace(content)
	if len(content) > 0 && content[0] == '[' {
		var records []models.Record
		if err := json.Unmarshal(content, &records); err != nil {
			return models.Dataset{}, fmt.Errorf("decode records: %w", err)
		}
		return normalize(models.Dataset{Data: records}), nil
	}

	var raw struct {
		Data *[]models.Record `json:"data"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return models.Dataset{}, fmt.Errorf("decode report: %w", err)
	}
	if raw.Data == nil {
		return models.Dataset{}, errNoData
	}
	return normalize(models.Dataset{Data: *raw.Data}), nil
}

// normalize makes empty slices explicit so written reports always carry
// "languages": [] rather than null.
func normalize(ds models.Dataset) models.Dataset {
	if ds.Data == nil {
		ds.Data = []models.Record{}
	}
	for i := range ds.Data {
		if ds.Data[i].Languages == nil {
			ds.Data[i].Languages = []models.LanguageEntry{}
		}
	}
	return ds
}
