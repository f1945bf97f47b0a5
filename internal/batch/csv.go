// v1
// internal/batch/csv.go
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Takshi07/heat-stress-awareness/internal/risk"
)

// ErrMissingColumn marks an upload whose header lacks a required column.
// The whole batch is rejected: rows cannot be interpreted without it.
var ErrMissingColumn = errors.New("missing required column")

const (
	colTemperature = "temperature"
	colHumidity    = "humidity"
	colDuration    = "duration_hours"
	colActivity    = "activity"
)

var requiredColumns = []string{colTemperature, colHumidity, colDuration, colActivity}

// EvaluateReader streams scenarios from CSV and evaluates them row by row,
// never materializing the whole upload. The header must contain the columns
// temperature, humidity, duration_hours and activity (any order, extra
// columns ignored, matching case-insensitive); a missing column fails the
// whole batch with ErrMissingColumn. Row indexes in the returned diagnostics
// are zero-based over data rows, header excluded. A header-only upload
// yields an empty result and no error.
func EvaluateReader(r io.Reader) ([]risk.Assessment, []RowError, error) {
	return evaluateReaderAt(r, time.Now().UTC())
}

func evaluateReaderAt(r io.Reader, at time.Time) ([]risk.Assessment, []RowError, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("empty upload: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, nil, err
	}

	var results []risk.Assessment
	var rowErrs []RowError
	for i := 0; ; i++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed rows (e.g. ragged field counts) are row-level
			// diagnostics; the reader keeps going afterwards.
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				rowErrs = append(rowErrs, rowError(i, err))
				continue
			}
			return results, rowErrs, fmt.Errorf("read row %d: %w", i, err)
		}

		in, err := parseRow(cols, record)
		if err != nil {
			rowErrs = append(rowErrs, rowError(i, err))
			continue
		}
		a, err := risk.EvaluateAt(in, at)
		if err != nil {
			rowErrs = append(rowErrs, rowError(i, err))
			continue
		}
		results = append(results, a)
	}
	return results, rowErrs, nil
}

// indexColumns maps required column names to their positions in the header.
func indexColumns(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.ToLower(strings.TrimSpace(name))] = i
	}
	cols := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		i, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
		}
		cols[name] = i
	}
	return cols, nil
}

func parseRow(cols map[string]int, record []string) (risk.ScenarioInput, error) {
	temp, err := parseField(record, cols[colTemperature], colTemperature)
	if err != nil {
		return risk.ScenarioInput{}, err
	}
	hum, err := parseField(record, cols[colHumidity], colHumidity)
	if err != nil {
		return risk.ScenarioInput{}, err
	}
	dur, err := parseField(record, cols[colDuration], colDuration)
	if err != nil {
		return risk.ScenarioInput{}, err
	}
	activity, err := risk.ParseActivity(record[cols[colActivity]])
	if err != nil {
		return risk.ScenarioInput{}, err
	}
	return risk.ScenarioInput{
		TemperatureC:  temp,
		HumidityPct:   hum,
		DurationHours: dur,
		Activity:      activity,
	}, nil
}

func parseField(record []string, idx int, name string) (float64, error) {
	raw := strings.TrimSpace(record[idx])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not a number: %w", name, raw, risk.ErrInvalidInput)
	}
	return v, nil
}

// WriteCSV serializes annotated batch results: the scenario columns in upload
// order plus score and tier. Column order is fixed across calls.
func WriteCSV(w io.Writer, results []risk.Assessment) error {
	cw := csv.NewWriter(w)
	header := append([]string{}, requiredColumns...)
	header = append(header, "score", "tier")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, a := range results {
		row := []string{
			strconv.FormatFloat(a.Input.TemperatureC, 'f', -1, 64),
			strconv.FormatFloat(a.Input.HumidityPct, 'f', -1, 64),
			strconv.FormatFloat(a.Input.DurationHours, 'f', -1, 64),
			string(a.Input.Activity),
			strconv.Itoa(a.Score),
			string(a.Tier),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
