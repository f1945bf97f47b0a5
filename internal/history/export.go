// v0
// internal/history/export.go
package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Takshi07/heat-stress-awareness/internal/risk"
)

// ExportColumns is the fixed column order of exported history tables.
// It never changes between calls so exported files stay diff-friendly.
var ExportColumns = []string{
	"timestamp",
	"temperature_c",
	"humidity_pct",
	"duration_hours",
	"activity",
	"score",
	"tier",
}

// ExportTable renders the history as rows in ExportColumns order, one row per
// assessment, oldest first. The header row is not included.
func (s *Store) ExportTable() [][]string {
	all := s.All()
	rows := make([][]string, 0, len(all))
	for _, a := range all {
		rows = append(rows, exportRow(a))
	}
	return rows
}

// WriteCSV serializes the history as CSV with a fixed header row.
func (s *Store) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range s.ExportTable() {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(a risk.Assessment) []string {
	return []string{
		a.Timestamp.UTC().Format(time.RFC3339),
		formatFloat(a.Input.TemperatureC),
		formatFloat(a.Input.HumidityPct),
		formatFloat(a.Input.DurationHours),
		string(a.Input.Activity),
		strconv.Itoa(a.Score),
		string(a.Tier),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
