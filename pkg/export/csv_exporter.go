package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Dataset is a rendered schedule grid: one row per employee, one column per
// schedule day plus the workload summary columns. Row values are looked up
// by header name so day columns stay in schedule order regardless of map
// iteration.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// CSVExporter renders a schedule grid as CSV.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// utf8BOM makes spreadsheet imports decode shift names like "Früh" and
// "Spät" correctly. Excel assumes a legacy codepage without it.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Render produces the CSV bytes for the grid, BOM first.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("schedule grid has no columns")
	}
	buf := &bytes.Buffer{}
	buf.Write(utf8BOM)
	writer := csv.NewWriter(buf)
	if err := writer.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write grid header: %w", err)
	}
	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			record[i] = row[header]
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write grid row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush grid: %w", err)
	}
	return buf.Bytes(), nil
}
