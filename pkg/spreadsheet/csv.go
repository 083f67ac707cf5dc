package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads a comma separated table.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	cells, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromTable(cells)
}
