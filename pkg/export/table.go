package export

import "unicode/utf8"

// Table is ordered tabular export content.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// columnWeights returns, per column, the longest text found in the header or any row.
func (t Table) columnWeights() []float64 {
	weights := make([]float64, len(t.Headers))
	for i, header := range t.Headers {
		weights[i] = float64(utf8.RuneCountInString(header))
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(weights); i++ {
			if n := float64(utf8.RuneCountInString(row[i])); n > weights[i] {
				weights[i] = n
			}
		}
	}
	for i := range weights {
		if weights[i] < 3 {
			weights[i] = 3
		}
	}
	return weights
}
