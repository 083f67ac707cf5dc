package spreadsheet

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

var clockLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04:05 PM"}

// workbookTimes rewrites start and end cells of Excel workbooks as "HH:MM".
// Time-formatted cells reach us as day fractions ("0.375") or, for custom
// number formats, as RFC 3339 instants on the Excel epoch.
func workbookTimes(rows []Row) []Row {
	for i := range rows {
		rows[i].Start = workbookTime(rows[i].Start)
		rows[i].End = workbookTime(rows[i].End)
	}
	return rows
}

func workbookTime(raw string) string {
	if raw == "" {
		return raw
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if f < 0 || f >= 1 {
			return raw
		}
		minutes := int(math.Round(f*24*60)) % (24 * 60)
		return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Round(time.Minute).Format("15:04")
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("15:04")
		}
	}
	return raw
}
