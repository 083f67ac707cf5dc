package models

// ImportReport summarises a timetable upload.
type ImportReport struct {
	Rows     int              `json:"rows"`
	Created  int              `json:"created"`
	Existing int              `json:"existing"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError explains why one uploaded row was skipped.
type ImportRowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}
