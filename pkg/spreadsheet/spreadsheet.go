// Package spreadsheet reads uploaded timetable files into uniform rows.
//
// Every format carries the same table: a header row naming the columns followed
// by one lesson per row. Column names are matched case-insensitively in English
// or Russian; class, weekday, start, end, name, room and teacher are mandatory.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format identifies a supported file type.
type Format string

const (
	FormatXLS  Format = "xls"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

var (
	// ErrUnsupportedFormat is returned for file types without a reader.
	ErrUnsupportedFormat = errors.New("unsupported timetable format")
	// ErrMissingColumns is returned when the header lacks a mandatory column.
	ErrMissingColumns = errors.New("timetable header is missing columns")
	// ErrEmpty is returned when a file holds no lesson rows.
	ErrEmpty = errors.New("timetable has no rows")
)

// Row is one lesson line of an uploaded timetable. Values are raw cell text.
type Row struct {
	Line     int    `yaml:"-"`
	Class    string `yaml:"class"`
	Subgroup string `yaml:"subgroup"`
	Weekday  string `yaml:"weekday"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Name     string `yaml:"name"`
	Room     string `yaml:"room"`
	Teacher  string `yaml:"teacher"`
	Week     string `yaml:"week"`
}

// Options tune the readers.
type Options struct {
	// XLSCharset is the code page used to decode legacy .xls strings.
	XLSCharset string
}

// FormatFromFilename picks the format from a file extension.
func FormatFromFilename(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "xls":
		return FormatXLS, nil
	case "xlsx":
		return FormatXLSX, nil
	case "html", "htm":
		return FormatHTML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// Read decodes r according to format.
func Read(format Format, r io.ReadSeeker, opts Options) ([]Row, error) {
	var (
		rows []Row
		err  error
	)
	switch format {
	case FormatXLS:
		rows, err = ReadXLS(r, opts.XLSCharset)
	case FormatXLSX:
		rows, err = ReadXLSX(r)
	case FormatHTML:
		rows, err = ReadHTML(r)
	case FormatYAML:
		rows, err = ReadYAML(r)
	case FormatCSV:
		rows, err = ReadCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return rows, nil
}

const (
	colClass = iota
	colSubgroup
	colWeekday
	colStart
	colEnd
	colName
	colRoom
	colTeacher
	colWeek
	columnCount
)

var headerAliases = map[string]int{
	"class": colClass, "класс": colClass,
	"subgroup": colSubgroup, "group": colSubgroup, "подгруппа": colSubgroup, "группа": colSubgroup,
	"weekday": colWeekday, "day": colWeekday, "день": colWeekday, "день недели": colWeekday,
	"start": colStart, "start_time": colStart, "начало": colStart,
	"end": colEnd, "end_time": colEnd, "конец": colEnd, "окончание": colEnd,
	"name": colName, "lesson": colName, "subject": colName, "предмет": colName, "урок": colName,
	"room": colRoom, "кабинет": colRoom,
	"teacher": colTeacher, "учитель": colTeacher, "преподаватель": colTeacher,
	"week": colWeek, "неделя": colWeek,
}

var mandatory = []int{colClass, colWeekday, colStart, colEnd, colName, colRoom, colTeacher}

var columnNames = [columnCount]string{"class", "subgroup", "weekday", "start", "end", "name", "room", "teacher", "week"}

// fromTable turns a grid of cells into rows. The first non-blank line is the header.
func fromTable(cells [][]string) ([]Row, error) {
	header := -1
	for i, line := range cells {
		if !blank(line) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, ErrEmpty
	}

	index := [columnCount]int{}
	for i := range index {
		index[i] = -1
	}
	for j, title := range cells[header] {
		title = strings.TrimSpace(strings.TrimPrefix(title, "\ufeff"))
		if col, ok := headerAliases[strings.ToLower(title)]; ok && index[col] < 0 {
			index[col] = j
		}
	}
	var missing []string
	for _, col := range mandatory {
		if index[col] < 0 {
			missing = append(missing, columnNames[col])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var rows []Row
	for i := header + 1; i < len(cells); i++ {
		line := cells[i]
		if blank(line) {
			continue
		}
		cell := func(col int) string {
			j := index[col]
			if j < 0 || j >= len(line) {
				return ""
			}
			return strings.TrimSpace(line[j])
		}
		rows = append(rows, Row{
			Line:     i + 1,
			Class:    cell(colClass),
			Subgroup: cell(colSubgroup),
			Weekday:  cell(colWeekday),
			Start:    cell(colStart),
			End:      cell(colEnd),
			Name:     cell(colName),
			Room:     cell(colRoom),
			Teacher:  cell(colTeacher),
			Week:     cell(colWeek),
		})
	}
	return rows, nil
}

func blank(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
