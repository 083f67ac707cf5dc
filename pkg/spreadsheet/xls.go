package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/extrame/xls"
)

const (
	defaultCharset = "utf-8"
	// maxXLSColumns is the BIFF8 column limit, used when a row carries no ROW record.
	maxXLSColumns = 256
)

// ReadXLS reads the first sheet of a legacy Excel workbook.
func ReadXLS(r io.ReadSeeker, charset string) ([]Row, error) {
	if charset == "" {
		charset = defaultCharset
	}
	book, err := xls.OpenReader(r, charset)
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	if book == nil {
		return nil, errors.New("open xls: no workbook stream")
	}
	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, ErrEmpty
	}

	cells := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			cells = append(cells, nil)
			continue
		}
		width := row.LastCol()
		if width == 0 {
			width = maxXLSColumns
		}
		line := make([]string, 0, width)
		for j := 0; j < width; j++ {
			line = append(line, row.Col(j))
		}
		cells = append(cells, line)
	}

	rows, err := fromTable(cells)
	if err != nil {
		return nil, err
	}
	return workbookTimes(rows), nil
}

// sheetRow returns nil for rows the sheet never wrote; xls.WorkSheet.Row panics on them.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}
