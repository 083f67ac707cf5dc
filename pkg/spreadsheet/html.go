package spreadsheet

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// ReadHTML reads the first <table> of an HTML document, such as a sheet saved as a web page.
func ReadHTML(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrEmpty
	}

	var cells [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var line []string
		tr.Find("th, td").Each(func(_ int, td *goquery.Selection) {
			line = append(line, td.Text())
		})
		cells = append(cells, line)
	})
	return fromTable(cells)
}
