package fileio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"lifeexp/internal"
)

func readHTML(path string, _ LoadOptions) (*internal.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := parseHTMLTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// parseHTMLTable reads the first <table> of the document. Its first row is the header.
func parseHTMLTable(r io.Reader) (*internal.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return nil, fmt.Errorf("%w: no html table found", internal.ErrUnsupportedFormat)
	}

	header := htmlCells(rows.First())
	records := make([][]string, 0, rows.Length()-1)
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := htmlCells(row)
		if len(cells) == 0 {
			return
		}
		records = append(records, cells)
	})

	t := internal.NewTable(header, records)
	t.InferKinds()
	return t, nil
}

func htmlCells(row *goquery.Selection) []string {
	cells := []string{}
	row.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.Join(strings.Fields(cell.Text()), " "))
	})
	return cells
}
