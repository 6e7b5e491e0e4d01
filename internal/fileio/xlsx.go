package fileio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"lifeexp/internal"
)

// readXLSX loads the first sheet; its first row is the header.
func readXLSX(path string, _ LoadOptions) (*internal.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &internal.Table{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheets[0], path, err)
	}
	if len(rows) == 0 {
		return &internal.Table{}, nil
	}

	t := internal.NewTable(rows[0], rows[1:])
	t.InferKinds()
	return t, nil
}

func writeXLSX(t *internal.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range t.ColumnNames() {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r := 0; r < t.NumRows(); r++ {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		row := t.Row(r)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
