package fileio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"lifeexp/internal"
)

func readDelimited(path string, delim rune) (*internal.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delim
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return &internal.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	t := internal.NewTable(header, rows)
	t.InferKinds()
	return t, nil
}

func writeCSV(t *internal.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.ColumnNames()); err != nil {
		return err
	}
	if err := w.WriteAll(t.Records()); err != nil {
		return err
	}
	return f.Close()
}
