package fileio

import (
	"fmt"
	"os"
	"path/filepath"

	"lifeexp/internal"
)

type saver func(t *internal.Table, path string) error

var savers = map[string]saver{
	".csv":     writeCSV,
	".xlsx":    writeXLSX,
	".json":    writeJSONLines,
	".parquet": writeParquet,
}

// Save writes t to path without a row index. The parent directory is created.
func Save(t *internal.Table, path string) error {
	save, ok := savers[Ext(path)]
	if !ok {
		return fmt.Errorf("%w: %s", internal.ErrUnsupportedFormat, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return save(t, path)
}
