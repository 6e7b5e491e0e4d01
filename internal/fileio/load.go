// Package fileio reads and writes tables, picking the format from the file extension.
package fileio

import (
	"fmt"
	"path/filepath"
	"strings"

	"lifeexp/internal"
)

type LoadOptions struct {
	// Delimiter only applies to .txt files. Zero means tab.
	Delimiter rune
}

type loader func(path string, opts LoadOptions) (*internal.Table, error)

var loaders = map[string]loader{
	".csv":     func(p string, _ LoadOptions) (*internal.Table, error) { return readDelimited(p, ',') },
	".tsv":     func(p string, _ LoadOptions) (*internal.Table, error) { return readDelimited(p, '\t') },
	".txt":     readPlainText,
	".xlsx":    readXLSX,
	".xls":     readXLSX,
	".json":    readJSON,
	".parquet": readParquet,
	".html":    readHTML,
	".htm":     readHTML,
}

// readMail dispatches back through loaders, so it is registered after initialization.
func init() {
	loaders[".eml"] = readMail
}

// Load reads the table stored at path.
func Load(path string, opts LoadOptions) (*internal.Table, error) {
	ext := Ext(path)
	load, ok := loaders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", internal.ErrUnsupportedFormat, path)
	}
	if opts.Delimiter != 0 && ext != ".txt" {
		return nil, fmt.Errorf("%w: delimiter is only supported for .txt files, not for %s", internal.ErrInvalidOption, ext)
	}
	return load(path, opts)
}

// Ext returns the lowercase extension of path.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Supported reports whether both Load and Save accept path.
func Supported(path string) bool {
	ext := Ext(path)
	_, canLoad := loaders[ext]
	_, canSave := savers[ext]
	return canLoad && canSave
}

func readPlainText(path string, opts LoadOptions) (*internal.Table, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = '\t'
	}
	return readDelimited(path, delim)
}
