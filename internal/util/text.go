package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WriteTable prints header and rows as space-aligned columns. Widths are measured
// in terminal cells so labels with wide runes stay aligned.
func WriteTable(w io.Writer, header []string, rows [][]string) error {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if cw := runewidth.StringWidth(row[i]); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	if err := writeTableLine(w, header, widths); err != nil {
		return err
	}
	rule := make([]string, len(widths))
	for i, cw := range widths {
		rule[i] = strings.Repeat("-", cw)
	}
	if err := writeTableLine(w, rule, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeTableLine(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeTableLine(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(widths)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = runewidth.FillRight(cell, widths[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

func Truncate(input string, width int) string {
	if runewidth.StringWidth(input) <= width {
		return input
	}
	return runewidth.Truncate(input, width, "...")
}
