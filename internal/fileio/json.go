package fileio

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"lifeexp/internal"
)

type jsonCell struct {
	kind gjson.Type
	raw  string
	text string
}

// readJSON accepts either a JSON array of records or one record per line.
// Keys keep the order in which they first appear.
func readJSON(path string, _ LoadOptions) (*internal.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []gjson.Result
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return &internal.Table{}, nil
	case trimmed[0] == '[':
		if !gjson.ValidBytes(trimmed) {
			return nil, fmt.Errorf("invalid JSON in %s", path)
		}
		records = gjson.ParseBytes(trimmed).Array()
	default:
		var bad int
		gjson.ForEachLine(string(trimmed), func(line gjson.Result) bool {
			if strings.TrimSpace(line.Raw) == "" {
				return true
			}
			if !gjson.Valid(line.Raw) {
				bad++
				return false
			}
			records = append(records, line)
			return true
		})
		if bad > 0 {
			return nil, fmt.Errorf("invalid JSON line in %s", path)
		}
	}

	var names []string
	cells := map[string][]jsonCell{}
	for i, rec := range records {
		if !rec.IsObject() {
			return nil, fmt.Errorf("record %d in %s is not an object", i, path)
		}
		rec.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if _, seen := cells[name]; !seen {
				names = append(names, name)
				cells[name] = make([]jsonCell, len(records))
			}
			cells[name][i] = jsonCell{kind: value.Type, raw: value.Raw, text: jsonText(value)}
			return true
		})
	}

	t := &internal.Table{Columns: make([]*internal.Column, 0, len(names))}
	for _, name := range names {
		t.Columns = append(t.Columns, jsonColumn(name, cells[name]))
	}
	return t, nil
}

func jsonText(v gjson.Result) string {
	if v.Type == gjson.Null {
		return ""
	}
	return v.String()
}

// jsonColumn types a column as int or float when every cell is a JSON number.
func jsonColumn(name string, cells []jsonCell) *internal.Column {
	numeric, integral := len(cells) > 0, true
	for _, c := range cells {
		if c.kind != gjson.Number {
			numeric = false
			break
		}
		if strings.ContainsAny(c.raw, ".eE") {
			integral = false
		}
	}

	if !numeric {
		text := make([]string, len(cells))
		for i, c := range cells {
			text[i] = c.text
		}
		return internal.TextColumn(name, text)
	}

	if integral {
		ints := make([]int64, len(cells))
		ok := true
		for i, c := range cells {
			v, err := strconv.ParseInt(c.raw, 10, 64)
			if err != nil {
				ok = false
				break
			}
			ints[i] = v
		}
		if ok {
			return internal.IntColumn(name, ints)
		}
	}

	floats := make([]float64, len(cells))
	for i, c := range cells {
		floats[i], _ = strconv.ParseFloat(c.raw, 64)
	}
	return internal.FloatColumn(name, floats)
}

// writeJSONLines writes one object per row with keys in column order.
func writeJSONLines(t *internal.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	keys := make([][]byte, t.NumCols())
	for i, name := range t.ColumnNames() {
		if keys[i], err = json.Marshal(name); err != nil {
			return err
		}
	}

	for r := 0; r < t.NumRows(); r++ {
		w.WriteByte('{')
		for i, c := range t.Columns {
			if i > 0 {
				w.WriteByte(',')
			}
			value, err := jsonValue(c, r)
			if err != nil {
				return fmt.Errorf("encode column %q row %d: %w", c.Name, r, err)
			}
			w.Write(keys[i])
			w.WriteByte(':')
			w.Write(value)
		}
		w.WriteString("}\n")
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

// jsonValue keeps the decimal point on floats so they read back as floats.
func jsonValue(c *internal.Column, r int) ([]byte, error) {
	if c.Kind != internal.KindFloat {
		return json.Marshal(c.Value(r))
	}
	v := c.Floats[r]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%v is not representable in JSON", v)
	}
	return []byte(internal.FormatFloat(v)), nil
}
