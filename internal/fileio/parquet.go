package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/parquet-go/parquet-go"
	"github.com/tidwall/gjson"

	"lifeexp/internal"
)

// Parquet groups order their fields by name; the table's column order is kept
// in the file's key/value metadata under this key.
const columnOrderKey = "lifeexp.columns"

func readParquet(path string, _ LoadOptions) (*internal.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, st.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}

	fields := pf.Schema().Fields()
	cols := make([]*internal.Column, len(fields))
	for i, field := range fields {
		if !field.Leaf() {
			return nil, fmt.Errorf("parquet %s: nested column %q is not supported", path, field.Name())
		}
		cols[i] = &internal.Column{Name: field.Name(), Kind: parquetKind(field.Type().Kind())}
	}

	buf := make([]parquet.Row, 128)
	for _, rg := range pf.RowGroups() {
		rows := rg.Rows()
		for {
			n, err := rows.ReadRows(buf)
			for _, row := range buf[:n] {
				for _, v := range row {
					appendParquetValue(cols[v.Column()], v)
				}
			}
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("read parquet %s: %w", path, err)
			}
		}
		rows.Close()
	}

	return &internal.Table{Columns: orderColumns(cols, pf)}, nil
}

func parquetKind(k parquet.Kind) internal.ColumnKind {
	switch k {
	case parquet.Int32, parquet.Int64:
		return internal.KindInt
	case parquet.Float, parquet.Double:
		return internal.KindFloat
	default:
		return internal.KindText
	}
}

func appendParquetValue(c *internal.Column, v parquet.Value) {
	switch c.Kind {
	case internal.KindInt:
		if v.Kind() == parquet.Int32 {
			c.Ints = append(c.Ints, int64(v.Int32()))
		} else {
			c.Ints = append(c.Ints, v.Int64())
		}
	case internal.KindFloat:
		if v.Kind() == parquet.Float {
			c.Floats = append(c.Floats, float64(v.Float()))
		} else {
			c.Floats = append(c.Floats, v.Double())
		}
	default:
		switch {
		case v.IsNull():
			c.Text = append(c.Text, "")
		case v.Kind() == parquet.ByteArray || v.Kind() == parquet.FixedLenByteArray:
			c.Text = append(c.Text, string(v.ByteArray()))
		default:
			c.Text = append(c.Text, v.String())
		}
	}
}

func orderColumns(cols []*internal.Column, pf *parquet.File) []*internal.Column {
	raw, ok := pf.Lookup(columnOrderKey)
	if !ok {
		return cols
	}
	byName := make(map[string]*internal.Column, len(cols))
	for _, c := range cols {
		byName[c.Name] = c
	}
	ordered := make([]*internal.Column, 0, len(cols))
	for _, name := range gjson.Parse(raw).Array() {
		c, ok := byName[name.String()]
		if !ok {
			return cols
		}
		ordered = append(ordered, c)
	}
	if len(ordered) != len(cols) {
		return cols
	}
	return ordered
}

func writeParquet(t *internal.Table, path string) error {
	group := parquet.Group{}
	for _, c := range t.Columns {
		if _, dup := group[c.Name]; dup {
			return fmt.Errorf("%w: duplicate column %q", internal.ErrSchemaMismatch, c.Name)
		}
		switch c.Kind {
		case internal.KindInt:
			group[c.Name] = parquet.Int(64)
		case internal.KindFloat:
			group[c.Name] = parquet.Leaf(parquet.DoubleType)
		default:
			group[c.Name] = parquet.String()
		}
	}
	schema := parquet.NewSchema("table", group)

	order, err := json.Marshal(t.ColumnNames())
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := parquet.NewWriter(f, schema, parquet.KeyValueMetadata(columnOrderKey, string(order)))
	fields := schema.Fields()
	rows := make([]parquet.Row, t.NumRows())
	for r := range rows {
		row := make(parquet.Row, len(fields))
		for i, field := range fields {
			c, err := t.Column(field.Name())
			if err != nil {
				return err
			}
			row[i] = parquet.ValueOf(c.Value(r)).Level(0, 0, i)
		}
		rows[r] = row
	}
	if _, err := w.WriteRows(rows); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return f.Close()
}
