package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type DB struct {
	conn *sql.DB
}

// RunRecord is one invocation of the cleaning pipeline.
type RunRecord struct {
	ID         int64
	TraceID    string
	InputPath  string
	OutputPath string
	Region     string
	RowsIn     int
	RowsOut    int
	Summary    map[string]float64
	Timings    map[string]float64
	CreatedAt  string
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL UNIQUE,
  inputPath TEXT NOT NULL,
  outputPath TEXT NOT NULL,
  region TEXT NOT NULL,
  rowsIn INTEGER NOT NULL,
  rowsOut INTEGER NOT NULL,
  summaryJson TEXT NOT NULL,
  timingsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_region ON runs(region);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertRun(ctx context.Context, run RunRecord) (int64, error) {
	summaryJSON, err := json.Marshal(orEmpty(run.Summary))
	if err != nil {
		return 0, err
	}
	timingsJSON, err := json.Marshal(orEmpty(run.Timings))
	if err != nil {
		return 0, err
	}

	res, err := d.conn.ExecContext(ctx, `
INSERT INTO runs (traceId, inputPath, outputPath, region, rowsIn, rowsOut, summaryJson, timingsJson)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.TraceID, run.InputPath, run.OutputPath, run.Region, run.RowsIn, run.RowsOut, string(summaryJSON), string(timingsJSON))
	if err != nil {
		return 0, err
	}
	if err := d.SetMetadata(ctx, "last_trace_id", run.TraceID); err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRuns returns the most recent runs first.
func (d *DB) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.QueryContext(ctx, `
SELECT id, traceId, inputPath, outputPath, region, rowsIn, rowsOut, summaryJson, timingsJson, createdAt
FROM runs
ORDER BY id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

func (d *DB) GetRun(ctx context.Context, traceID string) (*RunRecord, error) {
	row := d.conn.QueryRowContext(ctx, `
SELECT id, traceId, inputPath, outputPath, region, rowsIn, rowsOut, summaryJson, timingsJson, createdAt
FROM runs
WHERE traceId = ?`, traceID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (d *DB) SetMetadata(ctx context.Context, key, value string) error {
	_, err := d.conn.ExecContext(ctx, `
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(ctx context.Context, key string) (*string, error) {
	var value string
	err := d.conn.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (RunRecord, error) {
	var run RunRecord
	var summaryJSON, timingsJSON string
	if err := s.Scan(&run.ID, &run.TraceID, &run.InputPath, &run.OutputPath, &run.Region,
		&run.RowsIn, &run.RowsOut, &summaryJSON, &timingsJSON, &run.CreatedAt); err != nil {
		return RunRecord{}, err
	}
	if err := json.Unmarshal([]byte(summaryJSON), &run.Summary); err != nil {
		return RunRecord{}, err
	}
	if err := json.Unmarshal([]byte(timingsJSON), &run.Timings); err != nil {
		return RunRecord{}, err
	}
	return run, nil
}

func orEmpty(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
