package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lifeexp/internal"
	"lifeexp/internal/config"
	"lifeexp/internal/fileio"
	"lifeexp/internal/region"
	"lifeexp/internal/storage"
)

type RunRequest struct {
	InputPath  string
	OutputPath string
	Region     region.Region
	// Delimiter overrides the configured .txt delimiter. Zero keeps the default.
	Delimiter rune
}

type RunResult struct {
	TraceID string
	RowsIn  int
	RowsOut int
	Summary Summary
	Timings map[string]float64
	Table   *internal.Table
}

type Service struct {
	cfg     config.Config
	history *storage.DB
	log     *slog.Logger
}

// NewService wires the run service. history may be nil to skip recording runs.
func NewService(cfg config.Config, history *storage.DB, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{cfg: cfg, history: history, log: log}
}

// Run loads the raw file, cleans it and saves the result.
func (s *Service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	start := time.Now()
	res := RunResult{TraceID: uuid.NewString(), Timings: map[string]float64{}}
	log := s.log.With("trace_id", res.TraceID)

	opts := fileio.LoadOptions{Delimiter: req.Delimiter}
	if opts.Delimiter == 0 && fileio.Ext(req.InputPath) == ".txt" {
		opts.Delimiter = s.cfg.Delimiter()
	}

	stage := time.Now()
	raw, err := fileio.Load(req.InputPath, opts)
	if err != nil {
		return RunResult{}, err
	}
	res.RowsIn = raw.NumRows()
	res.Timings["loadMs"] = millisSince(stage)
	log.Debug("loaded input", "path", req.InputPath, "rows", raw.NumRows(), "columns", raw.NumCols())

	stage = time.Now()
	cleaned, err := CleanData(raw, req.Region)
	if err != nil {
		return RunResult{}, err
	}
	res.RowsOut = cleaned.NumRows()
	res.Timings["cleanMs"] = millisSince(stage)
	log.Debug("cleaned table", "region", regionLabel(req.Region), "rows", cleaned.NumRows())

	stage = time.Now()
	if err := fileio.Save(cleaned, req.OutputPath); err != nil {
		return RunResult{}, err
	}
	res.Timings["saveMs"] = millisSince(stage)

	if res.Summary, err = Summarize(cleaned, ValueColumn); err != nil {
		return RunResult{}, err
	}
	res.Timings["totalMs"] = millisSince(start)
	res.Table = cleaned

	if s.history != nil {
		if _, err := s.history.InsertRun(ctx, storage.RunRecord{
			TraceID:    res.TraceID,
			InputPath:  req.InputPath,
			OutputPath: req.OutputPath,
			Region:     req.Region.String(),
			RowsIn:     res.RowsIn,
			RowsOut:    res.RowsOut,
			Summary:    res.Summary.Map(),
			Timings:    res.Timings,
		}); err != nil {
			log.Warn("record run history", "error", err)
		}
	}

	log.Info("run complete",
		"input", req.InputPath,
		"output", req.OutputPath,
		"region", regionLabel(req.Region),
		"rows_in", res.RowsIn,
		"rows_out", res.RowsOut,
		"mean_value", res.Summary.Mean)
	return res, nil
}

func regionLabel(r region.Region) string {
	if r == region.All {
		return "all"
	}
	return r.String()
}

func millisSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
