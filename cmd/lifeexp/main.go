package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"lifeexp/internal"
	"lifeexp/internal/config"
	"lifeexp/internal/fileio"
	"lifeexp/internal/logger"
	"lifeexp/internal/pipeline"
	"lifeexp/internal/region"
	"lifeexp/internal/storage"
	"lifeexp/internal/util"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type cleanOptions struct {
	configPath string
	country    string
	all        bool
	delimiter  string
	preview    int
}

func newRootCmd() *cobra.Command {
	opts := &cleanOptions{}

	root := &cobra.Command{
		Use:   "lifeexp INPUT OUTPUT",
		Short: "Clean Eurostat life expectancy data",
		Long: `lifeexp reshapes the Eurostat life expectancy table from wide to long format,
cleans the year and value columns and keeps the rows of one region.
The input and output formats follow the file extensions.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, opts, args[0], args[1])
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	root.Flags().StringVar(&opts.country, "country", "", "region code to keep (default from config)")
	root.Flags().BoolVar(&opts.all, "all", false, "keep every region")
	root.Flags().StringVar(&opts.delimiter, "delimiter", "", "field delimiter for .txt input")
	root.Flags().IntVar(&opts.preview, "preview", -1, "rows to print after cleaning (default from config)")
	root.MarkFlagsMutuallyExclusive("country", "all")

	root.AddCommand(newRegionsCmd(), newHistoryCmd(opts))
	return root
}

func runClean(cmd *cobra.Command, opts *cleanOptions, input, output string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

	if !fileio.Supported(output) {
		return fmt.Errorf("%w: cannot write %s", internal.ErrUnsupportedFormat, output)
	}

	target := region.All
	if !opts.all {
		code := opts.country
		if code == "" {
			code = cfg.DefaultCountry
		}
		if target, err = region.Parse(code); err != nil {
			return err
		}
	}

	var delim rune
	if opts.delimiter != "" {
		if utf8.RuneCountInString(opts.delimiter) != 1 {
			return fmt.Errorf("%w: delimiter must be a single character, got %q", internal.ErrInvalidOption, opts.delimiter)
		}
		delim, _ = utf8.DecodeRuneInString(opts.delimiter)
	}

	var history *storage.DB
	if cfg.HistoryPath != "" {
		history, err = storage.Open(cfg.HistoryPath)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer history.Close()
	}

	svc := pipeline.NewService(cfg, history, log)
	res, err := svc.Run(cmd.Context(), pipeline.RunRequest{
		InputPath:  input,
		OutputPath: output,
		Region:     target,
		Delimiter:  delim,
	})
	if err != nil {
		return err
	}

	preview := opts.preview
	if preview < 0 {
		preview = cfg.PreviewRows
	}
	out := cmd.OutOrStdout()
	if preview > 0 {
		if err := printPreview(out, res.Table, preview); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "wrote %d rows to %s\n", res.RowsOut, output)
	return nil
}

func printPreview(w io.Writer, t *internal.Table, n int) error {
	records := t.Records()
	if len(records) > n {
		records = records[:n]
	}
	if err := util.WriteTable(w, t.ColumnNames(), records); err != nil {
		return err
	}
	if rest := t.NumRows() - len(records); rest > 0 {
		fmt.Fprintf(w, "... %d more rows\n", rest)
	}
	return nil
}

func newRegionsCmd() *cobra.Command {
	var countriesOnly bool
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the known region codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			codes := region.Values()
			if countriesOnly {
				codes = region.Countries()
			}
			rows := make([][]string, 0, len(codes))
			for _, r := range codes {
				kind := "country"
				if r.IsAggregate() {
					kind = "aggregate"
				}
				rows = append(rows, []string{r.String(), util.Truncate(r.Name(), 40), kind})
			}
			return util.WriteTable(cmd.OutOrStdout(), []string{"code", "name", "kind"}, rows)
		},
	}
	cmd.Flags().BoolVar(&countriesOnly, "countries", false, "leave out unions and other aggregates")
	return cmd
}

func newHistoryCmd(opts *cleanOptions) *cobra.Command {
	var (
		limit   int
		traceID string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded cleaning runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cfg.HistoryPath == "" {
				return fmt.Errorf("%w: history_path is not configured", internal.ErrInvalidOption)
			}
			db, err := storage.Open(cfg.HistoryPath)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer db.Close()

			var runs []storage.RunRecord
			if traceID != "" {
				run, err := db.GetRun(cmd.Context(), traceID)
				if err != nil {
					return err
				}
				if run == nil {
					return fmt.Errorf("no run with trace id %q", traceID)
				}
				runs = append(runs, *run)
			} else if runs, err = db.ListRuns(cmd.Context(), limit); err != nil {
				return err
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				label := run.Region
				if label == "" {
					label = "all"
				}
				rows = append(rows, []string{
					run.CreatedAt,
					shortID(run.TraceID),
					label,
					util.Truncate(run.InputPath, 32),
					strconv.Itoa(run.RowsIn),
					strconv.Itoa(run.RowsOut),
					strconv.FormatFloat(run.Summary["mean"], 'f', 2, 64),
				})
			}
			return util.WriteTable(cmd.OutOrStdout(),
				[]string{"created", "trace", "region", "input", "rows_in", "rows_out", "mean"}, rows)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show")
	cmd.Flags().StringVar(&traceID, "trace", "", "show a single run by trace id")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
