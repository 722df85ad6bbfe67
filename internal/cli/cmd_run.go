package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/calvinalkan/emap/internal/bench"
)

// minReliableRounds is the round count below which timings are mostly noise.
const minReliableRounds = 100

var errInvalidFormat = errors.New("invalid --format (must be table or tsv)")

// RunCmd returns the run command.
func RunCmd(app *App) *Command {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.IntP("rounds", "r", app.Config.Rounds, "Rounds per contender")
	fs.IntP("capacity", "n", app.Config.Capacity, "Map capacity and key range")
	fs.StringArray("contender", nil, "Contender to run (repeatable, default all)")
	fs.StringP("out", "o", app.Config.Out, "Write a markdown report to `file`")
	fs.Bool("assert", app.Config.AssertFastest, "Fail unless emap is the fastest contender")
	fs.String("format", "table", "Output format (table|tsv)")
	fs.BoolP("verbose", "v", false, "Log progress to stderr")

	return &Command{
		Flags: fs,
		Usage: "run [flags]",
		Short: "Run the benchmark",
		Long: "Time every contender on the same insert/get/remove/find workload.\n" +
			"The baseline (emap) is always included.",
		Exec: func(ctx context.Context, io *IO, _ []string) error {
			return execRun(ctx, io, app, fs)
		},
	}
}

func execRun(ctx context.Context, io *IO, app *App, fs *flag.FlagSet) error {
	cfg := app.Config

	cfg.Rounds, _ = fs.GetInt("rounds")
	cfg.Capacity, _ = fs.GetInt("capacity")
	cfg.Out, _ = fs.GetString("out")
	cfg.AssertFastest, _ = fs.GetBool("assert")

	if fs.Changed("contender") {
		cfg.Contenders, _ = fs.GetStringArray("contender")
	}

	format, _ := fs.GetString("format")
	if format != "table" && format != "tsv" {
		return errInvalidFormat
	}

	err := cfg.Validate()
	if err != nil {
		return err
	}

	if cfg.Rounds < minReliableRounds {
		io.Warn(fmt.Sprintf("only %d rounds", cfg.Rounds), fmt.Sprintf("use --rounds >= %d for stable timings", minReliableRounds))
	}

	verbose, _ := fs.GetBool("verbose")

	logger := zap.NewNop()
	if verbose {
		logger = newLogger(app)
	}

	defer func() { _ = logger.Sync() }()

	runner, err := bench.NewRunner(cfg, logger)
	if err != nil {
		return err
	}

	report, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("run benchmark: %w", err)
	}

	switch format {
	case "tsv":
		err = report.WriteTSV(io.Out())
		if err != nil {
			return err
		}
	default:
		printReportTable(io, &report)
	}

	if cfg.Out != "" {
		path := cfg.Out
		if !filepath.IsAbs(path) {
			path = filepath.Join(app.WorkDir, path)
		}

		err = report.WriteMarkdownFile(path, bench.CollectSystemInfo())
		if err != nil {
			return err
		}

		logger.Info("report written", zap.String("path", path))
	}

	if cfg.AssertFastest {
		return report.CheckBaselineFastest()
	}

	return nil
}

func newLogger(app *App) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(app.LogOut),
		zap.DebugLevel,
	)

	return zap.New(core)
}

func printReportTable(io *IO, report *bench.Report) {
	header := io.Style().Bold(true)
	baseline := io.Style().Foreground(lipgloss.Color("#06cc00"))
	slower := io.Style().Foreground(lipgloss.Color("#adadad"))

	fastest, _ := report.Fastest()

	io.Printf("run %s: %d rounds, capacity %d\n\n", report.RunID, report.Rounds, report.Capacity)
	io.Println(header.Render(fmt.Sprintf("%-22s %14s %12s %9s", "contender", "elapsed", "per round", "vs "+report.Baseline)))

	for _, result := range report.Results {
		perRound := result.Elapsed / time.Duration(report.Rounds)
		line := fmt.Sprintf("%-22s %14s %12s %8.2fx", result.Name, result.Elapsed, perRound, report.Ratio(result.Name))

		switch {
		case result.Name == report.Baseline:
			line = baseline.Render(line)
		case result.Name != fastest.Name:
			line = slower.Render(line)
		}

		if result.Name == fastest.Name {
			line += " *"
		}

		io.Println(line)
	}
}
