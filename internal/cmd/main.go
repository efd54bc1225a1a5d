// Command line interface of cartesian.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/dalibo/cartesian/internal"
	"github.com/dalibo/cartesian/internal/grid"
	"github.com/dalibo/cartesian/internal/perf"
	"github.com/mattn/go-isatty"
)

func Main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	defer logPanic()

	// Bootstrap logging first to log in setup.
	internal.SetLoggingHandler(slog.LevelInfo, isatty.IsTerminal(os.Stderr.Fd()))
	loadDotEnv()
	err := run(ctx, os.Args[1:], os.Stdout)
	if err == nil {
		return
	}
	var code errorCode
	if errors.As(err, &code) {
		slog.Error("Bad usage.", "err", err)
		cancel()
		code.Exit()
	}
	slog.Error("Fatal error.", "err", err)
	if internal.CurrentLevel > slog.LevelDebug {
		slog.Error("Run cartesian with --verbose to get more informations.")
	}
	cancel()
	os.Exit(1)
}

func run(ctx context.Context, args []string, w io.Writer) (err error) {
	start := time.Now()

	flags := newFlagSet("cartesian")
	controller, err := loadController(flags, args)
	if err != nil {
		return
	}
	if controller.Help {
		flags.Usage()
		return
	} else if controller.Version {
		showVersion(w)
		return
	}

	internal.SetLoggingHandler(controller.LogLevel, controller.Color)
	slog.Debug("Starting cartesian",
		"version", version(),
		"runtime", runtime.Version(),
		"commit", commit,
		"pid", os.Getpid(),
	)

	path := grid.FindFile(controller.Config)
	if path == "" {
		return fmt.Errorf("no grid file found, use --config")
	}
	slog.Debug("Using YAML grid file.", "path", path)
	g, err := grid.Load(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if controller.Format != "" {
		err = g.SetFormat(controller.Format)
		if err != nil {
			return
		}
	}

	var watch perf.StopWatch
	var count int
	watch.TimeIt(func() {
		switch {
		case controller.Count:
			count, err = countLines(ctx, g)
			if err == nil {
				_, err = fmt.Fprintln(w, count)
			}
		case controller.Output == "yaml":
			count, err = writeYaml(ctx, w, g, controller.Limit)
		default:
			count, err = writeText(ctx, w, g, controller.Limit)
		}
	})
	if err != nil {
		return
	}

	vmPeak := perf.PeakMemory()
	elapsed := time.Since(start)
	slog.Info("Grid expanded.",
		"elapsed", elapsed,
		"mempeak", perf.FormatBytes(vmPeak),
		"combinations", g.Len(),
		"lines", count,
		"rate", watch.Rate(),
	)
	return
}

func logPanic() {
	r := recover()
	if r == nil {
		return
	}
	slog.Error("Panic!", "err", r)
	buf := debug.Stack()
	fmt.Fprintf(os.Stderr, "%s", buf)
	os.Exit(1)
}

