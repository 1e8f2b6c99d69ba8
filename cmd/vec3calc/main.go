package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/zeusync/vecmath/internal/config"
	"github.com/zeusync/vecmath/internal/core/observability/log"
	"github.com/zeusync/vecmath/internal/eval"
	"github.com/zeusync/vecmath/internal/injector"
	"github.com/zeusync/vecmath/pkg/concurrent"
)

const usage = `usage: vec3calc [flags] scenario.yaml...

Evaluates vector scenarios and reports the ones whose expectation fails.

`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vec3calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	levelName := fs.String("level", "", "log level (debug, info, warn, error); defaults to the first file's log_level")
	list := fs.Bool("list", false, "print the supported operations and exit")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, name := range eval.Ops() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return 2
	}

	files, err := concurrent.ParallelMap(ctx, paths, 0, func(_ context.Context, path string) (*config.File, error) {
		return config.LoadFile(path)
	})
	if err != nil {
		fmt.Fprintln(stderr, "Error loading scenarios:", err)
		return 1
	}

	if *levelName == "" {
		*levelName = files[0].LogLevel
	}
	level, err := log.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	app := injector.InitializeApp(level)
	defer func() { _ = app.Logger.Sync() }()

	logger := app.Logger.With(log.String("run_id", uuid.NewString()))

	var scenarios []config.Scenario
	for _, f := range files {
		logger.Debug("scenarios loaded", log.String("path", f.Path), log.Int("count", len(f.Scenarios)))
		scenarios = append(scenarios, f.Scenarios...)
	}

	results, summary, err := app.Evaluator.EvaluateAll(ctx, scenarios)
	if err != nil {
		logger.Error("evaluation interrupted", log.Error(err))
		return 1
	}

	for _, r := range results {
		if r.Passed() {
			continue
		}
		fmt.Fprintf(stdout, "FAIL %s\n", r.Err)
	}
	fmt.Fprintf(stdout, "%d scenarios, %d checked, %d failed\n", summary.Total, summary.Checked, summary.Failed)

	logger.Info("run finished",
		log.Int("total", summary.Total),
		log.Int("checked", summary.Checked),
		log.Int("failed", summary.Failed),
		log.Duration("elapsed", summary.Elapsed),
	)

	if summary.Failed > 0 {
		return 1
	}
	return 0
}
