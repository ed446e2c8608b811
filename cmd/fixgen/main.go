// SPDX-License-Identifier: EPL-2.0

// Command fixgen writes batches of random test fixtures to a directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/ik5/fixgen"
	"github.com/ik5/fixgen/config"
	"github.com/ik5/fixgen/fixture"
	"github.com/ik5/fixgen/internal/logging"
	"github.com/ik5/fixgen/target"
)

func main() {
	cfg, err := config.ParseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	dir, err := target.New(cfg.Dir)
	if err != nil {
		return err
	}

	cfg.Summary(os.Stdout)
	fmt.Println()

	opts := []fixture.Option{
		fixture.WithLogger(logger),
		fixture.WithWorkers(cfg.Workers),
		fixture.WithSizePolicy(cfg.SizePolicy),
		fixture.WithFailFast(cfg.FailFast),
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(cfg.Count), "generating")
		opts = append(opts, fixture.WithNotify(func(n fixture.Notice) {
			if n.Kind == fixture.Completed {
				_ = bar.Add(1)
			}
		}))
	} else {
		opts = append(opts, fixture.WithNotify(func(n fixture.Notice) { fmt.Println(n) }))
	}
	if cfg.SeedSet {
		opts = append(opts, fixture.WithSeed(cfg.Seed))
	}

	gen := fixture.NewGenerator(fixgen.NewRegistry(), opts...)

	report, err := gen.Generate(ctx, dir, cfg.Request())
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("generation failed after %d file(s): %w", len(report.Files), err)
	}

	for _, f := range report.Failures {
		fmt.Printf("skipped: %v\n", &f)
	}

	fmt.Printf("\n✨ %d file(s), %s written to %s\n",
		len(report.Files), humanize.IBytes(uint64(report.TotalBytes())), dir)

	if !cfg.Verify {
		return nil
	}

	var bad int
	for _, v := range fixgen.Verify(report.Files) {
		if !v.OK() {
			bad++
			fmt.Printf("invalid: %s: %v\n", v.Path, v.Err)
			continue
		}
		logger.Debug("fixture verified", zap.String("path", v.Path), zap.String("detail", v.Detail))
	}
	if bad > 0 {
		return fmt.Errorf("%d fixture(s) failed verification", bad)
	}
	fmt.Println("✅ all structured fixtures verified")

	return nil
}
