// Package main implements a C64 BASIC to RC2014 MS BASIC converter that
// rewrites SID sound chip POKEs into OUT port instruction pairs
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/sidgoconv/internal/cli"
	"github.com/retroenv/sidgoconv/internal/config"
	"github.com/retroenv/sidgoconv/internal/options"
	"github.com/retroenv/sidgoconv/internal/pipeline"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, convOpts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(logger, opts)

	if err := pipeline.New(logger).Execute(ctx, opts, convOpts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal("Conversion failed", log.Err(err))
	}
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("sidgoconv", log.String("version", buildinfo.Version(version, commit, date)))
}
