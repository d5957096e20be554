// Package pipeline orchestrates the conversion workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/sidgoconv/internal/converter"
	"github.com/retroenv/sidgoconv/internal/loader"
	"github.com/retroenv/sidgoconv/internal/options"
	"github.com/retroenv/sidgoconv/internal/writer"
)

// Pipeline orchestrates the complete conversion workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new conversion pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete conversion pipeline: load the input
// program, convert it and write the result.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, convOpts options.Converter) error {
	lines, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.printInfo(opts, convOpts, len(lines))

	outputLines := converter.New(p.logger, convOpts).Convert(lines)

	outputFile, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	if err := writer.New(outputFile).Write(outputLines); err != nil {
		_ = outputFile.Close()
		return fmt.Errorf("writing program: %w", err)
	}
	if err := outputFile.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// printInfo prints information about the program being converted.
func (p *Pipeline) printInfo(opts options.Program, convOpts options.Converter, lineCount int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Converting C64 BASIC program",
		log.String("input", opts.Input),
		log.String("output", opts.Output),
		log.Int("lines", lineCount),
		log.Int("reg", convOpts.RegPort),
		log.Int("dat", convOpts.DatPort),
	)
}
