// Package wordsort reads a text, extracts its words and writes them sorted and
// without duplicates, timing every step on the way.
//
// The words are collected in a persistent red-black tree, either by inserting them
// one by one or by building two trees concurrently and merging them.
package wordsort

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/npillmayer/fpsort/internal/config"
	"github.com/npillmayer/fpsort/internal/sink"
	"github.com/npillmayer/fpsort/internal/source"
	"github.com/npillmayer/fpsort/internal/timing"
	"github.com/npillmayer/fpsort/internal/tokenizer"
	"github.com/npillmayer/fpsort/persistent/rbtree"
)

// Report summarizes a run.
type Report struct {
	Mode   string
	Tokens int
	Unique int
}

// Processor wires the tree to its collaborators.
type Processor struct {
	Reader  source.Reader
	Writer  sink.Writer
	Metrics *timing.Metrics // may be nil
	Logger  *slog.Logger
	Verify  bool // check tree invariants after construction
}

// Run processes input once for every mode, writing to output each time.
// It stops at the first failing run.
func (p *Processor) Run(ctx context.Context, input, output string, modes ...string) ([]Report, error) {
	reports := make([]Report, 0, len(modes))
	for _, mode := range modes {
		report, err := p.Process(ctx, input, output, mode)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Process reads input, tokenizes it, builds a tree of words, and writes the sorted
// words to output. Mode is either config.ModeSequential or config.ModeParallel.
//
// Any failure aborts the run; nothing is written from a partially built tree.
func (p *Processor) Process(ctx context.Context, input, output, mode string) (Report, error) {
	if mode != config.ModeSequential && mode != config.ModeParallel {
		return Report{}, fmt.Errorf("%w: unknown mode %q", config.ErrInvalidConfig, mode)
	}
	logger := p.logger().With("mode", mode)
	timer := timing.NewTimer(mode, p.Metrics, logger)
	parallel := mode == config.ModeParallel
	logger.Info("processing file", "input", input)
	defer timer.Start("Total Processing")()

	var text string
	err := timer.Measure("Reading File", func() (err error) {
		text, err = p.Reader.Read(ctx, input)
		return
	})
	if err != nil {
		return Report{}, fmt.Errorf("reading %s: %w", input, err)
	}

	var tokens []string
	err = timer.Measure("Tokenization", func() (err error) {
		if parallel {
			tokens, err = tokenizer.ParallelTokenize(text)
		} else {
			tokens = tokenizer.Tokenize(text)
		}
		return
	})
	if err != nil {
		return Report{}, fmt.Errorf("tokenizing %s: %w", input, err)
	}

	var tree rbtree.Tree[string]
	err = timer.Measure("Tree Construction", func() (err error) {
		if parallel {
			tree, err = rbtree.ParallelInsert(tokens)
		} else {
			tree = rbtree.Build(tokens)
		}
		return
	})
	if err != nil {
		return Report{}, fmt.Errorf("building tree: %w", err)
	}
	if p.Verify {
		if err := tree.Verify(); err != nil {
			return Report{}, err
		}
	}

	stop := timer.Start("Sorting")
	sorted := tree.Values()
	stop()

	err = timer.Measure("Writing File", func() error {
		return p.Writer.Write(ctx, output, sorted)
	})
	if err != nil {
		return Report{}, fmt.Errorf("writing %s: %w", output, err)
	}

	timer.Count(len(tokens), len(sorted))
	report := Report{Mode: mode, Tokens: len(tokens), Unique: len(sorted)}
	logger.Info("done", "tokens", report.Tokens, "unique", report.Unique, "output", output)
	return report, nil
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default().With("component", "wordsort")
	}
	return p.Logger
}
