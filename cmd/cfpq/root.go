// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cfpq/internal/ctxlog"
	"github.com/katalvlaran/cfpq/loader"
	"github.com/katalvlaran/cfpq/reach"
)

// flags shared by every subcommand.
type flags struct {
	file          string
	workers       int
	maxIterations int
	shuffleSeed   int64
	asJSON        bool
	logLevel      string
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "cfpq",
		Short:        "Context-free path queries over labeled graphs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(f.logLevel)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.file, "file", "f", "", "query document (YAML)")
	pf.IntVar(&f.workers, "workers", 1, "goroutines per boolean matrix product")
	pf.IntVar(&f.maxIterations, "max-iterations", 0, "tensor iteration bound (0 = default)")
	pf.Int64Var(&f.shuffleSeed, "shuffle-seed", 0, "randomize the GLL descriptor queue with this seed (0 = off)")
	pf.BoolVar(&f.asJSON, "json", false, "print results as JSON")
	pf.StringVar(&f.logLevel, "log-level", "warn", "debug, info, warn or error")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(newRunCmd(f), newCompareCmd(f))

	return root
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("--log-level %q: %w", s, err)
	}

	return l, nil
}

// solverOptions turns flags into reach options carrying the context logger.
func (f *flags) solverOptions(ctx context.Context) []reach.Option {
	opts := []reach.Option{
		reach.WithWorkers(f.workers),
		reach.WithMaxIterations(f.maxIterations),
		reach.WithLogger(ctxlog.FromContext(ctx)),
	}
	if f.shuffleSeed != 0 {
		opts = append(opts, reach.WithShuffle(rand.New(rand.NewSource(f.shuffleSeed))))
	}

	return opts
}

func (f *flags) load(ctx context.Context) (*loader.Document, error) {
	doc, err := loader.Load(f.file)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Info("loaded document",
		"file", f.file,
		"edges", len(doc.Graph.Edges),
		"grammar", doc.HasRSM(),
		"cfg", doc.HasCFG())

	return doc, nil
}
