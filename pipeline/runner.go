// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/simgraph/collection"
	"github.com/katalvlaran/simgraph/components"
	"github.com/katalvlaran/simgraph/distance"
	"github.com/katalvlaran/simgraph/generator"
	"github.com/katalvlaran/simgraph/report"
	"github.com/katalvlaran/simgraph/similarity"
	"github.com/katalvlaran/simgraph/stopwatch"
)

// ErrNoOutput indicates Generate was asked to write without an output path.
var ErrNoOutput = errors.New("pipeline: no output file configured")

// Runner executes workflows. Log receives one entry per stage; Out receives
// the console report.
type Runner struct {
	Log logrus.FieldLogger
	Out io.Writer
}

// GroupResult is everything Group computed.
type GroupResult struct {
	Collection *collection.Collection
	Adjacency  *similarity.Adjacency
	Partition  *components.Partition
	Summary    report.Summary
	Laps       []stopwatch.Lap
}

// SimilarResult is everything Similar computed.
type SimilarResult struct {
	Target     int
	Match      distance.Match
	Comparison report.Comparison
	Laps       []stopwatch.Lap
}

// Generate synthesizes a collection from cfg.Generate and saves it to cfg.Output.
func (r *Runner) Generate(ctx context.Context, cfg Config) (*collection.Collection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	if cfg.Output == "" {
		return nil, fmt.Errorf("Generate: %w", ErrNoOutput)
	}
	sw := stopwatch.New()

	sw.Start("generate")
	c, err := r.generate(cfg)
	if err != nil {
		return nil, err
	}
	r.lap(sw, "save")
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := collection.Save(cfg.Output, c); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	r.stop(sw)

	r.Log.WithFields(logrus.Fields{
		"action": "generate",
		"file":   cfg.Output,
		"count":  c.Len(),
		"dim":    c.Dim(),
	}).Info("collection saved")

	return c, nil
}

// Group builds the similarity relation, partitions it and prints the summary
// and the non-trivial components.
func (r *Runner) Group(ctx context.Context, cfg Config) (*GroupResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Group: %w", err)
	}
	method, _ := components.ParseMethod(cfg.Components.Method)
	sw := stopwatch.New()

	sw.Start("load")
	c, err := r.load(cfg)
	if err != nil {
		return nil, err
	}

	r.lap(sw, "similarity")
	var buildOpts []similarity.Option
	if cfg.Similarity.Workers > 0 {
		buildOpts = append(buildOpts, similarity.WithWorkers(cfg.Similarity.Workers))
	}
	adj, err := similarity.Build(ctx, c, cfg.Criteria(), buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("Group: %w", err)
	}
	r.Log.WithFields(logrus.Fields{
		"action": "similarity",
		"edges":  adj.EdgeCount(),
	}).Debug("relation built")

	r.lap(sw, "components")
	part, err := components.Find(adj, components.WithMethod(method))
	if err != nil {
		return nil, fmt.Errorf("Group: %w", err)
	}

	r.lap(sw, "report")
	sum := report.Summarize(part, adj.EdgeCount())
	if err := report.WriteComponents(r.Out, part); err != nil {
		return nil, fmt.Errorf("Group: %w", err)
	}
	if err := report.WriteSummary(r.Out, sum); err != nil {
		return nil, fmt.Errorf("Group: %w", err)
	}
	r.stop(sw)

	entry := r.Log.WithFields(logrus.Fields{
		"action":     "group",
		"vertices":   sum.Total,
		"edges":      sum.Edges,
		"components": sum.Components,
		"grouped":    sum.Grouped,
		"took":       sw.Total().String(),
	})
	if sum.FewGrouped() {
		entry.Warn("very few grouped vertices")
	} else {
		entry.Info("grouping finished")
	}

	return &GroupResult{
		Collection: c,
		Adjacency:  adj,
		Partition:  part,
		Summary:    sum,
		Laps:       sw.Laps(),
	}, nil
}

// Similar finds the vector closest to cfg.Target and prints the comparison table.
func (r *Runner) Similar(ctx context.Context, cfg Config) (*SimilarResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Similar: %w", err)
	}
	dopts, _ := cfg.DistanceOptions()
	sw := stopwatch.New()

	sw.Start("load")
	c, err := r.load(cfg)
	if err != nil {
		return nil, err
	}

	r.lap(sw, "search")
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, err := distance.MostSimilar(c, cfg.Target, dopts)
	if err != nil {
		return nil, fmt.Errorf("Similar: %w", err)
	}

	r.lap(sw, "report")
	cmp, err := report.Compare(c.RawRow(cfg.Target), c.RawRow(m.Index), cfg.Similarity.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("Similar: %w", err)
	}
	if err := report.WriteComparison(r.Out, cfg.Target, m.Index, m.Distance, cmp); err != nil {
		return nil, fmt.Errorf("Similar: %w", err)
	}
	r.stop(sw)

	r.Log.WithFields(logrus.Fields{
		"action":   "similar",
		"target":   cfg.Target,
		"match":    m.Index,
		"distance": m.Distance,
		"mode":     dopts.Mode.String(),
	}).Info("most similar vector found")

	return &SimilarResult{Target: cfg.Target, Match: m, Comparison: cmp, Laps: sw.Laps()}, nil
}

// load reads cfg.Input or, when empty, generates in memory.
func (r *Runner) load(cfg Config) (*collection.Collection, error) {
	if cfg.Input == "" {
		return r.generate(cfg)
	}
	c, err := collection.Load(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.Input, err)
	}
	r.Log.WithFields(logrus.Fields{
		"action": "load",
		"file":   cfg.Input,
		"count":  c.Len(),
		"dim":    c.Dim(),
	}).Debug("collection loaded")

	return c, nil
}

func (r *Runner) generate(cfg Config) (*collection.Collection, error) {
	c, err := generator.Generate(cfg.Generate.Count, cfg.Generate.Dim, cfg.generatorOptions()...)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return c, nil
}

// lap closes the current stage, opens next and logs the closed one.
func (r *Runner) lap(sw *stopwatch.Stopwatch, next string) {
	if l, err := sw.Lap(next); err == nil {
		r.logLap(l)
	}
}

func (r *Runner) stop(sw *stopwatch.Stopwatch) {
	if l, err := sw.Stop(); err == nil {
		r.logLap(l)
	}
}

func (r *Runner) logLap(l stopwatch.Lap) {
	r.Log.WithFields(logrus.Fields{
		"action": "timer",
		"stage":  l.Label,
		"took":   l.Duration.String(),
	}).Debug("stage finished")
}
