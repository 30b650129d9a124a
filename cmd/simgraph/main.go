// SPDX-License-Identifier: MIT

// Command simgraph generates feature vectors, groups similar ones into
// connected components and finds the nearest vector to a target.
//
//	simgraph --output matrices.csv generate
//	simgraph --input matrices.csv --tolerance 0.2 --min-fraction 0.7 group
//	simgraph --input matrices.csv --target 875 --mode part similar
//
// Settings come from flags, SIMGRAPH_* environment variables and an optional
// simgraph.yaml, in that order of precedence.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/simgraph/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, command, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "simgraph: %v\n", err)
		return 2
	}

	logger := pipeline.NewLogger(cfg.Log, stderr)
	r := &pipeline.Runner{Log: logger, Out: stdout}

	switch command {
	case "generate":
		_, err = r.Generate(ctx, cfg)
	case "group":
		_, err = r.Group(ctx, cfg)
	case "similar":
		_, err = r.Similar(ctx, cfg)
	default:
		fmt.Fprintf(stderr, "simgraph: unknown command %q\n", command)
		return 2
	}
	if err != nil {
		logger.WithField("action", command).WithError(err).Error("command failed")
		return 1
	}

	return 0
}
