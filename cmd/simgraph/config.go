// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/simgraph/pipeline"
)

// envPrefix namespaces environment overrides, e.g. SIMGRAPH_SIMILARITY_TOLERANCE.
const envPrefix = "SIMGRAPH"

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"input":        "input",
	"output":       "output",
	"target":       "target",
	"count":        "generate.count",
	"dim":          "generate.dim",
	"deviation":    "generate.deviation",
	"seed":         "generate.seed",
	"mode":         "distance.mode",
	"trim-percent": "distance.trim_percent",
	"tolerance":    "similarity.tolerance",
	"min-fraction": "similarity.min_fraction",
	"workers":      "similarity.workers",
	"method":       "components.method",
	"log-level":    "log.level",
	"log-format":   "log.format",
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	d := pipeline.DefaultConfig()
	fs := pflag.NewFlagSet("simgraph", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: simgraph [flags] generate|group|similar\n\nFlags:\n")
		fs.PrintDefaults()
	}

	fs.String("config", "", "Path to the configuration file")
	fs.String("input", d.Input, "CSV file to load instead of generating vectors")
	fs.String("output", d.Output, "CSV file written by generate")
	fs.Int("target", d.Target, "Row index queried by similar")
	fs.Int("count", d.Generate.Count, "Number of generated vectors")
	fs.Int("dim", d.Generate.Dim, "Dimension of generated vectors")
	fs.Float64("deviation", d.Generate.Deviation, "Standard deviation of generated values")
	fs.Int64("seed", d.Generate.Seed, "Generator seed (0 seeds from the clock)")
	fs.String("mode", d.Distance.Mode, "Distance mode: full or part")
	fs.Float64("trim-percent", d.Distance.TrimPercent, "Share of closest features kept in part mode")
	fs.Float64("tolerance", d.Similarity.Tolerance, "Per-feature similarity tolerance")
	fs.Float64("min-fraction", d.Similarity.MinFraction, "Share of features within tolerance that must be exceeded")
	fs.Int("workers", d.Similarity.Workers, "Goroutines building the relation (0 = GOMAXPROCS)")
	fs.String("method", d.Components.Method, "Component method: union-find or bfs")
	fs.String("log-level", d.Log.Level, "Log level")
	fs.String("log-format", d.Log.Format, "Log format: json or text")

	return fs
}

// loadConfig resolves defaults, config file, environment and flags, in
// increasing precedence, and returns the config and the subcommand.
func loadConfig(args []string, stderr io.Writer) (pipeline.Config, string, error) {
	var cfg pipeline.Config

	fs := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return cfg, "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, "", errors.New("expected exactly one command")
	}

	v := viper.New()
	d := pipeline.DefaultConfig()
	v.SetDefault("input", d.Input)
	v.SetDefault("output", d.Output)
	v.SetDefault("target", d.Target)
	v.SetDefault("generate.count", d.Generate.Count)
	v.SetDefault("generate.dim", d.Generate.Dim)
	v.SetDefault("generate.deviation", d.Generate.Deviation)
	v.SetDefault("generate.seed", d.Generate.Seed)
	v.SetDefault("distance.mode", d.Distance.Mode)
	v.SetDefault("distance.trim_percent", d.Distance.TrimPercent)
	v.SetDefault("similarity.tolerance", d.Similarity.Tolerance)
	v.SetDefault("similarity.min_fraction", d.Similarity.MinFraction)
	v.SetDefault("similarity.workers", d.Similarity.Workers)
	v.SetDefault("components.method", d.Components.Method)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return cfg, "", fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configFile, _ := fs.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("simgraph")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return cfg, "", fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, "", fmt.Errorf("decode config: %w", err)
	}

	return cfg, fs.Arg(0), nil
}
