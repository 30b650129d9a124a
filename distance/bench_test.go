// SPDX-License-Identifier: MIT

package distance_test

import (
	"testing"

	"github.com/katalvlaran/simgraph/distance"
	"github.com/katalvlaran/simgraph/generator"
)

// benchmarkEvaluator measures one pair of 100-feature vectors per iteration.
func benchmarkEvaluator(b *testing.B, opts distance.Options) {
	c, err := generator.Generate(2, 100, generator.WithSeed(3))
	if err != nil {
		b.Fatalf("Generate failed: %v", err)
	}
	ev, err := distance.NewEvaluator(opts)
	if err != nil {
		b.Fatalf("NewEvaluator failed: %v", err)
	}
	x, y := c.RawRow(0), c.RawRow(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ev.Between(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluator_Full(b *testing.B) {
	benchmarkEvaluator(b, distance.Options{Mode: distance.Full})
}

func BenchmarkEvaluator_Part(b *testing.B) {
	benchmarkEvaluator(b, distance.DefaultOptions())
}
