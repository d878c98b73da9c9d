// SPDX-License-Identifier: MIT

package noise_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gradnoise/noise"
	"github.com/katalvlaran/gradnoise/point"
	"github.com/katalvlaran/gradnoise/rng"
)

var sink float64

func BenchmarkPerlin2D(b *testing.B) {
	n, err := noise.NewPerlin2D(point.P2{8, 8}, randomTable2D(b, 1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = n.ValueAt(point.P2{float64(i%512) / 512, 0.37})
	}
}

func BenchmarkPerlin3D(b *testing.B) {
	n, err := noise.NewPerlin3D(point.P3{8, 8, 8}, randomTable3D(b, 1))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = n.ValueAt(point.P3{float64(i%512) / 512, 0.37, 0.61})
	}
}

func BenchmarkFbm2D(b *testing.B) {
	f, err := noise.NewFbm2D(rng.FromSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = f.ValueAt(point.P2{float64(i%512) / 512, 0.37})
	}
}

func BenchmarkSampler2D_256(b *testing.B) {
	f, err := noise.NewFbm2D(rng.FromSeed(1), noise.WithOctaves(4))
	if err != nil {
		b.Fatal(err)
	}
	s := noise.NewSampler()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Sample2D(context.Background(), f, 256, 256); err != nil {
			b.Fatal(err)
		}
	}
}
