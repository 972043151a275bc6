package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	"relva/internal/grass"

	"golang.org/x/sync/errgroup"
)

type nameList []string

func (l *nameList) String() string {
	return strings.Join(*l, ",")
}

func (l *nameList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	frames := flag.Int("frames", 1800, "frames to step per variant")
	width := flag.Float64("width", 1280, "field width")
	height := flag.Float64("height", 720, "field height")
	fps := flag.Int("fps", 30, "target frames per second")
	seed := flag.Int64("seed", 2026, "seed for line generation and surges")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel variant runs")
	var only nameList
	flag.Var(&only, "variant", "variant to measure (repeatable, default all)")
	flag.Parse()

	cfg := grass.DefaultConfig()
	cfg.TargetFPS = *fps
	cfg.Seed = *seed

	variants := grass.Variants()
	if len(only) > 0 {
		var picked []grass.Variant
		for _, name := range only {
			idx := grass.IndexOf(variants, name)
			if idx < 0 {
				log.Fatalf("unknown variant %q", name)
			}
			picked = append(picked, variants[idx])
		}
		variants = picked
	}

	results := make([]grass.Measurement, len(variants))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(*workers, 1))
	for i, v := range variants {
		g.Go(func() error {
			m, err := grass.Measure(ctx, cfg, v, *width, *height, *frames)
			if err != nil {
				return fmt.Errorf("%s: %w", v.Name, err)
			}
			results[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.0fx%.0f at %d fps, %d frames, seed %d\n\n", *width, *height, *fps, *frames, *seed)
	fmt.Printf("%-10s %-9s %6s %8s %12s %8s %8s\n", "variant", "mode", "lines", "surges", "surge/line/s", "mean", "peak")
	for _, m := range results {
		fmt.Printf("%-10s %-9s %6d %8d %12.4f %8.3f %8.3f\n",
			m.Variant, m.Mode, m.Lines, m.Surges, m.SurgesPerLineSecond, m.MeanStretch, m.PeakStretch)
	}
}
