package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"mad-wfc/internal/render"
	"mad-wfc/internal/samples"
	"mad-wfc/pkg/wfc"
)

func main() {
	sample := flag.String("sample", "flowers", "built-in sample to learn from")
	in := flag.String("in", "", "PNG file to learn from instead of a built-in")
	n := flag.Int("n", 2, "pattern size in texels")
	width := flag.Int("width", 48, "output grid width in cells")
	height := flag.Int("height", 48, "output grid height in cells")
	seed := flag.Int64("seed", 42, "seed for the first attempt")
	retries := flag.Int("retries", 9, "extra attempts after a contradiction")
	out := flag.String("out", "out.png", "output PNG path")
	flag.Parse()

	src, label, err := loadSample(*sample, *in)
	if err != nil {
		log.Fatalf("load sample: %v", err)
	}

	gen, err := wfc.New(src, wfc.Config{Width: *width, Height: *height, N: *n, Seed: *seed})
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}

	start := time.Now()
	steps, attempts, ok := generate(gen, *seed, *retries)
	elapsed := time.Since(start)
	if !ok {
		log.Fatalf("%s: no attempt finished within %d tries (%d steps, %s)",
			label, attempts, steps, elapsed.Round(time.Millisecond))
	}

	canvas := render.NewCanvasFor(gen)
	canvas.PaintAll(gen)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, canvas.Image()); err != nil {
		log.Fatalf("encode output: %v", err)
	}

	fmt.Printf("%s: wrote %s (%d cells, %d steps, %d attempts, %s)\n",
		label, *out, gen.Size().Area(), steps, attempts, elapsed.Round(time.Millisecond))
}

// generate drives whole attempts, advancing the seed after each contradiction.
func generate(gen *wfc.Generator, seed int64, retries int) (steps, attempts int, ok bool) {
	limit := gen.Size().Area() + 1
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			seed++
			gen.Reset(seed)
		}
		attempts++
		for i := 0; i < limit; i++ {
			res := gen.Step()
			if res.Contradiction {
				break
			}
			steps++
			if res.Done {
				return steps, attempts, true
			}
		}
	}
	return steps, attempts, false
}

func loadSample(name, in string) (*wfc.Sample, string, error) {
	if in != "" {
		f, err := os.Open(in)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			return nil, "", err
		}
		return wfc.SampleFromImage(img), filepath.Base(in), nil
	}
	factory, ok := samples.All()[name]
	if !ok {
		return nil, "", fmt.Errorf("unknown sample %q (have %v)", name, samples.Names())
	}
	return factory(nil), name, nil
}
