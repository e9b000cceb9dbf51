//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"mad-wfc/internal/app"
	"mad-wfc/internal/samples"
	"mad-wfc/pkg/wfc"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sample, label, err := loadSample(cfg)
	if err != nil {
		log.Fatalf("load sample: %v", err)
	}

	gen, err := wfc.New(sample, wfc.Config{Width: cfg.Width, Height: cfg.Height, N: cfg.N, Seed: cfg.Seed})
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}

	game := app.New(gen, label, cfg)
	cell := gen.CellSize()

	ebiten.SetWindowTitle("mad-wfc — " + label)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cell.W*cfg.Scale, cfg.Height*cell.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func loadSample(cfg *app.Config) (*wfc.Sample, string, error) {
	if cfg.In != "" {
		f, err := os.Open(cfg.In)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			return nil, "", err
		}
		return wfc.SampleFromImage(img), filepath.Base(cfg.In), nil
	}
	factory, ok := samples.All()[cfg.Sample]
	if !ok {
		return nil, "", fmt.Errorf("unknown sample %q (have %v)", cfg.Sample, samples.Names())
	}
	return factory(nil), cfg.Sample, nil
}
