package app

import (
	"flag"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Sample != "flowers" || cfg.N != 2 {
		t.Fatalf("unexpected defaults: sample=%q n=%d", cfg.Sample, cfg.N)
	}
	if cfg.Width != 48 || cfg.Height != 48 {
		t.Fatalf("unexpected default grid: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Retry {
		t.Fatal("retry must default to off")
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-sample", "maze", "-n", "3", "-width", "30", "-height", "20", "-seed", "7", "-retry"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Sample != "maze" || cfg.N != 3 {
		t.Fatalf("flag values not applied: sample=%q n=%d", cfg.Sample, cfg.N)
	}
	if cfg.Width != 30 || cfg.Height != 20 {
		t.Fatalf("grid flags not applied: %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 7 || !cfg.Retry {
		t.Fatalf("seed/retry flags not applied: seed=%d retry=%v", cfg.Seed, cfg.Retry)
	}
}
