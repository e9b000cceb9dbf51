package app

import "flag"

// Config represents the command-line parameters for the viewer binaries.
type Config struct {
	Sample       string
	In           string
	N            int
	Width        int
	Height       int
	Scale        int
	TPS          int
	StepsPerTick int
	Seed         int64
	Retry        bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sample:       "flowers",
		N:            2,
		Width:        48,
		Height:       48,
		Scale:        4,
		TPS:          60,
		StepsPerTick: 8,
		Seed:         42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sample, "sample", c.Sample, "built-in sample to learn from")
	fs.StringVar(&c.In, "in", c.In, "PNG file to learn from instead of a built-in")
	fs.IntVar(&c.N, "n", c.N, "pattern size in texels")
	fs.IntVar(&c.Width, "width", c.Width, "output grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "output grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.StepsPerTick, "steps", c.StepsPerTick, "collapse steps per tick")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first attempt")
	fs.BoolVar(&c.Retry, "retry", c.Retry, "restart with a fresh seed on contradiction")
}
