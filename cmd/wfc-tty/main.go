package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"mad-wfc/internal/samples"
	"mad-wfc/pkg/core"
	"mad-wfc/pkg/wfc"

	"github.com/gdamore/tcell/v2"
)

// maxCatchup bounds how many step batches one frame may run after a stall.
const maxCatchup = 4

type viewer struct {
	screen tcell.Screen
	gen    *wfc.Generator
	label  string

	pacer        *core.Pacer
	stepsPerTick int
	paused       bool
}

func newViewer(gen *wfc.Generator, label string, tps, stepsPerTick int) (*viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &viewer{
		screen:       screen,
		gen:          gen,
		label:        label,
		pacer:        core.NewPacer(tps),
		stepsPerTick: stepsPerTick,
	}, nil
}

func (v *viewer) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- v.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			for i, n := 0, v.pacer.Due(maxCatchup); i < n; i++ {
				v.advance()
			}
			v.draw()
		}
	}
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'r':
				v.gen.Reset(v.gen.Seed())
			case 's':
				v.gen.Reset(time.Now().UnixNano())
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) advance() {
	if v.paused || v.gen.Done() || v.gen.Contradicted() {
		return
	}
	for i := 0; i < v.stepsPerTick; i++ {
		res := v.gen.Step()
		if res.Done || res.Contradiction {
			return
		}
	}
}

// draw paints one terminal cell per grid cell, using the resolved pattern's
// top-left texel as the cell color. Row zero carries the status line.
func (v *viewer) draw() {
	v.screen.Clear()
	size := v.gen.Size()
	width, height := v.screen.Size()
	for y := 0; y < size.H && y+1 < height; y++ {
		for x := 0; x < size.W && x < width; x++ {
			id, ok := v.gen.PatternAt(y*size.W + x)
			if !ok {
				v.screen.SetContent(x, y+1, '·', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
				continue
			}
			c := v.gen.Library().Pattern(id).At(0, 0)
			color := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
			v.screen.SetContent(x, y+1, '█', nil, tcell.StyleDefault.Foreground(color))
		}
	}
	v.drawStatus(width)
	v.screen.Show()
}

func (v *viewer) drawStatus(width int) {
	state := "running"
	switch {
	case v.gen.Contradicted():
		state = "contradiction (r/s restart)"
	case v.gen.Done():
		state = "done"
	case v.paused:
		state = "paused"
	}
	line := fmt.Sprintf("%s seed=%d cells=%d/%d %s (space pause, r/s restart, q quit)",
		v.label, v.gen.Seed(), v.gen.Collapsed(), v.gen.Size().Area(), state)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range line {
		if i >= width {
			break
		}
		v.screen.SetContent(i, 0, r, nil, style)
	}
}

func main() {
	sample := flag.String("sample", "flowers", "built-in sample to learn from")
	in := flag.String("in", "", "PNG file to learn from instead of a built-in")
	n := flag.Int("n", 2, "pattern size in texels")
	width := flag.Int("width", 64, "output grid width in cells")
	height := flag.Int("height", 32, "output grid height in cells")
	seed := flag.Int64("seed", 42, "seed for the first attempt")
	tps := flag.Int("tps", 30, "step batches per second")
	steps := flag.Int("steps", 16, "collapse steps per batch")
	flag.Parse()

	src, label, err := loadSample(*sample, *in)
	if err != nil {
		log.Fatalf("load sample: %v", err)
	}
	gen, err := wfc.New(src, wfc.Config{Width: *width, Height: *height, N: *n, Seed: *seed})
	if err != nil {
		log.Fatalf("setup failed: %v", err)
	}

	v, err := newViewer(gen, label, *tps, *steps)
	if err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	defer v.screen.Fini()
	v.run()
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
