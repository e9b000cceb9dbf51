package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"mad-wfc/internal/samples"
	"mad-wfc/pkg/wfc"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type sweepConfig struct {
	sample string
	n      int
	lib    *wfc.Library
}

func (c *sweepConfig) String() string { return fmt.Sprintf("%s n=%d", c.sample, c.n) }

type job struct {
	cfg  *sweepConfig
	seed int64
}

type outcome struct {
	cfg     *sweepConfig
	ok      bool
	steps   int
	elapsed time.Duration
}

type aggregate struct {
	cfg     *sweepConfig
	runs    int
	success int
	steps   int
	elapsed time.Duration
}

func main() {
	sampleList := flag.String("samples", "all", "comma-separated sample names, or 'all'")
	nList := flag.String("n", "2,3", "comma-separated pattern sizes")
	width := flag.Int("width", 32, "output grid width in cells")
	height := flag.Int("height", 32, "output grid height in cells")
	runs := flag.Int("runs", 20, "generations per configuration")
	seed := flag.Int64("seed", 1, "base seed; run i uses seed+i")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	var overrides kvList
	flag.Var(&overrides, "set", "sample option in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		opts[parts[0]] = parts[1]
	}

	names := samples.Names()
	if *sampleList != "all" {
		names = strings.Split(*sampleList, ",")
	}
	var sizes []int
	for _, field := range strings.Split(*nList, ",") {
		if v, err := strconv.Atoi(strings.TrimSpace(field)); err == nil && v >= 1 {
			sizes = append(sizes, v)
		}
	}
	if len(sizes) == 0 {
		log.Fatalf("no usable pattern sizes in %q", *nList)
	}

	// Libraries are immutable once built, so one per configuration is shared
	// by every worker.
	var configs []*sweepConfig
	for _, name := range names {
		factory, ok := samples.All()[name]
		if !ok {
			log.Fatalf("unknown sample %q (have %v)", name, samples.Names())
		}
		src := factory(opts)
		for _, n := range sizes {
			lib, err := wfc.NewLibrary(src, n)
			if err != nil {
				log.Fatalf("%s n=%d: %v", name, n, err)
			}
			configs = append(configs, &sweepConfig{sample: name, n: n, lib: lib})
		}
	}

	fmt.Printf("Sweeping %d configurations x %d runs (%d workers, %dx%d grid)\n",
		len(configs), *runs, *workers, *width, *height)

	jobs := make(chan job)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runOne(j, *width, *height)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, cfg := range configs {
			for i := 0; i < *runs; i++ {
				jobs <- job{cfg: cfg, seed: *seed + int64(i)}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	byConfig := map[*sweepConfig]*aggregate{}
	for res := range results {
		agg := byConfig[res.cfg]
		if agg == nil {
			agg = &aggregate{cfg: res.cfg}
			byConfig[res.cfg] = agg
		}
		agg.runs++
		if res.ok {
			agg.success++
		}
		agg.steps += res.steps
		agg.elapsed += res.elapsed
	}
	elapsed := time.Since(start)

	rows := make([]*aggregate, 0, len(byConfig))
	for _, agg := range byConfig {
		rows = append(rows, agg)
	}
	sort.Slice(rows, func(i, j int) bool {
		ri := float64(rows[i].success) / float64(rows[i].runs)
		rj := float64(rows[j].success) / float64(rows[j].runs)
		if ri != rj {
			return ri > rj
		}
		return rows[i].cfg.String() < rows[j].cfg.String()
	})

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	fmt.Printf("%-20s %8s %11s %11s %9s\n", "config", "success", "mean steps", "mean time", "patterns")
	for _, agg := range rows {
		rate := 100 * float64(agg.success) / float64(agg.runs)
		meanSteps := float64(agg.steps) / float64(agg.runs)
		meanTime := agg.elapsed / time.Duration(agg.runs)
		fmt.Printf("%-20s %7.1f%% %11.1f %11s %9d\n",
			agg.cfg, rate, meanSteps, meanTime.Round(time.Microsecond), agg.cfg.lib.Len())
	}
}

// runOne drives one whole generation and reports how it went.
func runOne(j job, width, height int) outcome {
	start := time.Now()
	gen, err := wfc.NewFromLibrary(j.cfg.lib, wfc.Config{Width: width, Height: height, N: j.cfg.n, Seed: j.seed})
	if err != nil {
		return outcome{cfg: j.cfg, elapsed: time.Since(start)}
	}
	steps := 0
	limit := width*height + 1
	for i := 0; i < limit; i++ {
		res := gen.Step()
		if res.Contradiction {
			break
		}
		steps++
		if res.Done {
			return outcome{cfg: j.cfg, ok: true, steps: steps, elapsed: time.Since(start)}
		}
	}
	return outcome{cfg: j.cfg, steps: steps, elapsed: time.Since(start)}
}
