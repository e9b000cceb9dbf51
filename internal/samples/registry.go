package samples

import (
	"sort"
	"strconv"

	"mad-wfc/pkg/wfc"
)

// Factory builds a source sample from an optional configuration map.
type Factory func(cfg map[string]string) *wfc.Sample

var registry = map[string]Factory{}

// Register adds a sample factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// All exposes the registry of available sample factories.
func All() map[string]Factory {
	return registry
}

// Names returns the registered sample names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// intOption reads an integer option, falling back to def when the value is
// missing, malformed or outside [lo, hi].
func intOption(cfg map[string]string, key string, def, lo, hi int) int {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed < lo || parsed > hi {
		return def
	}
	return parsed
}

// int64Option is intOption for seed-sized values.
func int64Option(cfg map[string]string, key string, def int64) int64 {
	v, ok := cfg[key]
	if !ok {
		return def
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return parsed
}
