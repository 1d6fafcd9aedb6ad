package app

import (
	"flag"
	"strconv"
	"strings"
)

// Config captures command-line options for the GUI.
type Config struct {
	Sim        string
	ConfigPath string
	Sets       KVList
	Scale      int
	TPS        int
	Seed       int64
	Sync       bool
	OutputDir  string
	LogJSON    bool
	Debug      bool
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{Sim: "waves", Scale: 1, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "surface to run")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file overlaid on the built-in defaults")
	fs.Var(&c.Sets, "set", "parameter override in key=value form (repeatable)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random drops")
	fs.BoolVar(&c.Sync, "sync", c.Sync, "tick the surface from the frame loop instead of a background goroutine")
	fs.StringVar(&c.OutputDir, "output-dir", c.OutputDir, "directory for settlement telemetry (disabled when empty)")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "emit JSON logs")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

// SurfaceOptions converts the flags into the map handed to a core.Factory.
// Later -set values win over earlier ones; reserved keys cannot be overridden.
func (c *Config) SurfaceOptions() map[string]string {
	opts := c.Sets.Map()
	if c.ConfigPath != "" {
		opts["config"] = c.ConfigPath
	}
	if c.Sync {
		opts["mode"] = "sync"
	}
	opts["seed"] = strconv.FormatInt(c.Seed, 10)
	return opts
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map, skipping entries without '='.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}
