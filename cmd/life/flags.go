package main

import (
	"flag"
	"strings"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits key=value entries; malformed entries are skipped.
func (l kvList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

type options struct {
	configPath string
	boardPath  string
	startBoard string
	figuresDir string
	headless   bool
	maxTicks   int
	seed       int64
	overrides  kvList
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "config.json", "run configuration (created with defaults when missing)")
	fs.StringVar(&o.boardPath, "board", "board.txt", "board file used by the save and load keys")
	fs.StringVar(&o.startBoard, "load", "", "start from this board file instead of a random board")
	fs.StringVar(&o.figuresDir, "figures", "figures", "directory of reference figures")
	fs.BoolVar(&o.headless, "headless", false, "run without a terminal UI and print the report")
	fs.IntVar(&o.maxTicks, "max", 10000, "headless: give up after this many generations (0 = no limit)")
	fs.Int64Var(&o.seed, "seed", 0, "seed for the random board (0 = config seed)")
	fs.Var(&o.overrides, "set", "config override in key=value form (repeatable)")
}
