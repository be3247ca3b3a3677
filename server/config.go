package server

import (
	"flag"
	"fmt"
	"strings"
)

// ParseArgs parses the server's command-line flags into a Config,
// mirroring the original's arg parsing in
// original_source/crates/server/src/args.rs: -p (port), -x/-y (map size),
// -n (team names, comma-separated), -c (slots per team), -t (tick
// frequency in Hz).
func ParseArgs(fs *flag.FlagSet, args []string) (Config, int, error) {
	port := fs.Int("p", 1234, "port to listen on")
	width := fs.Int("x", 32, "world width")
	height := fs.Int("y", 32, "world height")
	names := fs.String("n", "Blue,Red", "comma-separated team names")
	slots := fs.Int("c", 1, "initial slots per team")
	hz := fs.Float64("t", 10.0, "tick frequency in Hz")

	if err := fs.Parse(args); err != nil {
		return Config{}, 2, err
	}

	teamNames := strings.Split(*names, ",")
	for i, name := range teamNames {
		teamNames[i] = strings.TrimSpace(name)
	}
	for _, name := range teamNames {
		if name == "" {
			return Config{}, 2, fmt.Errorf("team names must not be empty")
		}
		if name == "GRAPHIC" {
			return Config{}, 2, fmt.Errorf("team name %q is reserved for graphic observers", name)
		}
	}
	if *width < 1 || *height < 1 {
		return Config{}, 2, fmt.Errorf("world dimensions must be at least 1x1")
	}
	if *slots < 0 {
		return Config{}, 2, fmt.Errorf("slot count must not be negative")
	}
	if *hz <= 0 {
		return Config{}, 2, fmt.Errorf("tick frequency must be positive")
	}

	cfg := Config{
		Width:            *width,
		Height:           *height,
		TeamNames:        teamNames,
		InitialSlotCount: uint32(*slots),
		TickFrequencyHz:  *hz,
	}
	return cfg, *port, nil
}
