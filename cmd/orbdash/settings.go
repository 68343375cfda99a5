package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"orbdash/internal/game"
)

const (
	envSeed     = "ORBDASH_SEED"
	envFrontend = "ORBDASH_FRONTEND"
	envMute     = "ORBDASH_MUTE"
)

// loadSettings resolves settings from defaults, then envFile, then the
// environment, then flags. Variables already set in the environment win
// over envFile; a missing envFile is not an error.
func loadSettings(args []string, envFile string, usage io.Writer) (game.Settings, error) {
	s := game.DefaultSettings()
	s.Seed = uint64(time.Now().UnixNano())

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(envSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("%s: %w", envSeed, err)
		}
		s.Seed = seed
	}
	if v := os.Getenv(envFrontend); v != "" {
		s.Frontend = strings.ToLower(v)
	}
	if v := os.Getenv(envMute); v != "" {
		muted, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("%s: %w", envMute, err)
		}
		s.Muted = muted
	}

	fset := flag.NewFlagSet("orbdash", flag.ContinueOnError)
	fset.SetOutput(usage)
	fset.StringVar(&s.Frontend, "frontend", s.Frontend, "frontend: desktop or terminal")
	fset.Uint64Var(&s.Seed, "seed", s.Seed, "random seed (default: time based)")
	fset.BoolVar(&s.Muted, "mute", s.Muted, "disable sound")
	fset.BoolVar(&s.Debug, "debug", s.Debug, "write a debug log to logs/orbdash.log")
	fset.IntVar(&s.Width, "width", s.Width, "initial window width (desktop)")
	fset.IntVar(&s.Height, "height", s.Height, "initial window height (desktop)")
	if err := fset.Parse(args); err != nil {
		return s, err
	}
	if fset.NArg() > 0 {
		return s, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}

	switch s.Frontend {
	case game.FrontendDesktop, game.FrontendTerminal:
	default:
		return s, fmt.Errorf("unknown frontend %q (want %s or %s)", s.Frontend, game.FrontendDesktop, game.FrontendTerminal)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return s, fmt.Errorf("window size %dx%d must be positive", s.Width, s.Height)
	}
	return s, nil
}
