// Package config centralizes the process-level settings the original
// implementation scattered as literals across main.cpp and
// RequestHandler.hpp: table sizing, book paths, the listen address, and
// the per-request search timeout.
package config

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/adnope/connect4-engine/internal/httpd"
	"github.com/adnope/connect4-engine/internal/table"
)

// Mode selects which of the CLI's mutually exclusive run modes to execute.
type Mode int

const (
	ModeNone Mode = iota
	ModeFind
	ModeContinuousFind
	ModeTest
	ModePlay
	ModeBotGame
	ModeTrain
	ModeWeb
)

// Config holds every flag-configurable setting for cmd/connect4.
type Config struct {
	Mode Mode

	TableCapacity int
	BookPath      string
	WarmupPath    string

	ListenAddr     string
	SearchTimeout  time.Duration
	TestSuitePath  string
	TrainOutPath   string
}

// Parse builds a Config from args (normally os.Args[1:]). It returns an
// error if more than one mode flag is set, matching the original CLI's
// "exactly one option" rule.
func Parse(args []string) (Config, error) {
	fs := pflag.NewFlagSet("connect4", pflag.ContinueOnError)

	find := fs.BoolP("find", "f", false, "find best move for a given sequence")
	cfind := fs.BoolP("cfind", "c", false, "continuously find best move as sequences are entered")
	test := fs.BoolP("test", "t", false, "run the benchmark test suite")
	play := fs.BoolP("play", "p", false, "play an interactive game against the engine")
	botgame := fs.BoolP("botgame", "b", false, "watch the engine play itself")
	// pflag shorthands are single runes, unlike the original CLI's "-tr":
	// --train has no short form here.
	train := fs.Bool("train", false, "run a self-play session logging hard positions")
	web := fs.BoolP("web", "w", false, "serve the HTTP move API")

	capacity := fs.Int("table-capacity", table.DefaultCapacity, "transposition table memo-array capacity")
	bookPath := fs.String("book", "7x6.book", "opening book path")
	warmupPath := fs.String("warmup-book", "warmup.book", "warmup book path")
	listenAddr := fs.String("listen", "0.0.0.0:8112", "HTTP listen address (web mode)")
	timeout := fs.Duration("search-timeout", httpd.DefaultTimeout, "per-request search timeout (web mode)")
	testSuite := fs.String("test-suite", "tests/begin_medium_test.txt", "benchmark suite path (test mode)")
	trainOut := fs.String("train-out", "hard_moves.txt", "hard-position output path (train mode)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		TableCapacity: *capacity,
		BookPath:      *bookPath,
		WarmupPath:    *warmupPath,
		ListenAddr:    *listenAddr,
		SearchTimeout: *timeout,
		TestSuitePath: *testSuite,
		TrainOutPath:  *trainOut,
	}

	modes := map[Mode]bool{
		ModeFind:           *find,
		ModeContinuousFind: *cfind,
		ModeTest:           *test,
		ModePlay:           *play,
		ModeBotGame:        *botgame,
		ModeTrain:          *train,
		ModeWeb:            *web,
	}
	var set int
	for m, on := range modes {
		if on {
			set++
			cfg.Mode = m
		}
	}
	if set != 1 {
		return cfg, errExactlyOneMode{count: set}
	}
	return cfg, nil
}
