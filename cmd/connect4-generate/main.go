// Command connect4-generate builds the opening book offline: explore a
// depth-bounded set of positions, score them in a resumable batch pass,
// convert the result to the binary book format, or expand a hard-position
// log into warmup entries.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/adnope/connect4-engine/internal/generator"
	"github.com/adnope/connect4-engine/internal/solver"
	"github.com/adnope/connect4-engine/internal/table"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  connect4-generate explore <depth> <output-file>
  connect4-generate score <moves-file> <result-file>
  connect4-generate convert <input-file> <output-file>
  connect4-generate warmup <hard-moves-file> <warmup-book-file>`)
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "explore":
		err = runExplore(os.Args[2:])
	case "score":
		err = runScore(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "warmup":
		err = runWarmup(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("generate failed")
	}
}

func runExplore(args []string) error {
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 || depth > 42 {
		return fmt.Errorf("invalid depth %q", args[0])
	}
	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := generator.Explore(depth, f)
	if err != nil {
		return err
	}
	log.Info().Int("positions", n).Msg("explore complete")
	return nil
}

func runScore(args []string) error {
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	s := solver.New(table.NewDefault())
	n, err := generator.CalculateScore(context.Background(), s, args[0], args[1])
	if err != nil {
		return err
	}
	log.Info().Int("scored", n).Msg("score pass complete")
	return nil
}

func runConvert(args []string) error {
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	n, err := generator.ConvertToBinary(args[0], args[1])
	if err != nil {
		return err
	}
	log.Info().Int("converted", n).Msg("conversion complete")
	return nil
}

func runWarmup(args []string) error {
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	s := solver.New(table.NewDefault())
	n, err := generator.Warmup(s, args[0], args[1])
	if err != nil {
		return err
	}
	log.Info().Int("entries", n).Msg("warmup generation complete")
	return nil
}
