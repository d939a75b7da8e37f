// Command connect4 is the CLI frontend to the Connect Four engine: find
// moves for a sequence, play interactively or watch a bot game, benchmark
// against a test suite, run a self-play training session to find hard
// positions, or serve the HTTP move API.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/adnope/connect4-engine/internal/book"
	"github.com/adnope/connect4-engine/internal/config"
	"github.com/adnope/connect4-engine/internal/solver"
	"github.com/adnope/connect4-engine/internal/table"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	t := table.New(cfg.TableCapacity)
	s := solver.New(t)
	loadBooks(t, cfg)

	var runErr error
	switch cfg.Mode {
	case config.ModeFind:
		runErr = runFind(s)
	case config.ModeContinuousFind:
		runErr = runCfind(s)
	case config.ModeTest:
		runErr = runTest(s, cfg.TestSuitePath)
	case config.ModePlay:
		runErr = runPlay(s)
	case config.ModeBotGame:
		runErr = runBotGame(s)
	case config.ModeTrain:
		runErr = runTrain(s, cfg.TrainOutPath)
	case config.ModeWeb:
		runErr = runWeb(s, cfg.ListenAddr, cfg.SearchTimeout)
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("run failed")
	}
}

func loadBooks(t *table.Table, cfg config.Config) {
	if n, err := book.Load(cfg.BookPath, t); err != nil {
		log.Warn().Err(err).Msg("opening book not loaded, continuing without it")
	} else {
		log.Info().Int("entries", n).Str("path", cfg.BookPath).Msg("opening book loaded")
	}
	if n, err := book.LoadWarmup(cfg.WarmupPath, t); err != nil {
		log.Debug().Err(err).Msg("warmup book not loaded, continuing without it")
	} else {
		log.Info().Int("entries", n).Str("path", cfg.WarmupPath).Msg("warmup book loaded")
	}
}
